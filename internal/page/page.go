// Package page renders the portfolio markup with gomponents: the full
// document and the HTMX fragments (navbar, contact form) swapped into it.
package page

import (
	"fmt"
	"io"
	"time"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/anupks5942/portfolio/internal/content"
	"github.com/anupks5942/portfolio/internal/nav"
)

const (
	htmxSrc    = "https://unpkg.com/htmx.org@1.9.12"
	jsonEncSrc = "https://unpkg.com/htmx.org@1.9.12/dist/ext/json-enc.js"
	tailwind   = "https://cdn.tailwindcss.com"
)

// Routes the rendered markup posts to.
const (
	ScrollPath   = "/ui/scroll"
	NavigatePath = "/ui/navigate"
	MenuPath     = "/ui/menu"
	ContactPath  = "/contact"
	ScriptPath   = "/static/portfolio.js"
)

type Options struct {
	// ContactForm renders the relay form instead of contact details only.
	ContactForm bool
	// Now stamps the footer year; defaults to time.Now.
	Now func() time.Time
}

type Page struct {
	p         *content.Portfolio
	opts      Options
	aboutHTML string
	sections  map[string]func() g.Node
}

// New prepares a page for p. Every section id in the content must be one
// this package knows how to render.
func New(p *content.Portfolio, opts Options) (*Page, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	about, err := content.Markdown(p.About.Body)
	if err != nil {
		return nil, err
	}

	pg := &Page{p: p, opts: opts, aboutHTML: about}
	pg.sections = map[string]func() g.Node{
		"hero":       pg.hero,
		"about":      pg.about,
		"skills":     pg.skills,
		"experience": pg.experience,
		"projects":   pg.projects,
		"education":  pg.education,
		"contact":    pg.contact,
	}
	for _, id := range p.Sections {
		if _, ok := pg.sections[id]; !ok {
			return nil, fmt.Errorf("page: no renderer for section %q", id)
		}
	}
	return pg, nil
}

// ContactFormEnabled reports whether the relay form is rendered.
func (pg *Page) ContactFormEnabled() bool {
	return pg.opts.ContactForm
}

// Document is the whole page at state.
func (pg *Page) Document(state nav.UIState) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(pg.p.Hero.PageTitle)),
				h.Script(h.Src(tailwind)),
				h.Script(h.Src(htmxSrc)),
				h.Script(h.Src(jsonEncSrc)),
			),
			h.Body(
				h.Class("font-sans bg-gray-900 text-gray-100"),
				pg.Navbar(state, true),
				h.Main(
					g.Map(pg.p.Sections, func(id string) g.Node {
						return pg.sections[id]()
					}),
				),
				pg.footer(),
				h.Script(h.Src(ScriptPath), h.Defer()),
			),
		),
	)
}

// Render writes node to w.
func Render(w io.Writer, node g.Node) error {
	return node.Render(w)
}

func (pg *Page) footer() g.Node {
	return h.Footer(
		h.Class("bg-gray-900 border-t border-gray-800 py-8"),
		h.Div(
			h.Class("container mx-auto px-6 text-center text-gray-400"),
			h.P(g.Textf("© %d %s. All rights reserved.", pg.opts.Now().Year(), pg.p.Hero.Name)),
		),
	)
}

func heading(title string) g.Node {
	return h.H2(
		h.Class("text-3xl md:text-4xl font-bold mb-12 text-center"),
		h.Span(h.Class("bg-clip-text text-transparent bg-gradient-to-r from-purple-400 to-pink-500"), g.Text(title)),
	)
}

func external(href string, children ...g.Node) g.Node {
	return h.A(h.Href(href), h.Target("_blank"), h.Rel("noopener noreferrer"), g.Group(children))
}
