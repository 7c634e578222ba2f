package page

import (
	"encoding/json"
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/anupks5942/portfolio/internal/content"
	"github.com/anupks5942/portfolio/internal/nav"
)

// NavbarID is the element every UI event swaps.
const NavbarID = "navbar"

const liveVals = "js:{offset: window.scrollY, sections: portfolio.layout(), state: portfolio.state()}"

// Navbar renders the fixed header for state. The initial render also
// reports the layout on load so the active section is right before the
// first scroll; swapped-in copies only listen for scrolls.
func (pg *Page) Navbar(state nav.UIState, initial bool) g.Node {
	trigger := "scroll from:window throttle:100ms"
	if initial {
		trigger = "load, " + trigger
	}

	return h.Header(
		h.ID(NavbarID),
		c.Classes{
			"fixed w-full z-50 transition-all duration-300": true,
			"bg-gray-900/95 backdrop-blur-md shadow-lg":     state.Scrolled,
			"bg-transparent":                                !state.Scrolled,
		},
		g.Attr("data-active", string(state.ActiveSection)),
		g.Attr("data-menu-open", strconv.FormatBool(state.MenuOpen)),
		g.Attr("data-scrolled", strconv.FormatBool(state.Scrolled)),
		g.Attr("hx-ext", "json-enc"),
		g.Attr("hx-post", ScrollPath),
		g.Attr("hx-trigger", trigger),
		g.Attr("hx-target", "#"+NavbarID),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-vals", liveVals),
		h.Nav(
			h.Class("container mx-auto px-6 py-4 flex justify-between items-center"),
			h.A(
				h.Href("#"),
				h.Class("text-2xl font-bold bg-clip-text text-transparent bg-gradient-to-r from-purple-500 to-pink-500"),
				g.Text(pg.p.Hero.Initials),
			),
			h.Div(
				h.Class("hidden md:flex space-x-8"),
				g.Map(pg.p.Nav, func(link content.NavLink) g.Node {
					return navButton(link.Name, link.Section, state, false)
				}),
			),
			h.Div(
				h.Class("md:hidden"),
				h.Button(
					h.Type("button"),
					h.Class("text-gray-300 hover:text-purple-400 focus:outline-none"),
					g.Attr("aria-label", "Toggle menu"),
					g.Attr("hx-post", MenuPath),
					g.If(state.MenuOpen, h.Span(g.Text("✕"))),
					g.If(!state.MenuOpen, h.Span(g.Text("☰"))),
				),
			),
		),
		g.If(state.MenuOpen,
			h.Div(
				h.ID("mobile-menu"),
				h.Class("md:hidden bg-gray-800/95 backdrop-blur-md py-2 px-4 shadow-lg"),
				g.Map(pg.p.Nav, func(link content.NavLink) g.Node {
					return navButton(link.Name, link.Section, state, true)
				}),
			),
		),
	)
}

func navButton(label, section string, state nav.UIState, mobile bool) g.Node {
	active := state.ActiveSection == nav.SectionID(section)
	classes := c.Classes{
		"transition-colors duration-300":      !mobile,
		"text-purple-400 font-medium":         active,
		"text-gray-300 hover:text-purple-400": !active && !mobile,
		"block w-full text-left py-2 px-4":    mobile,
		"bg-gray-700/50":                      active && mobile,
		"text-gray-300 hover:bg-gray-700/30":  !active && mobile,
	}
	return h.Button(
		h.Type("button"),
		classes,
		g.Attr("data-section", section),
		g.If(active, g.Attr("aria-current", "true")),
		g.Attr("hx-post", NavigatePath),
		g.Attr("hx-vals", targetVals(section)),
		g.Text(label),
	)
}

// NavigateTo is a control outside the navbar that scrolls to section, like
// the hero call-to-action buttons.
func NavigateTo(section string, children ...g.Node) g.Node {
	return h.Button(
		h.Type("button"),
		g.Attr("hx-ext", "json-enc"),
		g.Attr("hx-post", NavigatePath),
		g.Attr("hx-target", "#"+NavbarID),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-vals", "js:{target: "+quote(section)+", sections: portfolio.layout(), state: portfolio.state()}"),
		g.Group(children),
	)
}

func targetVals(section string) string {
	b, _ := json.Marshal(map[string]string{"target": section})
	return string(b)
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
