package page

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/anupks5942/portfolio/internal/content"
)

func section(id, class string, children ...g.Node) g.Node {
	return h.Section(h.ID(id), h.Class(class), g.Group(children))
}

func (pg *Page) hero() g.Node {
	hero := pg.p.Hero
	return section("hero", "min-h-screen flex items-center bg-gray-900 pt-20 relative overflow-hidden",
		h.Div(h.Class("absolute inset-0 bg-gradient-to-br from-gray-900 via-purple-900/20 to-gray-900")),
		h.Div(
			h.Class("container mx-auto px-6 py-12 md:flex items-center justify-between relative z-10"),
			h.Div(
				h.Class("w-full md:w-3/4 mb-12 md:mb-0"),
				h.Div(h.Class("inline-block px-3 py-1 mb-6 rounded-full bg-purple-900/30 border border-purple-700/30 text-purple-400 text-sm"),
					g.Text(hero.Badge)),
				h.H1(
					h.Class("text-4xl md:text-5xl font-bold mb-4 text-white"),
					h.Span(h.Class("block"), g.Text(hero.Greeting)),
					h.Span(h.Class("bg-clip-text text-transparent bg-gradient-to-r from-purple-400 to-pink-500"), g.Text(hero.Name)),
				),
				h.H2(h.Class("text-xl md:text-2xl text-gray-300 mb-6"), g.Text(hero.Headline)),
				h.P(h.Class("text-gray-400 mb-8 max-w-2xl"), g.Text(hero.Intro)),
			),
			h.Div(
				h.Class("flex flex-col sm:flex-row gap-4"),
				NavigateTo("projects",
					h.Class("px-6 py-3 rounded-md bg-gradient-to-r from-purple-600 to-pink-600 text-white"),
					g.Text("Explore Projects"),
				),
				NavigateTo("contact",
					h.Class("px-6 py-3 rounded-md border border-purple-500 text-purple-400"),
					g.Text("Get in Touch"),
				),
			),
		),
	)
}

func (pg *Page) about() g.Node {
	about := pg.p.About
	return section("about", "py-20 bg-gray-900 relative",
		h.Div(
			h.Class("container mx-auto px-6 relative z-10"),
			heading("About Me"),
			h.Div(
				h.Class("flex flex-col md:flex-row items-center gap-12"),
				h.Div(
					h.Class("w-full md:w-2/5"),
					h.Img(h.Src(about.Photo), h.Alt(about.PhotoAlt), h.Class("rounded-lg shadow-2xl w-full object-cover")),
				),
				h.Div(
					h.Class("w-full md:w-3/5 text-gray-300 space-y-6"),
					h.Div(h.Class("prose prose-invert"), g.Raw(pg.aboutHTML)),
					g.If(len(about.Achievements) > 0,
						h.Div(
							h.H3(h.Class("text-xl font-semibold text-white mb-3"), g.Text("Achievements")),
							h.Ul(
								h.Class("space-y-2"),
								g.Map(about.Achievements, func(a string) g.Node {
									return h.Li(h.Class("flex items-center"), g.Text(a))
								}),
							),
						),
					),
					h.Div(
						h.Class("flex items-center gap-6"),
						g.If(about.ResumeURL != "",
							h.A(h.Href(about.ResumeURL), h.Target("_blank"),
								h.Class("px-5 py-2 rounded-md bg-gradient-to-r from-purple-600 to-pink-600 text-white"),
								g.Text("Download Resume")),
						),
						socials(pg.p.Socials),
					),
				),
			),
		),
	)
}

func socials(list []content.Social) g.Node {
	return h.Div(
		h.Class("flex space-x-4"),
		g.Map(list, func(s content.Social) g.Node {
			return external(s.URL,
				h.Class("text-gray-400 hover:text-purple-400"),
				g.Attr("aria-label", s.Kind),
				g.Text(socialLabel(s.Kind)),
			)
		}),
	)
}

func socialLabel(kind string) string {
	switch kind {
	case "github":
		return "GitHub"
	case "linkedin":
		return "LinkedIn"
	case "code":
		return "GeeksforGeeks"
	default:
		return kind
	}
}

func chips(items []string) g.Node {
	return h.Div(
		h.Class("flex flex-wrap gap-2"),
		g.Map(items, func(item string) g.Node {
			return h.Span(h.Class("px-3 py-1 bg-gray-700/50 text-gray-300 rounded-full text-sm"), g.Text(item))
		}),
	)
}

func (pg *Page) skills() g.Node {
	return section("skills", "py-20 bg-gray-800 relative",
		h.Div(
			h.Class("container mx-auto px-6 relative z-10"),
			heading("Technical Skills"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(pg.p.Skills, func(cat content.SkillCategory) g.Node {
					return h.Div(
						h.Class("skill-card bg-gray-900 rounded-xl p-6 shadow-lg"),
						g.Attr("data-icon", cat.Icon),
						h.H3(h.Class("text-xl font-semibold text-white mb-4"), g.Text(cat.Category)),
						chips(cat.Items),
					)
				}),
			),
		),
	)
}

func (pg *Page) experience() g.Node {
	entries := make([]g.Node, 0, len(pg.p.Experience))
	for i, exp := range pg.p.Experience {
		entries = append(entries, experienceEntry(i, exp))
	}

	return section("experience", "py-20 bg-gray-900 relative",
		h.Div(
			h.Class("container mx-auto px-6 relative z-10"),
			heading("Work Experience"),
			h.Div(
				h.Class("relative"),
				h.Div(h.Class("absolute left-6 md:left-1/2 h-full w-0.5 bg-purple-700/30")),
				g.Group(entries),
			),
		),
	)
}

// experienceEntry alternates timeline sides: even entries sit right of the
// line, odd entries left and right-aligned.
func experienceEntry(i int, exp content.Experience) g.Node {
	right := i%2 == 0
	return h.Div(
		c.Classes{
			"timeline-entry relative pl-16 md:w-1/2 mb-12": true,
			"md:ml-auto md:pl-8 md:pr-0 md:text-left":      right,
			"md:mr-auto md:pr-8 md:pl-0 md:text-right":     !right,
		},
		h.Div(
			h.Class("bg-gray-800 rounded-xl p-6 shadow-lg"),
			h.Div(h.Class("text-sm text-purple-400 mb-2"), g.Text(exp.Period)),
			h.H3(h.Class("text-xl font-semibold text-white"), g.Text(exp.Role)),
			h.P(h.Class("text-gray-400 mb-4"), g.Text(exp.Company)),
			h.Ul(
				c.Classes{"space-y-2": true, "md:text-right": !right},
				g.Map(exp.Responsibilities, func(item string) g.Node {
					return h.Li(h.Class("text-gray-300"), g.Text(item))
				}),
			),
		),
	)
}

func (pg *Page) projects() g.Node {
	return section("projects", "py-20 bg-gray-800 relative",
		h.Div(
			h.Class("container mx-auto px-6 relative z-10"),
			heading("Featured Projects"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8"),
				g.Map(pg.p.Projects, projectCard),
			),
		),
	)
}

func projectCard(p content.Project) g.Node {
	return h.Div(
		h.Class("project-card bg-gray-900 rounded-xl overflow-hidden shadow-lg"),
		h.Div(
			h.Class("relative h-48 overflow-hidden"),
			h.Img(h.Src(p.ImageURL()), h.Alt(p.Title), h.Class("w-full h-full object-cover")),
			h.Div(h.Class("absolute bottom-0 left-0 p-4"),
				h.H3(h.Class("text-xl font-bold text-white"), g.Text(p.Title))),
		),
		h.Div(
			h.Class("p-6"),
			h.P(h.Class("text-gray-300 mb-4"), g.Text(p.Description)),
			h.H4(h.Class("text-sm font-semibold text-gray-400 mb-2"), g.Text("Tech Stack:")),
			chips(p.Stack),
			h.Div(
				h.Class("flex gap-4 mt-6"),
				g.If(p.Repo != "", external(p.Repo, h.Class("text-purple-400"), g.Text("View Code"))),
				g.If(p.DownloadLink != "", external(p.DownloadLink, h.Class("text-purple-400"), g.Text("Download App"))),
				g.If(p.Demo != "", external(p.Demo, h.Class("text-purple-400"), g.Text("Live Demo"))),
			),
		),
	)
}

func (pg *Page) education() g.Node {
	return section("education", "py-20 bg-gray-900 relative",
		h.Div(
			h.Class("container mx-auto px-6 relative z-10"),
			heading("Education"),
			h.Div(
				h.Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Map(pg.p.Education, educationCard),
			),
		),
	)
}

func educationCard(e content.Education) g.Node {
	return h.Div(
		h.Class("education-card bg-gray-800 rounded-xl p-6 shadow-lg relative overflow-hidden"),
		g.Attr("data-icon", e.Icon),
		h.H3(h.Class("text-xl font-semibold text-white"), g.Text(e.Degree)),
		h.P(h.Class("text-gray-300"), g.Text(e.Institution)),
		h.P(h.Class("text-gray-400 text-sm mb-3"), g.Text(e.Duration)),
		g.If(e.CGPA != "", h.P(h.Class("cgpa text-gray-300"), h.Strong(g.Text("CGPA:")), g.Text(" "+e.CGPA))),
		g.If(e.Percentage != "", h.P(h.Class("percentage text-gray-300"), h.Strong(g.Text("Percentage:")), g.Text(" "+e.Percentage))),
		g.If(len(e.Coursework) > 0,
			h.Div(
				h.H4(h.Class("text-sm font-semibold text-gray-400 mt-4 mb-2"), g.Text("Relevant Coursework:")),
				chips(e.Coursework),
			),
		),
	)
}
