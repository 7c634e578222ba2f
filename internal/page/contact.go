package page

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	h "maragu.dev/gomponents/html"

	"github.com/anupks5942/portfolio/internal/relay"
)

// ContactFormID is the element a submission swaps.
const ContactFormID = "contact-form"

func (pg *Page) contact() g.Node {
	return section("contact", "py-20 bg-gray-800 relative",
		h.Div(
			h.Class("container mx-auto px-6 relative z-10"),
			heading("Get In Touch"),
			h.Div(
				h.Class("flex flex-col md:flex-row gap-12 max-w-5xl mx-auto"),
				g.If(pg.opts.ContactForm, h.Div(
					h.Class("w-full md:w-1/2"),
					pg.ContactForm(relay.Submission{}, relay.Status{}),
				)),
				pg.contactInfo(),
			),
		),
	)
}

func (pg *Page) contactInfo() g.Node {
	info := pg.p.Contact
	return h.Div(
		c.Classes{"contact-info w-full": true, "md:w-1/2": pg.opts.ContactForm},
		h.Div(
			h.Class("bg-gray-900 rounded-xl p-8 shadow-lg space-y-6"),
			h.H3(h.Class("text-xl font-semibold text-white"), g.Text("Contact Information")),
			g.If(info.Email != "", h.Div(
				h.P(h.Class("text-gray-400 text-sm"), g.Text("Email")),
				h.A(h.Href("mailto:"+info.Email), h.Class("text-white hover:text-purple-400"), g.Text(info.Email)),
			)),
			g.If(info.Phone != "", h.Div(
				h.P(h.Class("text-gray-400 text-sm"), g.Text("Phone")),
				h.A(h.Href("tel:"+info.Phone), h.Class("text-white hover:text-purple-400"), g.Text(phoneLabel(info.Phone, info.PhoneDisplay))),
			)),
			g.If(info.Availability != "", h.Div(
				h.P(h.Class("text-gray-400 text-sm"), g.Text("Availability")),
				h.P(h.Class("text-white"), g.Text(info.Availability)),
			)),
			g.If(len(info.Socials) > 0, h.Div(
				h.P(h.Class("text-gray-400 text-sm mb-2"), g.Text("Connect")),
				socials(info.Socials),
			)),
		),
	)
}

func phoneLabel(phone, display string) string {
	if display != "" {
		return display
	}
	return phone
}

// ContactForm renders the relay form with the visitor's values and the
// outcome of the last submission.
func (pg *Page) ContactForm(form relay.Submission, status relay.Status) g.Node {
	return h.Form(
		h.ID(ContactFormID),
		h.Class("bg-gray-900 rounded-xl p-8 shadow-lg"),
		h.Method("post"),
		h.Action(ContactPath),
		g.Attr("hx-post", ContactPath),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("hx-disabled-elt", "find button"),
		field("name", "Name", "text", form.Name, "Your Name"),
		field("email", "Email", "email", form.Email, "your.email@example.com"),
		h.Div(
			h.Class("mb-6"),
			h.Label(h.For("message"), h.Class("block text-gray-300 mb-2"), g.Text("Message")),
			h.Textarea(
				h.ID("message"), h.Name("message"), h.Rows("5"),
				h.Placeholder("How can I help you?"),
				h.Class("w-full px-4 py-3 bg-gray-800 border border-gray-700 rounded-md text-white"),
				g.Text(form.Message),
			),
		),
		g.If(status.Message != "", h.P(
			c.Classes{
				"form-status mb-4 text-center": true,
				"text-green-400":               status.Success != nil && *status.Success,
				"text-red-400":                 status.Success == nil || !*status.Success,
			},
			g.Text(status.Message),
		)),
		h.Button(
			h.Type("submit"),
			h.Class("w-full py-3 rounded-md flex items-center justify-center shadow-md transition-all duration-300 bg-gradient-to-r from-purple-600 to-pink-600 text-white disabled:bg-gray-600 disabled:bg-none disabled:text-gray-400 disabled:cursor-not-allowed"),
			// htmx puts htmx-request on the form while the post is in flight.
			h.Span(h.Class("send-label [.htmx-request_&]:hidden"), g.Text("Send Message")),
			h.Span(h.Class("htmx-indicator hidden [.htmx-request_&]:inline"), g.Text("Sending...")),
		),
	)
}

func field(id, label, typ, value, placeholder string) g.Node {
	return h.Div(
		h.Class("mb-6"),
		h.Label(h.For(id), h.Class("block text-gray-300 mb-2"), g.Text(label)),
		h.Input(
			h.Type(typ), h.ID(id), h.Name(id), h.Value(value),
			h.Placeholder(placeholder),
			h.Class("w-full px-4 py-3 bg-gray-800 border border-gray-700 rounded-md text-white"),
		),
	)
}
