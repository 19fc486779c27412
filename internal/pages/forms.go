package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/form"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

// Contact renders the contact page around the machine's current state.
func Contact(e Env, m *form.Machine) g.Node {
	return e.layout(content.Page{
		Title:       "Contact",
		Description: "Tell me about your project.",
		Path:        content.PathContact,
	}, false,
		pageHeader("Contact", "Let's talk about your words", "Share a little about your business and what you need. I reply within two business days."),
		Section(Class("contact"),
			Div(Class("contact-form-wrap"), ui.ContactForm(m, content.PathContact)),
			g.If(!e.Mobile, Aside(Class("contact-aside"),
				ui.Icon("mail", "contact-icon"),
				ui.Heading(3, "", g.Text("Prefer email?")),
				P(g.Text("Write to hello@thecopysocial.com and I will get back to you.")),
			)),
		),
	)
}

// Subscribe is the standalone newsletter page. The footer signup is hidden
// so the page carries a single form.
func Subscribe(e Env, n *form.Newsletter) g.Node {
	return e.layout(content.Page{
		Title:       "Newsletter",
		Description: "One short email a month on writing that sells.",
		Path:        content.PathSubscribe,
	}, true,
		pageHeader("Newsletter", "Notes on writing that sells", "One short email a month. Practical tips, real examples, no fluff."),
		Section(Class("subscribe"), ui.NewsletterForm(n, content.PathSubscribe, false)),
	)
}
