package ui

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/form"
)

// IntentField carries which button posted a form.
const (
	IntentField = "intent"
	IntentReset = "reset"
)

// ContactForm renders the contact machine in its current state.
func ContactForm(m *form.Machine, action string) g.Node {
	if m.State() == form.Success {
		return successPanel(action,
			"Message sent",
			"Thanks for reaching out. I reply to every message within two business days.",
			"Send another message",
		)
	}

	busy := m.State() == form.Submitting
	return Form(Class("contact-form"), Method("post"), Action(action), g.Attr("novalidate"),
		Data("state", m.State().String()),
		errorBanner(m.Banner()),
		g.Map(m.Fields(), func(f form.Field) g.Node {
			return fieldRow(f, m.Value(f.ID), m.FieldError(f.ID), busy)
		}),
		SubmitButton("Send message", "Sending...", busy),
	)
}

// NewsletterForm renders the signup machine. Inline is the compact footer
// variant.
func NewsletterForm(n *form.Newsletter, action string, inline bool) g.Node {
	if n.State() == form.Success {
		return successPanel(action,
			"You're subscribed",
			"Look out for the next issue in your inbox.",
			"Subscribe another address",
		)
	}

	f := form.NewsletterField
	busy := n.State() == form.Submitting
	msg := n.FieldError(f.ID)
	return Form(
		c.Classes{"newsletter-form": true, "is-inline": inline},
		Method("post"), Action(action),
		Data("state", n.State().String()),
		errorBanner(n.Banner()),
		Div(Class("newsletter-row"),
			g.El("label", Class("sr-only"), For("newsletter-"+f.ID), g.Text(f.Label)),
			Input(
				ID("newsletter-"+f.ID), Name(f.ID), Type("email"), Required(),
				Placeholder(f.Placeholder), Value(n.Email()), g.Attr("autocomplete", "email"),
				g.If(msg != "", Aria("invalid", "true")),
				g.If(busy, Disabled()),
			),
			SubmitButton("Subscribe", "Subscribing...", busy),
		),
		fieldError(f.ID, msg),
	)
}

func successPanel(action, title, body, again string) g.Node {
	return Div(Class("form-success"), Role("status"),
		Icon("check", "success-icon"),
		Heading(3, "", g.Text(title)),
		P(g.Text(body)),
		Form(Method("post"), Action(action),
			Input(Type("hidden"), Name(IntentField), Value(IntentReset)),
			Button(Type("submit"), Class("btn btn-ghost"), g.Text(again)),
		),
	)
}

func errorBanner(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return Div(Class("form-banner is-error"), Role("alert"),
		Icon("alert", "banner-icon"),
		P(g.Text(msg)),
	)
}

func fieldError(id, msg string) g.Node {
	if msg == "" {
		return nil
	}
	return P(Class("field-error"), ID(id+"-error"),
		Icon("alert", "field-error-icon"),
		g.Text(msg),
	)
}

func fieldRow(f form.Field, value, msg string, busy bool) g.Node {
	inputID := "field-" + f.ID
	common := []g.Node{
		ID(inputID), Name(f.ID),
		g.If(f.Required, Required()),
		g.If(msg != "", Aria("invalid", "true")),
		g.If(msg != "", Aria("describedby", f.ID+"-error")),
		g.If(busy, Disabled()),
	}

	var control g.Node
	switch f.Type {
	case form.Textarea:
		control = Textarea(append(common, g.Attr("rows", "6"), Placeholder(f.Placeholder), g.Text(value))...)
	case form.Select:
		control = Select(append(common,
			Option(Value(""), g.If(value == "", Selected()), g.Text("Choose one")),
			g.Map(f.Options, func(o string) g.Node {
				return Option(Value(o), g.If(o == value, Selected()), g.Text(o))
			}),
		)...)
	default:
		typ := "text"
		if f.Type == form.Email {
			typ = "email"
		}
		control = Input(append(common, Type(typ), Placeholder(f.Placeholder), Value(value))...)
	}

	return Div(
		c.Classes{"field": true, "has-error": msg != ""},
		g.El("label", For(inputID),
			g.Text(f.Label),
			g.If(f.Required, Span(Class("required"), Aria("hidden", "true"), g.Text("*"))),
		),
		control,
		fieldError(f.ID, msg),
	)
}
