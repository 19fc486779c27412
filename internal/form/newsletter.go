package form

import "strings"

// NewsletterField is the only field of the signup form.
var NewsletterField = Field{
	ID:          "email",
	Label:       "Email",
	Type:        Email,
	Placeholder: "you@company.com",
	Required:    true,
}

// NewsletterFailureMessage is shown in the signup banner when the Submitter
// fails.
const NewsletterFailureMessage = "Something went wrong subscribing you. Please try again."

// Newsletter is the single-field signup form. Only presence is checked;
// address syntax is left to the browser's email input.
type Newsletter struct {
	*Machine
}

func NewNewsletter() *Newsletter {
	return &Newsletter{Machine: newMachine([]Field{NewsletterField}, requiredOnly, NewsletterFailureMessage)}
}

func requiredOnly(f Field, value string) string {
	if f.Required && strings.TrimSpace(value) == "" {
		return f.Label + " is required"
	}
	return ""
}

func (n *Newsletter) Email() string {
	return n.Value(NewsletterField.ID)
}

func (n *Newsletter) SetEmail(v string) {
	n.Set(NewsletterField.ID, v)
}
