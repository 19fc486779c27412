// Package form implements the contact and newsletter form state machines:
// field validation, touched/error bookkeeping and submission through an
// injected Submitter.
package form

import (
	"context"
	"regexp"
	"strings"
)

type FieldType string

const (
	Text     FieldType = "text"
	Email    FieldType = "email"
	Select   FieldType = "select"
	Textarea FieldType = "textarea"
)

// Field is one entry of a form schema. Errors and touched state are keyed
// by ID.
type Field struct {
	ID          string
	Label       string
	Type        FieldType
	Placeholder string
	Required    bool
	Options     []string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const emailMessage = "Please enter a valid email address"

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateField returns the error message for value, or "" when it is valid.
func ValidateField(f Field, value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if f.Required {
			return f.Label + " is required"
		}
		return ""
	}
	if f.Type == Email && !ValidEmail(trimmed) {
		return emailMessage
	}
	return ""
}

// ContactFields is the default contact form schema.
func ContactFields() []Field {
	return []Field{
		{ID: "name", Label: "Name", Type: Text, Placeholder: "Your name", Required: true},
		{ID: "email", Label: "Email", Type: Email, Placeholder: "you@company.com", Required: true},
		{ID: "company", Label: "Company", Type: Text, Placeholder: "Company (optional)"},
		{ID: "service", Label: "Service", Type: Select, Required: true, Options: []string{
			"Website copy", "Email sequence", "Brand voice guide", "Something else",
		}},
		{ID: "message", Label: "Message", Type: Textarea, Placeholder: "Tell me about your project", Required: true},
	}
}

// Submitter delivers a completed form. The form machines never look past
// the returned error.
type Submitter interface {
	Submit(ctx context.Context, data map[string]string) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, data map[string]string) error

func (f SubmitterFunc) Submit(ctx context.Context, data map[string]string) error {
	return f(ctx, data)
}
