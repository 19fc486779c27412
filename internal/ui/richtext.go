package ui

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RichText renders an already converted HTML body.
func RichText(body template.HTML) g.Node {
	if body == "" {
		return nil
	}
	return Div(Class("prose"), g.Raw(string(body)))
}

// Markdown converts source with md and renders it as rich text. A conversion
// failure renders nothing.
func Markdown(md goldmark.Markdown, source string) g.Node {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return nil
	}
	return RichText(template.HTML(buf.String()))
}
