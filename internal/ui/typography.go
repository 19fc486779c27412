package ui

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Heading renders h1..h4; anything else falls back to h2.
func Heading(level int, class string, children ...g.Node) g.Node {
	level = clampLevel(level)
	children = append([]g.Node{Class(strings.TrimSpace("heading heading-" + strconv.Itoa(level) + " " + class))}, children...)
	switch level {
	case 1:
		return H1(children...)
	case 3:
		return H3(children...)
	case 4:
		return H4(children...)
	}
	return H2(children...)
}

func clampLevel(level int) int {
	if level < 1 || level > 4 {
		return 2
	}
	return level
}

func Eyebrow(text string) g.Node {
	if text == "" {
		return nil
	}
	return P(Class("eyebrow"), g.Text(text))
}

func Lead(text string) g.Node {
	if text == "" {
		return nil
	}
	return P(Class("lead"), g.Text(text))
}

// SectionHeader is the eyebrow, title and intro block that opens most sections.
func SectionHeader(eyebrow, title, intro string) g.Node {
	return Div(Class("section-header"),
		Eyebrow(eyebrow),
		Heading(2, "", g.Text(title)),
		Lead(intro),
	)
}

// Reveal wraps children in the scroll-reveal hook used by the stylesheet.
func Reveal(children ...g.Node) g.Node {
	return Div(append([]g.Node{Class("reveal"), Data("reveal", "")}, children...)...)
}
