// Package pages composes sections and components into full documents.
package pages

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/form"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

// Env is the per-request rendering context every page needs.
type Env struct {
	Site       *content.Site
	BaseURL    string
	Mobile     bool
	Breakpoint int
	// Newsletter is the footer signup state. Nil renders an empty form.
	Newsletter *form.Newsletter

	CarouselInterval time.Duration
	// CarouselTransition is how long a slide change animates; the page script
	// ignores further changes until it has passed.
	CarouselTransition time.Duration
	SwipeThreshold     int
}

func (e Env) layout(page content.Page, hideNewsletter bool, body ...g.Node) g.Node {
	return ui.Layout(ui.LayoutProps{
		Page:           page,
		Site:           e.Site,
		BaseURL:        e.BaseURL,
		Mobile:         e.Mobile,
		Breakpoint:     e.Breakpoint,
		Newsletter:     e.Newsletter,
		HideNewsletter: hideNewsletter,
	}, body...)
}

func pageHeader(eyebrow, title, intro string) g.Node {
	return Header(Class("page-header"),
		ui.Eyebrow(eyebrow),
		ui.Heading(1, "", g.Text(title)),
		ui.Lead(intro),
	)
}

func ctaBand(title string) g.Node {
	return Section(Class("cta-band"),
		ui.Heading(2, "", g.Text(title)),
		ui.LinkButton(content.NavItem{Label: "Let's talk", Path: content.PathContact}, true),
	)
}
