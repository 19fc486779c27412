package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/sections"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

func About(e Env) g.Node {
	s := e.Site
	return e.layout(content.Page{
		Title:       "About",
		Description: s.AboutHero.Subtitle,
		Path:        content.PathAbout,
		OGImage:     s.AboutHero.Image,
	}, false,
		sections.Hero.Render(e.Mobile, sections.HeroProps{Hero: s.AboutHero, Level: 1}),
		sections.Approach.Render(e.Mobile, sections.ApproachProps{Title: "How I work", Steps: s.Approach}),
		sections.Journey.Render(e.Mobile, sections.JourneyProps{Title: "How I got here", Milestones: s.Journey}),
		ctaBand("Let's find your voice together."),
	)
}

func Services(e Env) g.Node {
	s := e.Site
	return e.layout(content.Page{
		Title:       "Services",
		Description: "Copywriting packages and add-ons.",
		Path:        content.PathServices,
	}, false,
		pageHeader("Services", "Pick a starting point", "Every project starts with a conversation. These packages are where most clients land."),
		Section(Class("packages"),
			Div(Class("grid package-grid"), g.Map(s.Packages, ui.PackageCard)),
		),
		g.If(len(s.AddOns) > 0, Section(Class("add-on-section"),
			ui.SectionHeader("Extras", "Add-ons", ""),
			ui.AddOnList(s.AddOns),
		)),
		ctaBand("Not sure which fits? Ask me."),
	)
}

// NotFound is rendered with a 404 status for unknown routes and slugs.
func NotFound(e Env) g.Node {
	return e.layout(content.Page{Title: "Page not found"}, false,
		Section(Class("not-found"),
			ui.Heading(1, "", g.Text("This page took a coffee break")),
			ui.Lead("The link may be old or mistyped."),
			ui.LinkButton(content.NavItem{Label: "Back home", Path: content.PathHome}, true),
		),
	)
}
