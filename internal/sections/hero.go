// Package sections holds the page sections whose layout differs between
// desktop and mobile. Each section is a responsive.Variant whose two sides
// take the same props.
package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/responsive"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

type HeroProps struct {
	Hero content.Hero
	// Level is the heading level of the title; pages pass 1.
	Level int
}

var Hero = responsive.Variant[HeroProps]{
	Name:    "hero",
	Desktop: DesktopHero,
	Mobile:  MobileHero,
}

func heroTitle(p HeroProps) g.Node {
	return ui.Heading(p.Level, "hero-title",
		g.Text(p.Hero.Title),
		g.If(p.Hero.Highlight != "", g.Group([]g.Node{g.Text(" "), Span(Class("highlight"), g.Text(p.Hero.Highlight))})),
	)
}

func DesktopHero(p HeroProps) g.Node {
	return Section(Class("hero hero-desktop"),
		Div(Class("hero-copy"),
			ui.Eyebrow(p.Hero.Eyebrow),
			heroTitle(p),
			ui.Lead(p.Hero.Subtitle),
			Div(Class("hero-actions"),
				ui.LinkButton(p.Hero.CTA, true),
				ui.LinkButton(p.Hero.Secondary, false),
			),
		),
		Div(Class("hero-media"), ui.Image(p.Hero.Image, "", "hero-image")),
	)
}

// MobileHero stacks the copy, drops the side image and stretches the buttons.
func MobileHero(p HeroProps) g.Node {
	return Section(Class("hero hero-mobile"),
		ui.Eyebrow(p.Hero.Eyebrow),
		heroTitle(p),
		ui.Lead(p.Hero.Subtitle),
		Div(Class("hero-actions is-stacked"),
			ui.LinkButton(p.Hero.CTA, true),
			ui.LinkButton(p.Hero.Secondary, false),
		),
	)
}
