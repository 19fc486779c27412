package sections

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/responsive"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

type ProcessProps struct {
	Title string
	Intro string
	Steps []content.ProcessStep
}

var Process = responsive.Variant[ProcessProps]{
	Name:    "process",
	Desktop: DesktopProcess,
	Mobile:  MobileProcess,
}

// DesktopProcess lays the steps out in a single connected row.
func DesktopProcess(p ProcessProps) g.Node {
	if len(p.Steps) == 0 {
		return nil
	}
	return Section(Class("process process-desktop"),
		ui.SectionHeader("How it works", p.Title, p.Intro),
		Ol(Class("process-row"), g.Map(p.Steps, func(s content.ProcessStep) g.Node {
			return Li(Class("process-step"),
				ui.Reveal(
					Span(Class("step-number"), g.Text(strconv.Itoa(s.Number))),
					ui.Icon(s.Icon, "step-icon"),
					ui.Heading(3, "", g.Text(s.Title)),
					P(g.Text(s.Description)),
				),
			)
		})),
	)
}

// MobileProcess collapses each step into a disclosure; the first starts open.
func MobileProcess(p ProcessProps) g.Node {
	if len(p.Steps) == 0 {
		return nil
	}
	items := make([]g.Node, len(p.Steps))
	for i, s := range p.Steps {
		items[i] = g.El("details", Class("process-step"), g.If(i == 0, g.Attr("open")),
			g.El("summary",
				Span(Class("step-number"), g.Text(strconv.Itoa(s.Number))),
				g.Text(s.Title),
			),
			P(g.Text(s.Description)),
		)
	}
	return Section(Class("process process-mobile"),
		ui.Heading(2, "", g.Text(p.Title)),
		Div(Class("process-list"), g.Group(items)),
	)
}

type ApproachProps struct {
	Title string
	Steps []content.ApproachStep
}

var Approach = responsive.Variant[ApproachProps]{
	Name:    "approach",
	Desktop: DesktopApproach,
	Mobile:  MobileApproach,
}

func DesktopApproach(p ApproachProps) g.Node {
	if len(p.Steps) == 0 {
		return nil
	}
	return Section(Class("approach approach-desktop"),
		ui.SectionHeader("My approach", p.Title, ""),
		Div(Class("grid approach-grid"), g.Map(p.Steps, func(s content.ApproachStep) g.Node {
			return ui.Card("approach-card",
				ui.Icon(s.Icon, "approach-icon"),
				ui.Heading(3, "", g.Text(s.Title)),
				P(g.Text(s.Description)),
			)
		})),
	)
}

func MobileApproach(p ApproachProps) g.Node {
	if len(p.Steps) == 0 {
		return nil
	}
	return Section(Class("approach approach-mobile"),
		ui.Heading(2, "", g.Text(p.Title)),
		Ul(Class("approach-list"), g.Map(p.Steps, func(s content.ApproachStep) g.Node {
			return Li(
				Strong(g.Text(s.Title)),
				P(g.Text(s.Description)),
			)
		})),
	)
}

type JourneyProps struct {
	Title      string
	Milestones []content.Milestone
}

var Journey = responsive.Variant[JourneyProps]{
	Name:    "journey",
	Desktop: DesktopJourney,
	Mobile:  MobileJourney,
}

// DesktopJourney alternates milestones either side of a centre line.
func DesktopJourney(p JourneyProps) g.Node {
	if len(p.Milestones) == 0 {
		return nil
	}
	items := make([]g.Node, len(p.Milestones))
	for i, m := range p.Milestones {
		side := "is-left"
		if i%2 == 1 {
			side = "is-right"
		}
		items[i] = Li(Class("milestone "+side),
			ui.Reveal(
				Span(Class("milestone-year"), g.Text(m.Year)),
				ui.Heading(3, "", g.Text(m.Title)),
				P(g.Text(m.Description)),
			),
		)
	}
	return Section(Class("journey journey-desktop"),
		ui.SectionHeader("The journey", p.Title, ""),
		Ol(Class("timeline"), g.Group(items)),
	)
}

func MobileJourney(p JourneyProps) g.Node {
	if len(p.Milestones) == 0 {
		return nil
	}
	return Section(Class("journey journey-mobile"),
		ui.Heading(2, "", g.Text(p.Title)),
		Ol(Class("timeline is-compact"), g.Map(p.Milestones, func(m content.Milestone) g.Node {
			return Li(Class("milestone"),
				Span(Class("milestone-year"), g.Text(m.Year)),
				Strong(g.Text(m.Title)),
				P(g.Text(m.Description)),
			)
		})),
	)
}
