package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
)

// LinkButton renders a nav item as a styled link. Primary items get the
// filled style.
func LinkButton(item content.NavItem, primary bool) g.Node {
	if item.Path == "" || item.Label == "" {
		return nil
	}
	return A(
		c.Classes{"btn": true, "btn-primary": primary, "btn-ghost": !primary},
		Href(item.Path),
		g.Text(item.Label),
		g.If(primary, Icon("arrow-right", "btn-icon")),
	)
}

// SubmitButton is disabled while busy so a form cannot be posted twice.
func SubmitButton(label, busyLabel string, busy bool) g.Node {
	text := label
	if busy {
		text = busyLabel
	}
	return Button(
		Type("submit"),
		c.Classes{"btn": true, "btn-primary": true, "is-busy": busy},
		g.If(busy, Disabled()),
		g.If(busy, Aria("busy", "true")),
		g.Text(text),
	)
}

func Divider() g.Node {
	return Hr(Class("divider"), Aria("hidden", "true"))
}

// Image renders an image, or a placeholder block when src is empty.
func Image(src, alt, class string) g.Node {
	if src == "" {
		return Div(Class("image-placeholder "+class), Role("img"), Aria("label", alt))
	}
	return Img(Class(class), Src(src), Alt(alt), g.Attr("loading", "lazy"))
}

// Card is the generic bordered container.
func Card(class string, children ...g.Node) g.Node {
	return Div(append([]g.Node{Class("card " + class)}, children...)...)
}

func PostCard(p *content.BlogPost) g.Node {
	return Article(Class("card post-card"),
		A(Href(content.PostPath(p.Slug)), Class("post-card-link"),
			Image(p.CoverImage, p.Title, "post-card-image"),
			Div(Class("post-card-body"),
				g.If(!p.Date.IsZero(), g.El("time", g.Attr("datetime", p.Date.Format("2006-01-02")), g.Text(p.Date.Format("January 2, 2006")))),
				Heading(3, "", g.Text(p.Title)),
				P(g.Text(p.Excerpt)),
				TagList(p.Tags),
			),
		),
	)
}

func ProjectCard(p content.Project) g.Node {
	return Article(Class("card project-card"), Data("project", p.ID),
		Image(p.ImagePath, p.Title, "project-card-image"),
		Div(Class("project-card-body"),
			Heading(3, "", g.Text(p.Title)),
			P(g.Text(p.Description)),
			TagList(p.Tags),
			g.If(p.Link != "", A(Class("text-link"), Href(p.Link), Rel("noopener noreferrer"), Target("_blank"), g.Text("View project"))),
		),
	)
}

func TagList(tags []string) g.Node {
	if len(tags) == 0 {
		return nil
	}
	return Ul(Class("tags"), g.Map(tags, func(t string) g.Node {
		return Li(Class("tag"), g.Text(t))
	}))
}

func PackageCard(p content.ServicePackage) g.Node {
	return Article(
		c.Classes{"card": true, "package-card": true, "is-featured": p.Featured},
		ID("package-"+p.ID),
		g.If(p.Featured, Span(Class("badge"), g.Text("Most popular"))),
		Heading(3, "", g.Text(p.Name)),
		P(Class("price"), g.Text(p.Price)),
		P(g.Text(p.Summary)),
		Ul(Class("features"), g.Map(p.Features, func(f string) g.Node {
			return Li(Icon("check", "feature-icon"), g.Text(f))
		})),
		LinkButton(content.NavItem{Label: fmt.Sprintf("Start with %s", p.Name), Path: content.PathContact}, p.Featured),
	)
}

func AddOnList(addOns []content.ServiceAddOn) g.Node {
	if len(addOns) == 0 {
		return nil
	}
	return Ul(Class("add-ons"), g.Map(addOns, func(a content.ServiceAddOn) g.Node {
		return Li(Class("add-on"),
			Div(Strong(g.Text(a.Name)), Span(Class("price"), g.Text(a.Price))),
			P(g.Text(a.Description)),
		)
	}))
}

// EmptyState stands in for a list that has nothing to show.
func EmptyState(message string) g.Node {
	return Div(Class("empty-state"), Role("status"), P(g.Text(message)))
}
