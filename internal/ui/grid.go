package ui

import (
	"net/url"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
)

// FilterTabs links each tag to basePath?tag=<tag>. The active tag is marked
// with aria-current.
func FilterTabs(basePath string, tags []string, active string) g.Node {
	if len(tags) < 2 {
		return nil
	}
	if active == "" {
		active = content.AllTag
	}
	return Nav(Class("filter-tabs"), Aria("label", "Filter"),
		g.Map(tags, func(t string) g.Node {
			href := basePath
			if t != content.AllTag {
				href += "?tag=" + url.QueryEscape(t)
			}
			return A(
				c.Classes{"filter-tab": true, "is-active": t == active},
				Href(href),
				g.If(t == active, Aria("current", "true")),
				g.Text(t),
			)
		}),
	)
}

// PostGrid renders posts, or an empty state when there are none.
func PostGrid(posts []*content.BlogPost) g.Node {
	if len(posts) == 0 {
		return EmptyState("No posts here yet. Try another topic.")
	}
	return Div(Class("grid post-grid"), g.Map(posts, PostCard))
}

func ProjectGrid(projects []content.Project) g.Node {
	if len(projects) == 0 {
		return EmptyState("Nothing in this category yet.")
	}
	return Div(Class("grid project-grid"), g.Map(projects, ProjectCard))
}
