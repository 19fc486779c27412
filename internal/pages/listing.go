package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

// Portfolio lists projects carrying tag. An empty tag or content.AllTag
// lists everything.
func Portfolio(e Env, tag string) g.Node {
	s := e.Site
	return e.layout(content.Page{
		Title:       "Portfolio",
		Description: "Selected copywriting projects.",
		Path:        content.PathPortfolio,
	}, false,
		pageHeader("Portfolio", "Selected work", "A few projects I'm proud of, and the results they drove."),
		ui.FilterTabs(content.PathPortfolio, content.ProjectTags(s.Projects), tag),
		ui.ProjectGrid(content.FilterProjects(s.Projects, tag)),
	)
}

func Blog(e Env, tag string) g.Node {
	s := e.Site
	return e.layout(content.Page{
		Title:       "Blog",
		Description: "Notes on copywriting, brand voice and email.",
		Path:        content.PathBlog,
	}, false,
		pageHeader("Blog", "Notes on writing that sells", ""),
		ui.FilterTabs(content.PathBlog, content.PostTags(s.Posts), tag),
		ui.PostGrid(content.FilterPosts(s.Posts, tag)),
	)
}

// Post renders a single blog post.
func Post(e Env, p *content.BlogPost) g.Node {
	return e.layout(content.Page{
		Title:       p.Title,
		Description: p.Excerpt,
		Path:        content.PostPath(p.Slug),
		OGImage:     p.CoverImage,
	}, false,
		Article(Class("post"),
			Header(Class("post-header"),
				A(Class("text-link back-link"), Href(content.PathBlog), ui.Icon("arrow-left", ""), g.Text("All posts")),
				ui.Heading(1, "", g.Text(p.Title)),
				g.If(!p.Date.IsZero(), g.El("time", g.Attr("datetime", p.Date.Format("2006-01-02")), g.Text(p.Date.Format("January 2, 2006")))),
				ui.TagList(p.Tags),
			),
			g.If(p.CoverImage != "", ui.Image(p.CoverImage, p.Title, "post-cover")),
			ui.RichText(p.Body),
		),
		ctaBand("Want words like these for your business?"),
	)
}
