package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/sections"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

const recentPostCount = 3

// Home renders the landing page with testimonial active shown first.
func Home(e Env, active int) g.Node {
	s := e.Site
	return e.layout(content.Page{
		Description: s.Tagline,
		Path:        content.PathHome,
		OGImage:     s.Hero.Image,
	}, false,
		sections.Hero.Render(e.Mobile, sections.HeroProps{Hero: s.Hero, Level: 1}),
		sections.Process.Render(e.Mobile, sections.ProcessProps{
			Title: "From blank page to launch",
			Intro: "A simple four-step process, with you in the loop at every stage.",
			Steps: s.Process,
		}),
		sections.Testimonials.Render(e.Mobile, sections.TestimonialsProps{
			Eyebrow: "Kind words",
			Title:   "What clients say",
			Carousel: ui.CarouselProps{
				ID:             "testimonial-carousel",
				Items:          s.Testimonials,
				Active:         active,
				ReturnTo:       content.PathHome,
				Interval:       e.CarouselInterval,
				Transition:     e.CarouselTransition,
				SwipeThreshold: e.SwipeThreshold,
			},
		}),
		g.If(len(s.Posts) > 0, Section(Class("recent-posts"),
			ui.SectionHeader("From the blog", "Notes on writing that sells", ""),
			ui.PostGrid(s.RecentPosts(recentPostCount)),
			A(Class("text-link"), Href(content.PathBlog), g.Text("Read all posts")),
		)),
		ctaBand("Ready for copy that finally sounds like you?"),
	)
}
