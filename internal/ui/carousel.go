package ui

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/carousel"
	"github.com/Gamikaru/thecopysocial/internal/content"
)

// CarouselParam is the query parameter carrying the active testimonial.
const CarouselParam = "t"

// carouselAnchor is the fragment every carousel link scrolls to.
const carouselAnchor = "#testimonials"

// SwipePath receives the touch coordinates posted by the carousel script.
const SwipePath = "/testimonials/swipe"

type CarouselProps struct {
	ID       string
	Items    []content.Testimonial
	Active   int
	ReturnTo string
	Interval time.Duration
	// Transition is how long the script holds further slide changes after
	// one starts. Zero disables the hold.
	Transition     time.Duration
	SwipeThreshold int
	// Compact drops the dot navigation, for narrow layouts.
	Compact bool
}

// CarouselHref is the link that shows item i on the page at path.
func CarouselHref(path string, i int) string {
	return path + "?" + CarouselParam + "=" + strconv.Itoa(i) + carouselAnchor
}

// TestimonialCarousel renders the active testimonial with previous, next and
// dot links. Every item is in the markup; only the active one is visible.
// An empty list renders nothing.
func TestimonialCarousel(p CarouselProps) g.Node {
	n := len(p.Items)
	if n == 0 {
		return nil
	}
	active := carousel.Wrap(p.Active, n)

	return Div(Class("carousel"), ID(p.ID),
		Data("carousel", ""),
		Data("active", strconv.Itoa(active)),
		Data("count", strconv.Itoa(n)),
		Data("interval", strconv.FormatInt(p.Interval.Milliseconds(), 10)),
		Data("transition", strconv.FormatInt(p.Transition.Milliseconds(), 10)),
		Data("return", p.ReturnTo),
		Data("swipe-threshold", strconv.Itoa(p.SwipeThreshold)),
		Role("region"), Aria("roledescription", "carousel"), Aria("label", "Client testimonials"),

		Div(Class("carousel-track"), Aria("live", "polite"),
			g.Group(testimonialSlides(p.Items, active)),
		),

		g.If(n > 1, Div(Class("carousel-controls"),
			A(Class("carousel-prev"), Href(CarouselHref(p.ReturnTo, carousel.PrevIndex(active, n))), Aria("label", "Previous testimonial"),
				Icon("arrow-left", "")),
			g.If(!p.Compact, carouselDots(p.ReturnTo, n, active)),
			A(Class("carousel-next"), Href(CarouselHref(p.ReturnTo, carousel.NextIndex(active, n))), Aria("label", "Next testimonial"),
				Icon("arrow-right", "")),
		)),

		g.If(n > 1, Form(Class("carousel-swipe"), Method("post"), Action(SwipePath), g.Attr("hidden"),
			Input(Type("hidden"), Name("return"), Value(p.ReturnTo)),
			Input(Type("hidden"), Name("active"), Value(strconv.Itoa(active))),
			Input(Type("hidden"), Name("startX")),
			Input(Type("hidden"), Name("endX")),
		)),
	)
}

func testimonialSlides(items []content.Testimonial, active int) []g.Node {
	slides := make([]g.Node, len(items))
	for i, t := range items {
		slides[i] = g.El("figure",
			c.Classes{"carousel-slide": true, "is-active": i == active},
			g.If(i != active, Aria("hidden", "true")),
			Icon("quote", "quote-icon"),
			g.El("blockquote", P(g.Text(t.Quote))),
			g.If(t.Author != "", g.El("figcaption",
				Strong(g.Text(t.Author)),
				g.If(t.Company != "", Span(Class("company"), g.Text(t.Company))),
			)),
		)
	}
	return slides
}

func carouselDots(path string, n, active int) g.Node {
	dots := make([]g.Node, n)
	for i := range dots {
		dots[i] = A(
			c.Classes{"carousel-dot": true, "is-active": i == active},
			Href(CarouselHref(path, i)),
			Aria("label", "Show testimonial "+strconv.Itoa(i+1)),
			g.If(i == active, Aria("current", "true")),
		)
	}
	return Div(Class("carousel-dots"), g.Group(dots))
}
