package sections

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Gamikaru/thecopysocial/internal/responsive"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

type TestimonialsProps struct {
	Eyebrow  string
	Title    string
	Carousel ui.CarouselProps
}

var Testimonials = responsive.Variant[TestimonialsProps]{
	Name:    "testimonials",
	Desktop: DesktopTestimonials,
	Mobile:  MobileTestimonials,
}

func DesktopTestimonials(p TestimonialsProps) g.Node {
	if len(p.Carousel.Items) == 0 {
		return nil
	}
	return Section(Class("testimonials testimonials-desktop"), ID("testimonials"),
		ui.SectionHeader(p.Eyebrow, p.Title, ""),
		ui.TestimonialCarousel(p.Carousel),
	)
}

// MobileTestimonials uses the compact carousel; swiping replaces the dots.
func MobileTestimonials(p TestimonialsProps) g.Node {
	if len(p.Carousel.Items) == 0 {
		return nil
	}
	cp := p.Carousel
	cp.Compact = true
	return Section(Class("testimonials testimonials-mobile"), ID("testimonials"),
		ui.Heading(2, "", g.Text(p.Title)),
		ui.TestimonialCarousel(cp),
	)
}
