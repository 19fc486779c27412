package sections

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	if n == nil {
		return ""
	}
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestHero(t *testing.T) {
	site := content.Default()
	p := HeroProps{Hero: site.Hero, Level: 1}

	desktop := render(t, Hero.Render(false, p))
	assert.Contains(t, desktop, "hero-desktop")
	assert.Contains(t, desktop, "hero-media")
	assert.Contains(t, desktop, "<h1")

	mobile := render(t, Hero.Render(true, p))
	assert.Contains(t, mobile, "hero-mobile")
	assert.NotContains(t, mobile, "hero-media")
	assert.Contains(t, mobile, site.Hero.Title)
}

func TestTestimonials(t *testing.T) {
	site := content.Default()
	p := TestimonialsProps{
		Title:    "Kind words",
		Carousel: ui.CarouselProps{ID: "testimonials", Items: site.Testimonials, ReturnTo: "/"},
	}

	assert.Contains(t, render(t, Testimonials.Render(false, p)), "carousel-dot")
	assert.NotContains(t, render(t, Testimonials.Render(true, p)), "carousel-dot")

	p.Carousel.Items = nil
	assert.Nil(t, Testimonials.Render(false, p))
	assert.Nil(t, Testimonials.Render(true, p))
}

func TestProcess(t *testing.T) {
	site := content.Default()
	p := ProcessProps{Title: "From blank page to launch", Steps: site.Process}

	desktop := render(t, Process.Render(false, p))
	assert.Equal(t, len(site.Process), strings.Count(desktop, `<li class="process-step"`))

	mobile := render(t, Process.Render(true, p))
	assert.Equal(t, len(site.Process), strings.Count(mobile, "<details"))
	assert.Equal(t, 1, strings.Count(mobile, " open"))

	assert.Nil(t, Process.Render(false, ProcessProps{}))
}

func TestApproachAndJourney(t *testing.T) {
	site := content.Default()

	desktop := render(t, Approach.Render(false, ApproachProps{Title: "How I work", Steps: site.Approach}))
	assert.Contains(t, desktop, "approach-grid")
	assert.Contains(t, render(t, Approach.Render(true, ApproachProps{Steps: site.Approach})), "approach-list")

	j := JourneyProps{Title: "How I got here", Milestones: site.Journey}
	dj := render(t, Journey.Render(false, j))
	assert.Contains(t, dj, "milestone is-left")
	assert.Contains(t, dj, "milestone is-right")
	mj := render(t, Journey.Render(true, j))
	assert.Contains(t, mj, "is-compact")
	for _, m := range site.Journey {
		assert.Contains(t, mj, m.Year)
	}
}
