package pages

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/form"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func testEnv(mobile bool) Env {
	return Env{
		Site:               content.Default(),
		Breakpoint:         768,
		Mobile:             mobile,
		CarouselInterval:   6 * time.Second,
		CarouselTransition: 500 * time.Millisecond,
		SwipeThreshold:     50,
	}
}

func TestHome(t *testing.T) {
	out := render(t, Home(testEnv(false), 2))
	assert.Contains(t, out, "hero-desktop")
	assert.Contains(t, out, `data-active="2"`)
	assert.Contains(t, out, `data-interval="6000"`)
	assert.Contains(t, out, `data-transition="500"`)
	assert.Contains(t, out, "recent-posts")
	assert.Contains(t, out, "<title>The Copy Social</title>")

	mobile := render(t, Home(testEnv(true), 9))
	assert.Contains(t, mobile, "hero-mobile")
	assert.Contains(t, mobile, "testimonials-mobile")
	assert.Contains(t, mobile, `data-active="1"`, "active index wraps")
}

func TestHome_NoTestimonialsOrPosts(t *testing.T) {
	e := testEnv(false)
	e.Site.Testimonials = nil
	e.Site.Posts = nil
	out := render(t, Home(e, 0))
	assert.NotContains(t, out, `class="carousel"`)
	assert.NotContains(t, out, `data-carousel=""`)
	assert.NotContains(t, out, "recent-posts")
}

func TestAboutAndServices(t *testing.T) {
	about := render(t, About(testEnv(false)))
	assert.Contains(t, about, "approach-desktop")
	assert.Contains(t, about, "journey-desktop")
	assert.Contains(t, about, "<title>About | The Copy Social</title>")

	services := render(t, Services(testEnv(true)))
	assert.Contains(t, services, "package-website")
	assert.Contains(t, services, "Most popular")
	assert.Contains(t, services, "add-ons")
}

func TestPortfolio_Filter(t *testing.T) {
	all := render(t, Portfolio(testEnv(false), ""))
	assert.Equal(t, 4, strings.Count(all, "data-project="))

	email := render(t, Portfolio(testEnv(false), "Email"))
	assert.Contains(t, email, `data-project="tidewell"`)
	assert.Contains(t, email, `data-project="ledgerly"`)
	assert.NotContains(t, email, `data-project="fieldnote"`)

	none := render(t, Portfolio(testEnv(false), "Radio"))
	assert.Contains(t, none, "empty-state")
}

func TestBlogAndPost(t *testing.T) {
	e := testEnv(false)
	out := render(t, Blog(e, content.AllTag))
	for _, p := range e.Site.Posts {
		assert.Contains(t, out, content.PostPath(p.Slug))
	}

	p := e.Site.Posts[0]
	post := render(t, Post(e, p))
	assert.Contains(t, post, `class="prose"`)
	assert.Contains(t, post, "All posts")
}

func TestContact(t *testing.T) {
	m := form.NewMachine(form.ContactFields())
	m.Fill(map[string]string{"name": "Ada", "email": "ada@example.com", "service": "Website copy", "message": "Hello"})
	require.NoError(t, m.Submit(context.Background(), form.SubmitterFunc(func(context.Context, map[string]string) error {
		return errors.New("down")
	})))

	out := render(t, Contact(testEnv(false), m))
	assert.Contains(t, out, form.FailureMessage)
	assert.Contains(t, out, `value="ada@example.com"`)
	assert.Contains(t, out, "contact-aside")

	assert.NotContains(t, render(t, Contact(testEnv(true), form.NewMachine(form.ContactFields()))), "contact-aside")
}

func TestSubscribe_HidesFooterSignup(t *testing.T) {
	out := render(t, Subscribe(testEnv(false), form.NewNewsletter()))
	assert.Equal(t, 1, strings.Count(out, "newsletter-form"))
	assert.NotContains(t, out, "footer-newsletter")
}

func TestNotFound(t *testing.T) {
	assert.Contains(t, render(t, NotFound(testEnv(false))), "Page not found")
}
