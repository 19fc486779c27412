package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Gamikaru/thecopysocial/internal/config"
	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/form"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "css", "site.css"), []byte("body{}"), 0o644))

	return config.Config{
		SiteTitle: "The Copy Social",
		BaseURL:   "https://example.com",
		OutputDir: "public",
		StaticDir: static,
		Server:    config.ServerConfig{Addr: "127.0.0.1:0", ReadTimeout: time.Second, WriteTimeout: time.Second},
		Device:    config.DeviceConfig{Breakpoint: 768},
		Carousel:  config.CarouselConfig{Interval: 6 * time.Second, Transition: 500 * time.Millisecond, SwipeThreshold: 50},
	}
}

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	return New(testConfig(t), content.NewStore(content.Default()), zap.NewNop(), opts...)
}

func do(t *testing.T, s *Server, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, r)
	return rec
}

func postForm(path string, v url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(v.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

var accept = form.SubmitterFunc(func(context.Context, map[string]string) error { return nil })

func TestRoutes(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		path   string
		status int
		want   string
	}{
		{"/", http.StatusOK, "hero-desktop"},
		{"/?t=2", http.StatusOK, `data-active="2"`},
		{"/about", http.StatusOK, "journey-desktop"},
		{"/services", http.StatusOK, "package-grid"},
		{"/portfolio", http.StatusOK, "project-grid"},
		{"/portfolio?tag=Email", http.StatusOK, `data-project="tidewell"`},
		{"/blog", http.StatusOK, "post-grid"},
		{"/blog/five-subject-lines", http.StatusOK, `class="prose"`},
		{"/blog/no-such-post", http.StatusNotFound, "Page not found"},
		{"/contact", http.StatusOK, "contact-form"},
		{"/subscribe", http.StatusOK, "newsletter-form"},
		{"/nowhere", http.StatusNotFound, "Page not found"},
		{"/healthz", http.StatusOK, `{"status":"ok"}`},
		{"/static/css/site.css", http.StatusOK, "body{}"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, s, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
			assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
		})
	}
}

func TestStatic_NoDirectoryListing(t *testing.T) {
	rec := do(t, newTestServer(t), httptest.NewRequest(http.MethodGet, "/static/css/", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeviceResolution(t *testing.T) {
	s := newTestServer(t)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: "vw", Value: "375"})
	rec := do(t, s, r)
	assert.Contains(t, rec.Body.String(), "hero-mobile")
	assert.Contains(t, rec.Header().Get("Accept-CH"), "Sec-CH-Viewport-Width")

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Sec-CH-Viewport-Width", "1440")
	assert.Contains(t, do(t, s, r).Body.String(), "hero-desktop")

	r = httptest.NewRequest(http.MethodGet, "/nowhere", nil)
	r.AddCookie(&http.Cookie{Name: "vw", Value: "375"})
	assert.Contains(t, do(t, s, r).Body.String(), `data-mobile="true"`, "not-found pages get the device too")
}

func contactValues() url.Values {
	return url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"service": {"Website copy"},
		"message": {"Hello there"},
	}
}

func TestContactSubmit(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		s := newTestServer(t, WithContactSubmitter(accept))
		rec := do(t, s, postForm("/contact", url.Values{"name": {"Ada"}, "email": {"nope"}}))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Please enter a valid email address")
		assert.Contains(t, body, "Message is required")
		assert.Contains(t, body, `value="Ada"`)
	})

	t.Run("success clears the form", func(t *testing.T) {
		var got map[string]string
		s := newTestServer(t, WithContactSubmitter(form.SubmitterFunc(func(_ context.Context, data map[string]string) error {
			got = data
			return nil
		})))
		rec := do(t, s, postForm("/contact", contactValues()))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Message sent")
		assert.Equal(t, "ada@example.com", got["email"])
	})

	t.Run("failure keeps values", func(t *testing.T) {
		s := newTestServer(t, WithContactSubmitter(form.SubmitterFunc(func(context.Context, map[string]string) error {
			return errors.New("down")
		})))
		rec := do(t, s, postForm("/contact", contactValues()))
		assert.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, form.FailureMessage)
		assert.Contains(t, body, `value="ada@example.com"`)
		assert.Contains(t, body, "Hello there")
	})

	t.Run("reset", func(t *testing.T) {
		s := newTestServer(t, WithContactSubmitter(accept))
		rec := do(t, s, postForm("/contact", url.Values{"intent": {"reset"}}))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "contact-form")
		assert.NotContains(t, rec.Body.String(), "is required")
	})

	t.Run("mock submitter from config", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Submit.Fail = true
		core, logs := observer.New(zap.InfoLevel)
		s := New(cfg, content.NewStore(content.Default()), zap.New(core))
		rec := do(t, s, postForm("/contact", contactValues()))
		assert.Contains(t, rec.Body.String(), form.FailureMessage)
		assert.Equal(t, 1, logs.FilterMessage("submission failed").Len())
	})
}

func TestSubscribeSubmit(t *testing.T) {
	s := newTestServer(t, WithNewsletterSubmitter(accept))

	rec := do(t, s, postForm("/subscribe", url.Values{"email": {"  "}}))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email is required")

	rec = do(t, s, postForm("/subscribe", url.Values{"email": {"reader@example.com"}}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You&#39;re subscribed")
}

func TestSwipe(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name     string
		values   url.Values
		location string
	}{
		{"left advances", url.Values{"return": {"/"}, "active": {"0"}, "startX": {"300"}, "endX": {"100"}}, "/?t=1#testimonials"},
		{"right wraps back", url.Values{"return": {"/"}, "active": {"0"}, "startX": {"100"}, "endX": {"300"}}, "/?t=3#testimonials"},
		{"below threshold stays", url.Values{"return": {"/"}, "active": {"2"}, "startX": {"100"}, "endX": {"140"}}, "/?t=2#testimonials"},
		{"exactly threshold stays", url.Values{"return": {"/"}, "active": {"2"}, "startX": {"150"}, "endX": {"100"}}, "/?t=2#testimonials"},
		{"missing coordinates", url.Values{"return": {"/"}, "active": {"1"}}, "/?t=1#testimonials"},
		{"offsite return", url.Values{"return": {"//evil.example"}, "active": {"0"}, "startX": {"300"}, "endX": {"0"}}, "/?t=1#testimonials"},
		{"posted count is ignored", url.Values{"return": {"/"}, "active": {"3"}, "count": {"99"}, "startX": {"300"}, "endX": {"100"}}, "/?t=0#testimonials"},
		{"posted zero count is ignored", url.Values{"return": {"/"}, "active": {"1"}, "count": {"0"}}, "/?t=1#testimonials"},
		{"stale active wraps by stored count", url.Values{"return": {"/"}, "active": {"6"}}, "/?t=2#testimonials"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, postForm("/testimonials/swipe", tt.values))
			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, tt.location, rec.Header().Get("Location"))
		})
	}
}

func TestSwipe_NoTestimonials(t *testing.T) {
	site := content.Default()
	site.Testimonials = nil
	s := New(testConfig(t), content.NewStore(site), zap.NewNop())

	rec := do(t, s, postForm("/testimonials/swipe", url.Values{"return": {"/about"}, "active": {"2"}, "count": {"4"}, "startX": {"300"}, "endX": {"0"}}))
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/about", rec.Header().Get("Location"))
}

func TestHome_CarouselTransition(t *testing.T) {
	body := do(t, newTestServer(t), httptest.NewRequest(http.MethodGet, "/", nil)).Body.String()
	assert.Contains(t, body, `data-transition="500"`)
	assert.NotContains(t, body, `name="count"`)
}

func TestContentSwapIsVisible(t *testing.T) {
	store := content.NewStore(content.Default())
	s := New(testConfig(t), store, zap.NewNop())

	next := content.Default()
	next.Projects = next.Projects[:1]
	store.Swap(next)

	body := do(t, s, httptest.NewRequest(http.MethodGet, "/portfolio", nil)).Body.String()
	assert.Equal(t, 1, strings.Count(body, "data-project="))
}

func TestRecoverPanics(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := recoverPanics(zap.New(core))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.Len())
}

func TestServe_GracefulShutdown(t *testing.T) {
	s := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}
