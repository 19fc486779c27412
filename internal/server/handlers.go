package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"github.com/Gamikaru/thecopysocial/internal/carousel"
	"github.com/Gamikaru/thecopysocial/internal/device"
	"github.com/Gamikaru/thecopysocial/internal/form"
	"github.com/Gamikaru/thecopysocial/internal/pages"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

func (s *Server) env(r *http.Request) pages.Env {
	d := device.FromContext(r.Context())
	return pages.Env{
		Site:               s.store.Site(),
		BaseURL:            s.cfg.BaseURL,
		Mobile:             d.IsMobile(),
		Breakpoint:         d.Breakpoint(),
		CarouselInterval:   s.cfg.Carousel.Interval,
		CarouselTransition: s.cfg.Carousel.Transition,
		SwipeThreshold:     s.cfg.Carousel.SwipeThreshold,
	}
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method == http.MethodHead {
		return
	}
	if err := n.Render(w); err != nil {
		s.log.Warn("render failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	active, _ := strconv.Atoi(r.URL.Query().Get(ui.CarouselParam))
	s.render(w, r, http.StatusOK, pages.Home(s.env(r), active))
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pages.About(s.env(r)))
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pages.Services(s.env(r)))
}

func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pages.Portfolio(s.env(r), r.URL.Query().Get("tag")))
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pages.Blog(s.env(r), r.URL.Query().Get("tag")))
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	e := s.env(r)
	post, ok := e.Site.PostBySlug(mux.Vars(r)["slug"])
	if !ok {
		s.render(w, r, http.StatusNotFound, pages.NotFound(e))
		return
	}
	s.render(w, r, http.StatusOK, pages.Post(e, post))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, pages.NotFound(s.env(r)))
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pages.Contact(s.env(r), form.NewMachine(form.ContactFields())))
}

// handleContactSubmit runs one full pass of the contact machine: fill from
// the post, submit, and render whatever state it lands in.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	m := form.NewMachine(form.ContactFields())
	if r.PostFormValue(ui.IntentField) == ui.IntentReset {
		m.Reset()
		s.render(w, r, http.StatusOK, pages.Contact(s.env(r), m))
		return
	}

	values := make(map[string]string, len(m.Fields()))
	for _, f := range m.Fields() {
		values[f.ID] = r.PostFormValue(f.ID)
	}
	m.Fill(values)
	status := s.submit(r, "contact", m, s.contact)
	s.render(w, r, status, pages.Contact(s.env(r), m))
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pages.Subscribe(s.env(r), form.NewNewsletter()))
}

func (s *Server) handleSubscribeSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	n := form.NewNewsletter()
	if r.PostFormValue(ui.IntentField) == ui.IntentReset {
		n.Reset()
		s.render(w, r, http.StatusOK, pages.Subscribe(s.env(r), n))
		return
	}

	n.SetEmail(r.PostFormValue(form.NewsletterField.ID))
	status := s.submit(r, "newsletter", n.Machine, s.newsletter)
	s.render(w, r, status, pages.Subscribe(s.env(r), n))
}

// submit maps the machine outcome to a response status.
func (s *Server) submit(r *http.Request, name string, m *form.Machine, sub form.Submitter) int {
	err := m.Submit(r.Context(), sub)
	switch {
	case errors.Is(err, form.ErrInvalid):
		return http.StatusUnprocessableEntity
	case err != nil:
		s.log.Warn("submission refused", zap.String("form", name), zap.Error(err))
		return http.StatusConflict
	case m.State() == form.Failed:
		s.log.Warn("submission failed", zap.String("form", name), zap.Error(m.SubmitErr()))
	}
	return http.StatusOK
}

// handleSwipe classifies a touch gesture posted by the carousel script and
// redirects to the page with the resulting testimonial active. The item count
// comes from the content store, never from the request.
func (s *Server) handleSwipe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "malformed form", http.StatusBadRequest)
		return
	}
	ret := safeReturn(r.PostFormValue("return"))
	active, _ := strconv.Atoi(r.PostFormValue("active"))
	count := len(s.store.Site().Testimonials)
	startX, errStart := strconv.Atoi(r.PostFormValue("startX"))
	endX, errEnd := strconv.Atoi(r.PostFormValue("endX"))

	if count < 1 {
		http.Redirect(w, r, ret, http.StatusSeeOther)
		return
	}
	active = carousel.Wrap(active, count)
	dir := carousel.None
	if errStart == nil && errEnd == nil {
		dir = carousel.Classify(startX, endX, s.cfg.Carousel.SwipeThreshold)
	}
	next := carousel.Step(active, count, dir)
	s.log.Debug("swipe", zap.Stringer("direction", dir), zap.Int("from", active), zap.Int("to", next))
	http.Redirect(w, r, ui.CarouselHref(ret, next), http.StatusSeeOther)
}

// safeReturn keeps swipe redirects on this site.
func safeReturn(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.ContainsAny(p, "?#\\") {
		return "/"
	}
	return p
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
