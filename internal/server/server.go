// Package server is the HTTP surface of the site.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Gamikaru/thecopysocial/internal/config"
	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/device"
	"github.com/Gamikaru/thecopysocial/internal/form"
	"github.com/Gamikaru/thecopysocial/internal/submit"
	"github.com/Gamikaru/thecopysocial/internal/ui"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg        config.Config
	store      *content.Store
	log        *zap.Logger
	contact    form.Submitter
	newsletter form.Submitter
	handler    http.Handler
}

type Option func(*Server)

// WithContactSubmitter replaces the mock that receives contact messages.
func WithContactSubmitter(s form.Submitter) Option {
	return func(srv *Server) { srv.contact = s }
}

func WithNewsletterSubmitter(s form.Submitter) Option {
	return func(srv *Server) { srv.newsletter = s }
}

// New wires the router. Forms go to mock submitters built from cfg.Submit
// unless replaced with an Option.
func New(cfg config.Config, store *content.Store, log *zap.Logger, opts ...Option) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		cfg:        cfg,
		store:      store,
		log:        log,
		contact:    submit.NewMock("contact", cfg.Submit.Delay, cfg.Submit.Fail, log),
		newsletter: submit.NewMock("newsletter", cfg.Submit.Delay, cfg.Submit.Fail, log),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()
	r.StrictSlash(true)

	r.HandleFunc(content.PathHome, s.handleHome).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(content.PathAbout, s.handleAbout).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(content.PathServices, s.handleServices).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(content.PathPortfolio, s.handlePortfolio).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(content.PathBlog, s.handleBlog).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(content.PathBlog+"/{slug}", s.handlePost).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(content.PathContact, s.handleContact).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(content.PathContact, s.handleContactSubmit).Methods(http.MethodPost)
	r.HandleFunc(content.PathSubscribe, s.handleSubscribe).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc(content.PathSubscribe, s.handleSubscribeSubmit).Methods(http.MethodPost)
	r.HandleFunc(ui.SwipePath, s.handleSwipe).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", noDirListing(http.FileServer(http.Dir(s.cfg.StaticDir)))))
	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)

	// Wrapping the router rather than r.Use keeps the middleware on the
	// not-found handler too.
	var h http.Handler = r
	h = device.Middleware(s.cfg.Device.Breakpoint)(h)
	h = logRequests(s.log)(h)
	h = recoverPanics(s.log)(h)
	return h
}

func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln and shuts down gracefully once ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		ErrorLog:     zap.NewStdLog(s.log),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("serving", zap.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// noDirListing answers directory paths with 404 instead of an index.
func noDirListing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || r.URL.Path[len(r.URL.Path)-1] == '/' {
			http.NotFound(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
