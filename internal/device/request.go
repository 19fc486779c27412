package device

import (
	"context"
	"net/http"
	"strconv"
	"strings"
)

// WidthCookie is written by the page script on load and on resize.
const WidthCookie = "vw"

// Fallback widths used when the browser sends no hint at all.
const (
	fallbackMobileWidth  = 375
	fallbackDesktopWidth = 1280
)

var hintHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// WidthFromRequest picks the best available viewport width: client hints,
// then the width cookie, then a User-Agent guess. ok is false when the width
// was guessed.
func WidthFromRequest(r *http.Request) (width int, ok bool) {
	for _, h := range hintHeaders {
		if w, ok := parseWidth(r.Header.Get(h)); ok {
			return w, true
		}
	}
	if c, err := r.Cookie(WidthCookie); err == nil {
		if w, ok := parseWidth(c.Value); ok {
			return w, true
		}
	}
	if strings.Contains(r.UserAgent(), "Mobi") {
		return fallbackMobileWidth, false
	}
	return fallbackDesktopWidth, false
}

func parseWidth(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	w, err := strconv.Atoi(s)
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// FromRequest builds a Context for the visitor making r.
func FromRequest(r *http.Request, breakpoint int) *Context {
	w, _ := WidthFromRequest(r)
	return New(w, breakpoint)
}

type ctxKey struct{}

// WithContext stores d on ctx.
func WithContext(ctx context.Context, d *Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, d)
}

// FromContext returns the Context stored on ctx, or a desktop Context when
// none was attached.
func FromContext(ctx context.Context) *Context {
	if d, ok := ctx.Value(ctxKey{}).(*Context); ok {
		return d
	}
	return New(fallbackDesktopWidth, DefaultBreakpoint)
}

// Middleware resolves the device before the handler renders anything and
// asks the browser for viewport hints on later requests.
func Middleware(breakpoint int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Accept-CH", "Sec-CH-Viewport-Width, Viewport-Width")
			w.Header().Add("Vary", "Sec-CH-Viewport-Width")
			w.Header().Add("Vary", "Cookie")
			d := FromRequest(r, breakpoint)
			next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), d)))
		})
	}
}
