// Package device classifies a visitor's viewport as mobile or desktop.
//
// A Context tracks a viewport width against a fixed breakpoint and notifies
// subscribers when the mobile/desktop classification flips. Resize is the
// only writer; everything else reads.
package device

import "sync"

// DefaultBreakpoint is the width, in CSS pixels, below which a viewport is mobile.
const DefaultBreakpoint = 768

type Context struct {
	breakpoint int

	mu     sync.RWMutex
	width  int
	mobile bool
	subs   map[int]func(mobile bool)
	nextID int
}

// New returns a Context for an initial width. The classification is resolved
// here so the first render already knows which variant to use.
func New(width, breakpoint int) *Context {
	if breakpoint <= 0 {
		breakpoint = DefaultBreakpoint
	}
	return &Context{
		breakpoint: breakpoint,
		width:      width,
		mobile:     width < breakpoint,
		subs:       make(map[int]func(bool)),
	}
}

func (c *Context) IsMobile() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mobile
}

func (c *Context) Width() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width
}

func (c *Context) Breakpoint() int {
	return c.breakpoint
}

// Resize records a new viewport width. Subscribers are called only when the
// width crosses the breakpoint, once per crossing, outside the lock.
func (c *Context) Resize(width int) {
	c.mu.Lock()
	c.width = width
	mobile := width < c.breakpoint
	if mobile == c.mobile {
		c.mu.Unlock()
		return
	}
	c.mobile = mobile
	subs := make([]func(bool), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(mobile)
	}
}

// Subscribe registers fn for classification changes. The returned cancel
// func removes it and is safe to call more than once.
func (c *Context) Subscribe(fn func(mobile bool)) (cancel func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.subs[id] = fn
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.subs, id)
			c.mu.Unlock()
		})
	}
}
