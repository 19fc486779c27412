// Package carousel implements the active-item state machine behind the
// testimonial and blog preview carousels.
//
// A Controller is either idle or animating. Index changes are accepted only
// while idle; a request that arrives mid-transition is dropped, not queued.
// Every timer a Controller starts is released by Close.
package carousel

import (
	"errors"
	"sync"
	"time"
)

// ErrEmpty is returned when a carousel is built with no items.
var ErrEmpty = errors.New("carousel: no items")

type State int

const (
	Idle State = iota
	Animating
)

func (s State) String() string {
	if s == Animating {
		return "animating"
	}
	return "idle"
}

const (
	DefaultTransition = 500 * time.Millisecond
	DefaultInterval   = 6 * time.Second
)

type Options struct {
	// Transition is how long the controller stays animating after a change.
	Transition time.Duration
	// Interval between automatic advances when AutoPlay is set.
	Interval       time.Duration
	AutoPlay       bool
	SwipeThreshold int
	Scheduler      Scheduler
	// OnChange is called with the new active index, outside any lock.
	OnChange func(index int)
}

func (o *Options) setDefaults() {
	if o.Transition <= 0 {
		o.Transition = DefaultTransition
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.SwipeThreshold <= 0 {
		o.SwipeThreshold = DefaultSwipeThreshold
	}
	if o.Scheduler == nil {
		o.Scheduler = RealClock
	}
}

type Controller struct {
	opts Options
	n    int

	mu       sync.Mutex
	active   int
	state    State
	autoPlay bool
	closed   bool

	// Generation counters let a timer that fired just before being stopped
	// recognise that it is stale.
	settle    Timer
	settleGen int
	auto      Timer
	autoGen   int

	touching bool
	moved    bool
	startX   int
	lastX    int
}

// New returns an idle controller over n items, starting at index 0.
func New(n int, opts Options) (*Controller, error) {
	if n < 1 {
		return nil, ErrEmpty
	}
	opts.setDefaults()
	c := &Controller{opts: opts, n: n, autoPlay: opts.AutoPlay}
	c.mu.Lock()
	c.scheduleAutoLocked()
	c.mu.Unlock()
	return c, nil
}

func (c *Controller) Len() int { return c.n }

func (c *Controller) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// ChangeTo moves to index. It reports whether the change was accepted: it is
// refused while animating, after Close, for the current index, and for an
// index outside [0, Len()).
func (c *Controller) ChangeTo(index int) bool {
	c.mu.Lock()
	if !c.changeLocked(index) {
		c.mu.Unlock()
		return false
	}
	onChange := c.opts.OnChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(index)
	}
	return true
}

func (c *Controller) changeLocked(index int) bool {
	if c.closed || c.state != Idle || index == c.active || index < 0 || index >= c.n {
		return false
	}
	c.active = index
	c.state = Animating

	c.settleGen++
	gen := c.settleGen
	c.settle = c.opts.Scheduler.AfterFunc(c.opts.Transition, func() { c.finishTransition(gen) })

	c.scheduleAutoLocked()
	return true
}

func (c *Controller) finishTransition(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || gen != c.settleGen {
		return
	}
	c.state = Idle
	c.settle = nil
}

func (c *Controller) Next() bool {
	c.mu.Lock()
	target := NextIndex(c.active, c.n)
	c.mu.Unlock()
	return c.ChangeTo(target)
}

func (c *Controller) Previous() bool {
	c.mu.Lock()
	target := PrevIndex(c.active, c.n)
	c.mu.Unlock()
	return c.ChangeTo(target)
}

// SetAutoPlay turns automatic advancing on or off.
func (c *Controller) SetAutoPlay(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoPlay = on
	c.scheduleAutoLocked()
}

func (c *Controller) AutoPlay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoPlay
}

// scheduleAutoLocked cancels any pending advance and, when auto-play applies,
// starts a fresh one.
func (c *Controller) scheduleAutoLocked() {
	if c.auto != nil {
		c.auto.Stop()
		c.auto = nil
	}
	c.autoGen++
	if c.closed || !c.autoPlay || c.n < 2 {
		return
	}
	gen := c.autoGen
	c.auto = c.opts.Scheduler.AfterFunc(c.opts.Interval, func() { c.autoAdvance(gen) })
}

func (c *Controller) autoAdvance(gen int) {
	c.mu.Lock()
	if c.closed || gen != c.autoGen {
		c.mu.Unlock()
		return
	}
	c.auto = nil
	target := NextIndex(c.active, c.n)
	if !c.changeLocked(target) {
		// Mid-transition: try again after another interval.
		c.scheduleAutoLocked()
		c.mu.Unlock()
		return
	}
	onChange := c.opts.OnChange
	c.mu.Unlock()

	if onChange != nil {
		onChange(target)
	}
}

func (c *Controller) TouchStart(x int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.touching = true
	c.moved = false
	c.startX = x
	c.lastX = x
}

func (c *Controller) TouchMove(x int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.touching {
		return
	}
	c.moved = true
	c.lastX = x
}

// TouchEnd resolves the gesture. Tracking is reset whether or not a swipe
// was recognised. The returned direction is what the gesture meant; the
// index only changes if the controller accepted it.
func (c *Controller) TouchEnd() Direction {
	c.mu.Lock()
	dir := None
	if c.touching && c.moved {
		dir = Classify(c.startX, c.lastX, c.opts.SwipeThreshold)
	}
	c.touching, c.moved = false, false
	c.startX, c.lastX = 0, 0
	c.mu.Unlock()

	switch dir {
	case Left:
		c.Next()
	case Right:
		c.Previous()
	}
	return dir
}

// Close cancels every pending timer. Later calls are no-ops, and so is any
// operation on a closed controller.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.settle != nil {
		c.settle.Stop()
		c.settle = nil
	}
	if c.auto != nil {
		c.auto.Stop()
		c.auto = nil
	}
	c.settleGen++
	c.autoGen++
}
