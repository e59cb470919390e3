package navigation

import (
	"time"

	"github.com/aizenverse/aizen/util"
)

const (
	// DefaultInterval between automatic advances.
	DefaultInterval = 6 * time.Second
	// SwipeThreshold is the horizontal distance a drag must exceed to change slides.
	SwipeThreshold = 50
)

// Carousel cycles through n slides, wrapping at both ends.
// It advances by itself every interval unless a drag is in progress.
type Carousel struct {
	n        int
	current  int
	interval time.Duration
	dragging bool
	last     time.Time
}

// NewCarousel returns a carousel over n slides. A non-positive interval uses DefaultInterval.
func NewCarousel(n int, interval time.Duration) *Carousel {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Carousel{n: n, interval: interval}
}

func (c *Carousel) Len() int     { return c.n }
func (c *Carousel) Current() int { return c.current }

// Interval between automatic advances.
func (c *Carousel) Interval() time.Duration { return c.interval }

func (c *Carousel) Next() {
	if c.n == 0 {
		return
	}
	c.current = (c.current + 1) % c.n
}

func (c *Carousel) Prev() {
	if c.n == 0 {
		return
	}
	c.current = (c.current - 1 + c.n) % c.n
}

// Go jumps to slide i, clamped into range.
func (c *Carousel) Go(i int) {
	if c.n == 0 {
		return
	}
	c.current = util.Clamp(i, 0, c.n-1)
}

// SetDragging pauses or resumes automatic advancing.
func (c *Carousel) SetDragging(dragging bool) {
	c.dragging = dragging
}

func (c *Carousel) Dragging() bool { return c.dragging }

// Tick advances when a full interval passed since the last automatic move.
// It reports whether the slide changed.
func (c *Carousel) Tick(now time.Time) bool {
	if c.last.IsZero() {
		c.last = now
		return false
	}

	if c.dragging || c.n == 0 || now.Sub(c.last) < c.interval {
		return false
	}

	c.last = now
	c.Next()
	return true
}

// Swipe ends a drag that travelled dx = start - end pixels. Dragging left (positive dx)
// shows the next slide, dragging right the previous one. Short drags change nothing.
func (c *Carousel) Swipe(dx int) {
	c.dragging = false
	switch {
	case dx > SwipeThreshold:
		c.Next()
	case dx < -SwipeThreshold:
		c.Prev()
	}
}
