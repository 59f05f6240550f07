// Package animate interpolates displayed counter values over time.
package animate

import (
	"math"
	"time"
)

// DefaultDuration is how long a counter takes to reach a new target.
const DefaultDuration = 500 * time.Millisecond

// Animator is a displayed integer that moves toward a target over time.
type Animator interface {
	// Set retargets the animation. Any in-flight animation is superseded and
	// the next one starts from the value displayed at now.
	Set(target int, now time.Time)
	// Value returns the value to display at now.
	Value(now time.Time) int
	// Done reports whether the target has been reached at now.
	Done(now time.Time) bool
	// Target returns the most recent target.
	Target() int
}

// Counter is a linear Animator.
type Counter struct {
	start    int
	end      int
	startAt  time.Time
	duration time.Duration
}

// NewCounter returns a Counter showing initial with the given duration.
// A non-positive duration makes every Set take effect immediately.
func NewCounter(initial int, duration time.Duration) *Counter {
	return &Counter{start: initial, end: initial, duration: duration}
}

// Set implements Animator.
func (c *Counter) Set(target int, now time.Time) {
	current := c.Value(now)
	if current == target {
		c.start = target
		c.end = target
		c.startAt = time.Time{}
		return
	}
	c.start = current
	c.end = target
	c.startAt = now
}

// Value implements Animator.
func (c *Counter) Value(now time.Time) int {
	progress := c.progress(now)
	if progress >= 1 {
		return c.end
	}
	return int(math.Floor(progress*float64(c.end-c.start) + float64(c.start)))
}

// Done implements Animator.
func (c *Counter) Done(now time.Time) bool {
	return c.progress(now) >= 1
}

// Target implements Animator.
func (c *Counter) Target() int {
	return c.end
}

func (c *Counter) progress(now time.Time) float64 {
	if c.start == c.end || c.startAt.IsZero() || c.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(c.startAt)
	if elapsed <= 0 {
		return 0
	}
	return math.Min(float64(elapsed)/float64(c.duration), 1)
}
