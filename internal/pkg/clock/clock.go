// Package clock provides an injectable time source
package clock

import "time"

// Clock provides the current time
type Clock interface {
	Now() time.Time
}

// Real implements Clock using system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a real clock
func New() Clock {
	return &Real{}
}

// Fixed is a clock pinned to a single instant, for tests
type Fixed struct {
	Time time.Time
}

// Now returns the pinned instant
func (c *Fixed) Now() time.Time {
	return c.Time
}

// NewFixed returns a clock pinned to t
func NewFixed(t time.Time) Clock {
	return &Fixed{Time: t}
}
