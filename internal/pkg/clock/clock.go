// Package clock lets repositories stamp records without reading the wall clock directly
package clock

import (
	"sync"
	"time"
)

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/grimoire-api/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real reads the system clock
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed returns the same instant until advanced. Safe for concurrent use.
type Fixed struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixed creates a clock stopped at t
func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

// Now returns the stored instant
func (c *Fixed) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *Fixed) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
