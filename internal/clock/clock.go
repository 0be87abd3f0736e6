// Package clock abstracts the monotonic time source used by the byte-release
// algorithm, so pacing can be driven deterministically in tests.
package clock

import "time"

// Clock is a monotonic time source.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration
}

type systemClock struct{}

func (systemClock) Now() time.Time                  { return time.Now() }
func (systemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// System returns the process wall clock.
func System() Clock { return systemClock{} }

// Manual is a test clock that only moves when told to.
// It is intended for single-goroutine test use.
type Manual struct {
	now time.Time
}

// NewManual creates a Manual clock starting at t.
func NewManual(t time.Time) *Manual {
	return &Manual{now: t}
}

// Now returns the current manual time.
func (m *Manual) Now() time.Time { return m.now }

// Since returns the manual time elapsed since t.
func (m *Manual) Since(t time.Time) time.Duration { return m.now.Sub(t) }

// Advance moves the clock forward by d. A negative d is ignored.
func (m *Manual) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	m.now = m.now.Add(d)
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) { m.now = t }
