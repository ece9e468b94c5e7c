// Package clock abstracts the current time so scaffolded dates are testable.
package clock

import "time"

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// RealClock reports the system time in UTC, so a {DATE} stamped into a new
// activity is the same calendar day regardless of the author's time zone.
type RealClock struct{}

// Now returns the current UTC time.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock always reports the same instant.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a FakeClock stopped at t.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fixed time.
func (c *FakeClock) Now() time.Time {
	return c.current
}
