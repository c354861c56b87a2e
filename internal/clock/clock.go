// Package clock provides an injectable time source so token expiry can be
// simulated in tests without waiting.
package clock

import "time"

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual wall-clock time.
type RealClock struct{}

// NewRealClock creates a Clock backed by time.Now.
func NewRealClock() Clock {
	return &RealClock{}
}

// Now returns the current time.
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// MockClock is a controllable Clock for tests.
type MockClock struct {
	currentTime time.Time
}

// NewMockClock creates a MockClock frozen at t.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

// Now returns the mock's current time.
func (c *MockClock) Now() time.Time {
	return c.currentTime
}

// Set moves the mock to an absolute time.
func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

// Advance moves the mock forward by d.
func (c *MockClock) Advance(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}
