package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/undercover/internal/common/clock Clock

// Clock abstracts wall time so cache ages and retry pauses can be driven from tests
type Clock interface {
	Now() time.Time

	// After waits for the duration to elapse and then sends the current time
	After(d time.Duration) <-chan time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// After delegates to time.After
func (c *DefaultClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Sleep waits d on the clock. It returns false if done closes first.
func Sleep(c Clock, d time.Duration, done <-chan struct{}) bool {
	if d <= 0 {
		return true
	}
	select {
	case <-c.After(d):
		return true
	case <-done:
		return false
	}
}
