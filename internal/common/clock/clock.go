// Package clock lets time dependent code be tested with a fixed time.
package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/debatebot/internal/common/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in UTC
type System struct{}

// New returns the system clock
func New() *System {
	return &System{}
}

func (System) Now() time.Time {
	return time.Now().UTC()
}
