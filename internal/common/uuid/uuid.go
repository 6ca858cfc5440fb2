// Package uuid generates identifiers for stored arguments and running timers.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/debatebot/internal/common/uuid UUID

// UUID generates unique string identifiers
type UUID interface {
	NewUUID() string
}

// Random generates version 4 UUIDs
type Random struct{}

func New() *Random {
	return &Random{}
}

// NewUUID returns a new random UUID in its canonical string form
func (Random) NewUUID() string {
	return uuid.NewString()
}
