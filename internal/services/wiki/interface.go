package wiki

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/debatebot/internal/services/wiki Service

import "context"

// Service defines the interface for case list lookups
type Service interface {
	// Lookup reads the entry titles of a debater's case list
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)
}
