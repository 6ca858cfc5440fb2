package argument

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/debatebot/internal/services/argument Service

import "context"

// Service defines the interface for argument list and lookup operations
type Service interface {
	// List groups argument names by category, in the order the categories were asked for
	List(ctx context.Context, input *ListInput) (*ListOutput, error)

	// Lookup returns the one argument with the given name
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)
}
