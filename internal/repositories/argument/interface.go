package argument

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/debatebot/internal/repositories/argument Repository

import (
	"context"

	"github.com/KirkDiggler/debatebot/internal/models"
)

// Repository defines the interface for argument document storage
type Repository interface {
	// SaveArgument persists an argument, replacing any argument with the same ID
	SaveArgument(ctx context.Context, input *SaveArgumentInput) error

	// GetArgument retrieves an argument by ID
	GetArgument(ctx context.Context, input *GetArgumentInput) (*models.Argument, error)

	// ListByType retrieves every argument of a category, ordered by name
	ListByType(ctx context.Context, input *ListByTypeInput) (*ListByTypeOutput, error)

	// FindByName retrieves every argument whose name matches case-insensitively
	FindByName(ctx context.Context, input *FindByNameInput) (*FindByNameOutput, error)

	// DeleteArgument removes an argument
	DeleteArgument(ctx context.Context, input *DeleteArgumentInput) error
}
