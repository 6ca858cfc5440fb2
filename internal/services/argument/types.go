package argument

import (
	"github.com/KirkDiggler/debatebot/internal/models"
	argumentRepo "github.com/KirkDiggler/debatebot/internal/repositories/argument"
)

// Config holds configuration for the argument service
type Config struct {
	Repository argumentRepo.Repository

	// DefaultTypes are listed when List is given no types
	DefaultTypes []models.ArgumentType
}

// Group is the argument names filed under one category
type Group struct {
	Type  models.ArgumentType
	Names []string
}

// ListInput contains parameters for listing arguments
type ListInput struct {
	// Types to list, empty for the configured defaults
	Types []models.ArgumentType
}

// ListOutput contains the result of listing arguments
type ListOutput struct {
	// Groups holds only categories with at least one argument
	Groups []*Group

	Blocks []models.Block
}

// LookupInput contains parameters for looking up an argument
type LookupInput struct {
	Name string
}

// LookupOutput contains the result of looking up an argument
type LookupOutput struct {
	Argument *models.Argument
}
