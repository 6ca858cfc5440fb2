package tournament

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/debatebot/internal/repositories/tournament Repository

import (
	"context"

	"github.com/KirkDiggler/debatebot/internal/models"
)

// Repository holds the tournament /pairings reports on
type Repository interface {
	// GetTournament returns the current tournament
	GetTournament(ctx context.Context) (*models.Tournament, error)

	// SetTournament replaces the current tournament
	SetTournament(ctx context.Context, input *SetTournamentInput) (*models.Tournament, error)
}
