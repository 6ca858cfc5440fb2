package pairing

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/debatebot/internal/services/pairing Service

import "context"

// Service defines the interface for tournament pairing operations
type Service interface {
	// GetPairings scrapes the latest round of the tournament and keeps the rooms
	// involving the configured school
	GetPairings(ctx context.Context, input *GetPairingsInput) (*GetPairingsOutput, error)

	// SetTournament changes the tournament GetPairings reads from
	SetTournament(ctx context.Context, input *SetTournamentInput) (*SetTournamentOutput, error)
}
