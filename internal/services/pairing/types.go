package pairing

import (
	"github.com/KirkDiggler/debatebot/internal/models"
	tournamentRepo "github.com/KirkDiggler/debatebot/internal/repositories/tournament"
	"github.com/KirkDiggler/debatebot/internal/scrape"
)

// Config holds configuration for the pairing service
type Config struct {
	Fetcher scrape.Fetcher

	TournamentRepo tournamentRepo.Repository

	// SchoolCode keeps rows where either side contains it, empty keeps every row
	SchoolCode string

	// BaseURL resolves the round link found on the tournament page. When empty the
	// link is resolved against the tournament page itself.
	BaseURL string
}

// GetPairingsInput contains parameters for getting pairings
type GetPairingsInput struct {
	// URL overrides the current tournament when set
	URL string
}

// GetPairingsOutput contains the pairings of the latest round
type GetPairingsOutput struct {
	// RoundURL is the page the pairings were read from
	RoundURL string

	// Rows holds only the rooms involving the school
	Rows []*models.PairingRow

	JudgeLinks models.JudgeLinks

	Blocks []models.Block
}

// SetTournamentInput contains parameters for changing the tournament
type SetTournamentInput struct {
	URL   string
	SetBy string
}

// SetTournamentOutput contains the result of changing the tournament
type SetTournamentOutput struct {
	Tournament *models.Tournament

	// Blocks announce the change to the channel
	Blocks []models.Block
}
