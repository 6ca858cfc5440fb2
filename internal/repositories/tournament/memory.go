package tournament

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/debatebot/internal/common/clock"
	"github.com/KirkDiggler/debatebot/internal/models"
)

// Config holds configuration for the in-memory tournament repository
type Config struct {
	// DefaultURL is the tournament reported before anyone sets one
	DefaultURL string

	Clock clock.Clock
}

// memoryRepository keeps the tournament for the life of the process
type memoryRepository struct {
	mu         sync.RWMutex
	clock      clock.Clock
	tournament models.Tournament
}

// NewMemory creates a tournament repository seeded with the default URL
func NewMemory(cfg *Config) (*memoryRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DefaultURL == "" {
		return nil, errors.New("default URL cannot be empty")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &memoryRepository{
		clock: c,
		tournament: models.Tournament{
			URL:   cfg.DefaultURL,
			SetAt: c.Now(),
		},
	}, nil
}

// GetTournament returns a copy of the current tournament
func (r *memoryRepository) GetTournament(ctx context.Context) (*models.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t := r.tournament
	return &t, nil
}

// SetTournament replaces the current tournament
func (r *memoryRepository) SetTournament(ctx context.Context, input *SetTournamentInput) (*models.Tournament, error) {
	if input == nil || input.URL == "" {
		return nil, errors.New("input and URL cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tournament = models.Tournament{
		URL:   input.URL,
		SetBy: input.SetBy,
		SetAt: r.clock.Now(),
	}

	t := r.tournament
	return &t, nil
}
