package coin

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/debatebot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_flipper.go github.com/KirkDiggler/debatebot/internal/coin Flipper

// Flipper flips a fair coin
type Flipper interface {
	Flip() models.CoinFace
}

// Coin provides coin flipping functionality
type Coin struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the coin
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new coin
func New(cfg *Config) *Coin {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Coin{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Flip returns Heads or Tails with equal probability
func (c *Coin) Flip() models.CoinFace {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.random.Float64() < 0.5 {
		return models.CoinFaceTails
	}
	return models.CoinFaceHeads
}
