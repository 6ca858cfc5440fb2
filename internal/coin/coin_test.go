package coin

import (
	"math"
	"testing"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFlipIsFair(t *testing.T) {
	c := New(&Config{Seed: 42})

	const trials = 10000
	heads := 0
	for i := 0; i < trials; i++ {
		switch c.Flip() {
		case models.CoinFaceHeads:
			heads++
		case models.CoinFaceTails:
		default:
			t.Fatal("unexpected face")
		}
	}

	// five standard deviations of a fair binomial
	bound := 5 * math.Sqrt(trials*0.25)
	assert.InDelta(t, trials/2, heads, bound)
}

func TestSeededFlipsRepeat(t *testing.T) {
	a := New(&Config{Seed: 7})
	b := New(&Config{Seed: 7})

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Flip(), b.Flip())
	}
}
