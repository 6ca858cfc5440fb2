package discord

import (
	"context"

	"github.com/KirkDiggler/debatebot/internal/coin"
)

// FlipCommand handles the /flip command
type FlipCommand struct {
	BaseCommand
	flipper coin.Flipper
}

// NewFlipCommand creates a new flip command handler
func NewFlipCommand(flipper coin.Flipper) *FlipCommand {
	return &FlipCommand{
		BaseCommand: BaseCommand{
			Name:        "flip",
			Description: "Flip a coin",
		},
		flipper: flipper,
	}
}

// Handle posts Heads or Tails to the channel
func (c *FlipCommand) Handle(ctx context.Context, inv *Invocation, r Responder) error {
	return RespondWithMessage(ctx, r, string(c.flipper.Flip()))
}
