package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/debatebot/internal/services/pairing"
)

// SetPairingsCommand handles the /setpairings command
type SetPairingsCommand struct {
	BaseCommand
	pairingService pairing.Service
}

// NewSetPairingsCommand creates a new setpairings command handler
func NewSetPairingsCommand(pairingService pairing.Service) *SetPairingsCommand {
	return &SetPairingsCommand{
		BaseCommand: BaseCommand{
			Name:        "setpairings",
			Description: "Set the tournament /pairings reads from",
			Options:     textOption("url", "Postings page of the tournament", true),
		},
		pairingService: pairingService,
	}
}

// Handle changes the tournament and announces who changed it
func (c *SetPairingsCommand) Handle(ctx context.Context, inv *Invocation, r Responder) error {
	invalid := fmt.Sprintf("Error make sure you are in a channel and have a valid url: %s", inv.Text)

	if inv.DirectMessage {
		return RespondWithEphemeralMessage(ctx, r, invalid)
	}

	output, err := c.pairingService.SetTournament(ctx, &pairing.SetTournamentInput{
		URL:   inv.Text,
		SetBy: inv.UserName,
	})
	if err != nil {
		if errors.Is(err, pairing.ErrInvalidTournamentURL) {
			return RespondWithEphemeralMessage(ctx, r, invalid)
		}
		return failWith(ctx, r, false, "Error setting tournament", err)
	}

	return RespondWithBlocks(ctx, r, output.Blocks, false)
}
