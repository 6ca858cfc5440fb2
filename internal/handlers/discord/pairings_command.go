package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/KirkDiggler/debatebot/internal/services/pairing"
	"github.com/bwmarrin/discordgo"
)

const (
	channelOnlyMessage = "Error make sure you are in a channel"
	noPairingsMessage  = "No pairings are available for the current tournament"
)

// PairingsCommand handles the /pairings command
type PairingsCommand struct {
	BaseCommand
	pairingService pairing.Service
	messenger      Messenger
}

// NewPairingsCommand creates a new pairings command handler
func NewPairingsCommand(pairingService pairing.Service, messenger Messenger) *PairingsCommand {
	return &PairingsCommand{
		BaseCommand: BaseCommand{
			Name:        "pairings",
			Description: "Post this round's pairings for the school",
		},
		pairingService: pairingService,
		messenger:      messenger,
	}
}

// Handle scrapes the current round and posts the school's rooms to the channel
func (c *PairingsCommand) Handle(ctx context.Context, inv *Invocation, r Responder) error {
	if inv.DirectMessage {
		return RespondWithEphemeralMessage(ctx, r, channelOnlyMessage)
	}

	// Scraping can take longer than Discord waits for a response
	if err := RespondDeferred(ctx, r, true); err != nil {
		return err
	}

	output, err := c.pairingService.GetPairings(ctx, &pairing.GetPairingsInput{})
	if err != nil {
		switch {
		case errors.Is(err, pairing.ErrPairingsUnavailable):
			return EditWithMessage(ctx, r, noPairingsMessage)
		case errors.Is(err, pairing.ErrMissingRoomColumn):
			return failWith(ctx, r, true, "The pairings table could not be read", err)
		default:
			return failWith(ctx, r, true, "Error getting pairings", err)
		}
	}

	_, err = c.messenger.ChannelMessageSendComplex(ctx, inv.ChannelID, &discordgo.MessageSend{
		Embeds: renderBlocks(output.Blocks),
	})
	if err != nil {
		return failWith(ctx, r, true, "Error posting pairings", err)
	}

	return EditWithMessage(ctx, r, fmt.Sprintf("Posted %d pairings from %s", len(output.Rows),
		models.Link("this round", output.RoundURL)))
}
