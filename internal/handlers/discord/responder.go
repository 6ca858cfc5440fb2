package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_responder.go github.com/KirkDiggler/debatebot/internal/handlers/discord Responder

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Responder answers one interaction
type Responder interface {
	// Respond sends the initial response, only the first call is accepted
	Respond(ctx context.Context, resp *discordgo.InteractionResponse) error

	// Edit replaces the initial response, including a deferred one
	Edit(ctx context.Context, edit *discordgo.WebhookEdit) error
}

// interactionResponder answers interactions received over the gateway
type interactionResponder struct {
	messenger   Messenger
	interaction *discordgo.Interaction
}

// NewInteractionResponder answers an interaction through the REST API
func NewInteractionResponder(messenger Messenger, interaction *discordgo.Interaction) Responder {
	return &interactionResponder{
		messenger:   messenger,
		interaction: interaction,
	}
}

func (r *interactionResponder) Respond(ctx context.Context, resp *discordgo.InteractionResponse) error {
	if err := r.messenger.InteractionRespond(ctx, r.interaction, resp); err != nil {
		return fmt.Errorf("failed to respond to interaction: %w", err)
	}
	return nil
}

func (r *interactionResponder) Edit(ctx context.Context, edit *discordgo.WebhookEdit) error {
	if _, err := r.messenger.InteractionResponseEdit(ctx, r.interaction, edit); err != nil {
		return fmt.Errorf("failed to edit interaction response: %w", err)
	}
	return nil
}
