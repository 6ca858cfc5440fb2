package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/bwmarrin/discordgo"
)

// maxContentLength is the longest plain message Discord accepts
const maxContentLength = 2000

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes one invocation of the command
	Handle(ctx context.Context, inv *Invocation, r Responder) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// textOption is the single free text argument a command takes
func textOption(name, description string, required bool) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        name,
			Description: description,
			Required:    required,
		},
	}
}

// RespondWithMessage sends a simple text message response to an interaction
func RespondWithMessage(ctx context.Context, r Responder, message string) error {
	return r.Respond(ctx, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
}

// RespondWithEphemeralMessage sends an ephemeral message response to an interaction
func RespondWithEphemeralMessage(ctx context.Context, r Responder, message string) error {
	return r.Respond(ctx, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// RespondWithText sends text in the channel, falling back to embeds when it is
// too long for a plain message
func RespondWithText(ctx context.Context, r Responder, text string) error {
	if len(text) <= maxContentLength {
		return RespondWithMessage(ctx, r, text)
	}
	return RespondWithBlocks(ctx, r, []models.Block{models.Section(text)}, false)
}

// RespondWithBlocks sends formatted blocks as the response to an interaction
func RespondWithBlocks(ctx context.Context, r Responder, blocks []models.Block, ephemeral bool) error {
	data := &discordgo.InteractionResponseData{
		Embeds: renderBlocks(blocks),
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}

	return r.Respond(ctx, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// RespondDeferred acknowledges an interaction whose response will be sent as an edit
func RespondDeferred(ctx context.Context, r Responder, ephemeral bool) error {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		}
	}

	return r.Respond(ctx, resp)
}

// EditWithMessage replaces the response to an interaction with text
func EditWithMessage(ctx context.Context, r Responder, message string) error {
	return r.Edit(ctx, &discordgo.WebhookEdit{
		Content: &message,
	})
}

// EditWithBlocks replaces the response to an interaction with formatted blocks
func EditWithBlocks(ctx context.Context, r Responder, blocks []models.Block) error {
	embeds := renderBlocks(blocks)
	return r.Edit(ctx, &discordgo.WebhookEdit{
		Embeds: &embeds,
	})
}

// failWith tells the user the command failed and returns cause for logging
func failWith(ctx context.Context, r Responder, deferred bool, message string, cause error) error {
	var err error
	if deferred {
		err = EditWithMessage(ctx, r, message)
	} else {
		err = RespondWithEphemeralMessage(ctx, r, message)
	}

	if err != nil {
		return errors.Join(cause, err)
	}
	return fmt.Errorf("%s: %w", message, cause)
}
