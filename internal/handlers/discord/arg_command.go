package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/debatebot/internal/services/argument"
)

const noArgumentMessage = "There are no arguments matching that name"

// ArgCommand handles the /arg command
type ArgCommand struct {
	BaseCommand
	argumentService argument.Service
}

// NewArgCommand creates a new arg command handler
func NewArgCommand(argumentService argument.Service) *ArgCommand {
	return &ArgCommand{
		BaseCommand: BaseCommand{
			Name:        "arg",
			Description: "Post a saved argument",
			Options:     textOption("name", "Name of the argument", true),
		},
		argumentService: argumentService,
	}
}

// Handle posts the argument with the given name to the channel
func (c *ArgCommand) Handle(ctx context.Context, inv *Invocation, r Responder) error {
	output, err := c.argumentService.Lookup(ctx, &argument.LookupInput{
		Name: inv.Text,
	})
	if err != nil {
		if errors.Is(err, argument.ErrNoMatch) || errors.Is(err, argument.ErrEmptyName) {
			return RespondWithEphemeralMessage(ctx, r, noArgumentMessage)
		}
		return failWith(ctx, r, false, "Error looking up argument", err)
	}

	return RespondWithText(ctx, r, output.Argument.Arg)
}
