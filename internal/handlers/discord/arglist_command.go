package discord

import (
	"context"
	"strings"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/KirkDiggler/debatebot/internal/services/argument"
)

// ArgListCommand handles the /arglist command
type ArgListCommand struct {
	BaseCommand
	argumentService argument.Service
}

// NewArgListCommand creates a new arglist command handler
func NewArgListCommand(argumentService argument.Service) *ArgListCommand {
	return &ArgListCommand{
		BaseCommand: BaseCommand{
			Name:        "arglist",
			Description: "List the saved arguments by category",
			Options:     textOption("categories", "Space separated categories, e.g. theory ks", false),
		},
		argumentService: argumentService,
	}
}

// Handle lists the arguments of the requested categories to the caller
func (c *ArgListCommand) Handle(ctx context.Context, inv *Invocation, r Responder) error {
	var types []models.ArgumentType
	for _, tag := range strings.Fields(inv.Text) {
		types = append(types, models.ArgumentType(tag))
	}

	output, err := c.argumentService.List(ctx, &argument.ListInput{
		Types: types,
	})
	if err != nil {
		return failWith(ctx, r, false, "Error listing arguments", err)
	}

	return RespondWithBlocks(ctx, r, output.Blocks, true)
}
