package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/debatebot/internal/services/wiki"
)

// WikiCommand handles the /wiki command
type WikiCommand struct {
	BaseCommand
	wikiService wiki.Service
}

// NewWikiCommand creates a new wiki command handler
func NewWikiCommand(wikiService wiki.Service) *WikiCommand {
	return &WikiCommand{
		BaseCommand: BaseCommand{
			Name:        "wiki",
			Description: "Look up a case list on the wiki",
			Options:     textOption("entry", "Debater or team then the entry, e.g. Jane Doe Negative Case", true),
		},
		wikiService: wikiService,
	}
}

// Handle shows the entry titles of a case list. The result is only visible to
// the caller unless the command was used in a direct message.
func (c *WikiCommand) Handle(ctx context.Context, inv *Invocation, r Responder) error {
	if err := RespondDeferred(ctx, r, !inv.DirectMessage); err != nil {
		return err
	}

	output, err := c.wikiService.Lookup(ctx, &wiki.LookupInput{
		Query: inv.Text,
	})
	if err != nil {
		if errors.Is(err, wiki.ErrEmptyQuery) {
			return EditWithMessage(ctx, r, "Give a debater or team and an entry, e.g. Jane Doe Negative Case")
		}
		return failWith(ctx, r, true, "Error reading the wiki", err)
	}

	return EditWithBlocks(ctx, r, output.Blocks)
}
