package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/debatebot/internal/services/timer"
)

const noTimeMessage = "Error with /timer! Make sure you gave a time"

// TimerCommand handles the /timer command
type TimerCommand struct {
	BaseCommand
	timerService timer.Service
}

// NewTimerCommand creates a new timer command handler
func NewTimerCommand(timerService timer.Service) *TimerCommand {
	return &TimerCommand{
		BaseCommand: BaseCommand{
			Name:        "timer",
			Description: "Count down in your direct messages",
			Options:     textOption("duration", "Minutes and seconds, e.g. 2:30", false),
		},
		timerService: timerService,
	}
}

// Handle starts a countdown in the caller's direct messages. Opening the direct
// message takes REST calls, so the interaction is acknowledged first.
func (c *TimerCommand) Handle(ctx context.Context, inv *Invocation, r Responder) error {
	if inv.Text == "" {
		return RespondWithEphemeralMessage(ctx, r, noTimeMessage)
	}

	if err := RespondDeferred(ctx, r, true); err != nil {
		return err
	}

	_, err := c.timerService.Start(ctx, &timer.StartInput{
		UserID:   inv.UserID,
		Duration: inv.Text,
	})
	if err != nil {
		switch {
		case errors.Is(err, timer.ErrEmptyDuration), errors.Is(err, timer.ErrInvalidDuration):
			return EditWithMessage(ctx, r, noTimeMessage+" like 2:30")
		case errors.Is(err, timer.ErrDurationTooLong):
			return EditWithMessage(ctx, r, "Error with /timer! That time is too long")
		default:
			return failWith(ctx, r, true, "Error starting timer, make sure the bot can message you", err)
		}
	}

	return EditWithMessage(ctx, r, fmt.Sprintf("Timer set for %s, check your direct messages", inv.Text))
}
