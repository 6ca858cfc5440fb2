package timer

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/debatebot/internal/services/timer Service
//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/debatebot/internal/services/timer Notifier

import (
	"context"

	"github.com/KirkDiggler/debatebot/internal/models"
)

// Service defines the interface for countdown timers
type Service interface {
	// Start messages the user and counts down in that message until the duration is up
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// Active returns the number of running countdowns
	Active() int

	// StopAll cancels every running countdown without announcing it
	StopAll()
}

// Notifier delivers countdown messages to a user
type Notifier interface {
	// OpenDirect returns the direct message channel with the user
	OpenDirect(ctx context.Context, userID string) (string, error)

	// Post sends a new message to a channel
	Post(ctx context.Context, channelID, text string) (*models.MessageRef, error)

	// Edit replaces the text of a posted message
	Edit(ctx context.Context, ref *models.MessageRef, text string) error
}
