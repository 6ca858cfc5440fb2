package timer

import (
	"time"

	"github.com/KirkDiggler/debatebot/internal/common/uuid"
	"github.com/KirkDiggler/debatebot/internal/models"
)

// Config holds configuration for the timer service
type Config struct {
	Notifier Notifier

	UUID uuid.UUID

	// TickInterval is how often the countdown message is updated, two seconds by default
	TickInterval time.Duration

	// MaxDuration is the longest countdown accepted, zero for no limit
	MaxDuration time.Duration
}

// StartInput contains parameters for starting a countdown
type StartInput struct {
	UserID string

	// Duration is written as minutes:seconds, e.g. "2:30"
	Duration string
}

// StartOutput contains the started countdown
type StartOutput struct {
	TimerID  string
	Duration time.Duration

	// Message is the direct message the countdown is shown in
	Message *models.MessageRef
}
