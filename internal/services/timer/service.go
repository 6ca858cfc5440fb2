package timer

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/KirkDiggler/debatebot/internal/common/uuid"
	"github.com/KirkDiggler/debatebot/internal/metrics"
	"github.com/KirkDiggler/debatebot/internal/models"
)

const (
	defaultTickInterval = 2 * time.Second

	timeUpText = "=== Time is up! ==="
)

// countdown is one running timer
type countdown struct {
	id      string
	total   time.Duration
	message *models.MessageRef
	stop    chan struct{}
}

// service implements the Service interface
type service struct {
	notifier     Notifier
	uuid         uuid.UUID
	tickInterval time.Duration
	maxDuration  time.Duration

	// ctx is cancelled by StopAll so in flight updates give up
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	running map[string]*countdown
	wg      sync.WaitGroup
}

// New creates a new timer service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}

	ids := cfg.UUID
	if ids == nil {
		ids = uuid.New()
	}

	tickInterval := cfg.TickInterval
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &service{
		notifier:     cfg.Notifier,
		uuid:         ids,
		tickInterval: tickInterval,
		maxDuration:  cfg.MaxDuration,
		ctx:          ctx,
		cancel:       cancel,
		running:      make(map[string]*countdown),
	}, nil
}

// Start posts the countdown message to the user and starts counting down
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, ErrEmptyUserID
	}

	total, err := ParseDuration(input.Duration, s.maxDuration)
	if err != nil {
		return nil, err
	}

	channelID, err := s.notifier.OpenDirect(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to open direct message: %w", err)
	}

	message, err := s.notifier.Post(ctx, channelID, fmt.Sprintf("Setting timer for %s", input.Duration))
	if err != nil {
		return nil, fmt.Errorf("failed to post timer message: %w", err)
	}

	c := &countdown{
		id:      s.uuid.NewUUID(),
		total:   total,
		message: message,
		stop:    make(chan struct{}),
	}

	s.mu.Lock()
	s.running[c.id] = c
	s.wg.Add(1)
	s.mu.Unlock()
	metrics.ActiveTimers.Inc()

	go s.run(c)

	return &StartOutput{
		TimerID:  c.id,
		Duration: total,
		Message:  message,
	}, nil
}

// run updates the message every tick until the deadline, then posts the time up
// notice once. A tick landing on the deadline may still be shown.
func (s *service) run(c *countdown) {
	defer s.wg.Done()
	defer s.remove(c.id)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	deadline := time.NewTimer(c.total)
	defer deadline.Stop()

	remaining := c.total - s.tickInterval
	for {
		select {
		case <-ticker.C:
			err := s.notifier.Edit(s.ctx, c.message, fmt.Sprintf("Time left: %s", FormatRemaining(remaining)))
			if err != nil {
				log.Printf("Error updating timer %s: %v", c.id, err)
			}
			remaining -= s.tickInterval

		case <-deadline.C:
			if _, err := s.notifier.Post(s.ctx, c.message.ChannelID, timeUpText); err != nil {
				log.Printf("Error posting time up for timer %s: %v", c.id, err)
			}
			return

		case <-c.stop:
			return
		}
	}
}

func (s *service) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.running[id]; ok {
		delete(s.running, id)
		metrics.ActiveTimers.Dec()
	}
}

// Active returns the number of running countdowns
func (s *service) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.running)
}

// StopAll cancels every running countdown and waits for them to finish
func (s *service) StopAll() {
	s.mu.Lock()
	for _, c := range s.running {
		close(c.stop)
	}
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
