package discord

import (
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

const (
	// Discord drops interactions that are not answered within three seconds
	defaultAckWindow = 2500 * time.Millisecond

	commandTimeout = 2 * time.Minute
)

// ErrAlreadyResponded is returned when an interaction is responded to twice
var ErrAlreadyResponded = errors.New("interaction already responded to")

// Dispatcher runs the command an interaction invokes
type Dispatcher interface {
	Dispatch(ctx context.Context, interaction *discordgo.Interaction, r Responder)
}

// InteractionsConfig holds configuration for the HTTP interactions endpoint
type InteractionsConfig struct {
	// PublicKey is the hex encoded application public key
	PublicKey string

	Dispatcher Dispatcher

	Messenger Messenger

	// AckWindow is how long a command may take to respond before it is deferred
	AckWindow time.Duration
}

// InteractionsHandler receives interactions over HTTP
type InteractionsHandler struct {
	publicKey  ed25519.PublicKey
	dispatcher Dispatcher
	messenger  Messenger
	ackWindow  time.Duration
}

// NewInteractionsHandler creates the HTTP interactions endpoint
func NewInteractionsHandler(cfg *InteractionsConfig) (*InteractionsHandler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Dispatcher == nil {
		return nil, errors.New("dispatcher cannot be nil")
	}

	if cfg.Messenger == nil {
		return nil, errors.New("messenger cannot be nil")
	}

	key, err := hex.DecodeString(cfg.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key: %w", err)
	}
	if len(key) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes", ed25519.PublicKeySize)
	}

	ackWindow := cfg.AckWindow
	if ackWindow <= 0 {
		ackWindow = defaultAckWindow
	}

	return &InteractionsHandler{
		publicKey:  ed25519.PublicKey(key),
		dispatcher: cfg.Dispatcher,
		messenger:  cfg.Messenger,
		ackWindow:  ackWindow,
	}, nil
}

// ServeHTTP verifies the request signature, answers pings and dispatches commands.
// The command's first response is written as the reply.
func (h *InteractionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !discordgo.VerifyInteraction(r, h.publicKey) {
		http.Error(w, "invalid request signature", http.StatusUnauthorized)
		return
	}

	var interaction discordgo.Interaction
	if err := json.NewDecoder(r.Body).Decode(&interaction); err != nil {
		http.Error(w, "invalid interaction", http.StatusBadRequest)
		return
	}

	switch interaction.Type {
	case discordgo.InteractionPing:
		writeResponse(w, &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong})
		return
	case discordgo.InteractionApplicationCommand:
	default:
		http.Error(w, "unsupported interaction type", http.StatusBadRequest)
		return
	}

	responder := newWebhookResponder(h.messenger, &interaction)
	done := make(chan struct{})

	go func() {
		defer close(done)

		// the request context ends once the reply is written
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()

		h.dispatcher.Dispatch(ctx, &interaction, responder)
	}()

	writeResponse(w, responder.await(h.ackWindow, done))
	responder.markWritten()
}

func writeResponse(w http.ResponseWriter, resp *discordgo.InteractionResponse) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Error writing interaction response: %v", err)
	}
}

// webhookResponder answers an interaction received over HTTP. The first response
// becomes the HTTP reply. If the command is too slow the reply is a deferred ack
// and its response is applied as an edit instead.
type webhookResponder struct {
	messenger   Messenger
	interaction *discordgo.Interaction
	initial     chan *discordgo.InteractionResponse
	written     chan struct{}

	mu        sync.Mutex
	responded bool
	deferred  bool
}

func newWebhookResponder(messenger Messenger, interaction *discordgo.Interaction) *webhookResponder {
	return &webhookResponder{
		messenger:   messenger,
		interaction: interaction,
		initial:     make(chan *discordgo.InteractionResponse, 1),
		written:     make(chan struct{}),
	}
}

func (w *webhookResponder) Respond(ctx context.Context, resp *discordgo.InteractionResponse) error {
	w.mu.Lock()
	if w.responded {
		w.mu.Unlock()
		return ErrAlreadyResponded
	}
	w.responded = true

	if !w.deferred {
		w.initial <- resp
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	// the deferred ack already went out
	if resp.Type == discordgo.InteractionResponseDeferredChannelMessageWithSource || resp.Data == nil {
		return nil
	}

	edit := &discordgo.WebhookEdit{Content: &resp.Data.Content}
	if len(resp.Data.Embeds) > 0 {
		edit.Embeds = &resp.Data.Embeds
	}
	return w.Edit(ctx, edit)
}

func (w *webhookResponder) Edit(ctx context.Context, edit *discordgo.WebhookEdit) error {
	select {
	case <-w.written:
	case <-ctx.Done():
		return ctx.Err()
	}

	if _, err := w.messenger.InteractionResponseEdit(ctx, w.interaction, edit); err != nil {
		return fmt.Errorf("failed to edit interaction response: %w", err)
	}
	return nil
}

// await returns the reply to write: the command's first response, a deferred ack
// once window passes, or an error message if the command finished without responding.
func (w *webhookResponder) await(window time.Duration, done <-chan struct{}) *discordgo.InteractionResponse {
	timer := time.NewTimer(window)
	defer timer.Stop()

	select {
	case resp := <-w.initial:
		return resp

	case <-done:
		select {
		case resp := <-w.initial:
			return resp
		default:
		}
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Something went wrong with that command",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		}

	case <-timer.C:
		w.mu.Lock()
		defer w.mu.Unlock()

		// Respond may have won the race for the lock
		if w.responded {
			return <-w.initial
		}
		w.deferred = true
		return &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		}
	}
}

func (w *webhookResponder) markWritten() {
	close(w.written)
}
