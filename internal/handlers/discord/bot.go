package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/debatebot/internal/coin"
	"github.com/KirkDiggler/debatebot/internal/metrics"
	"github.com/KirkDiggler/debatebot/internal/services/argument"
	"github.com/KirkDiggler/debatebot/internal/services/pairing"
	"github.com/KirkDiggler/debatebot/internal/services/timer"
	"github.com/KirkDiggler/debatebot/internal/services/wiki"
	"github.com/bwmarrin/discordgo"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	messenger  Messenger
	handlers   []CommandHandler
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token, unused when Session is set
	Token string

	// Session is an already created Discord session
	Session *discordgo.Session

	// Messenger overrides the REST calls made through Session
	Messenger Messenger

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	ArgumentService argument.Service
	PairingService  pairing.Service
	WikiService     wiki.Service
	TimerService    timer.Service
	Flipper         coin.Flipper
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil && cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.ArgumentService == nil {
		return nil, errors.New("argument service cannot be nil")
	}

	if cfg.PairingService == nil {
		return nil, errors.New("pairing service cannot be nil")
	}

	if cfg.WikiService == nil {
		return nil, errors.New("wiki service cannot be nil")
	}

	if cfg.TimerService == nil {
		return nil, errors.New("timer service cannot be nil")
	}

	if cfg.Flipper == nil {
		return nil, errors.New("flipper cannot be nil")
	}

	session := cfg.Session
	if session == nil {
		var err error
		session, err = discordgo.New("Bot " + cfg.Token)
		if err != nil {
			return nil, fmt.Errorf("failed to create Discord session: %w", err)
		}
	}

	messenger := cfg.Messenger
	if messenger == nil {
		messenger = NewSessionMessenger(session)
	}

	bot := &Bot{
		session:    session,
		messenger:  messenger,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
	}

	bot.handlers = []CommandHandler{
		NewArgListCommand(cfg.ArgumentService),
		NewArgCommand(cfg.ArgumentService),
		NewPairingsCommand(cfg.PairingService, messenger),
		NewSetPairingsCommand(cfg.PairingService),
		NewWikiCommand(cfg.WikiService),
		NewTimerCommand(cfg.TimerService),
		NewFlipCommand(cfg.Flipper),
	}
	for _, h := range bot.handlers {
		bot.commands[h.GetName()] = h
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Messenger returns the REST client the commands respond with
func (b *Bot) Messenger() Messenger {
	return b.messenger
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	for _, h := range b.handlers {
		if err := b.RegisterCommand(h); err != nil {
			return fmt.Errorf("failed to register %s command: %w", h.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.appID()

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		} else {
			log.Printf("Successfully deleted command %s (ID: %s)", cmdName, cmdID)
		}
	}

	return b.session.Close()
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	guildID := b.config.GuildID
	if guildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), guildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), guildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.Printf("Registered command: %s with ID: %s", cmd.GetName(), createdCmd.ID)

	return nil
}

// handleInteraction handles interactions received over the gateway. discordgo
// calls each handler on its own goroutine.
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	b.Dispatch(ctx, i.Interaction, NewInteractionResponder(b.messenger, i.Interaction))
}

// Dispatch runs the command an interaction invokes
func (b *Bot) Dispatch(ctx context.Context, interaction *discordgo.Interaction, r Responder) {
	inv := NewInvocation(interaction)
	if inv == nil {
		return
	}

	h, ok := b.commands[inv.Command]
	if !ok {
		log.Printf("Unknown command %s", inv.Command)
		metrics.Commands.WithLabelValues(inv.Command, "unknown").Inc()
		if err := RespondWithEphemeralMessage(ctx, r, "Unknown command"); err != nil {
			log.Printf("Error responding to unknown command %s: %v", inv.Command, err)
		}
		return
	}

	outcome := "ok"
	if err := h.Handle(ctx, inv, r); err != nil {
		log.Printf("Error handling command %s: %v", inv.Command, err)
		outcome = "error"
	}
	metrics.Commands.WithLabelValues(inv.Command, outcome).Inc()
}
