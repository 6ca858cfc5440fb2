package discord

//go:generate mockgen -package=mocks -destination=mocks/mock_messenger.go github.com/KirkDiggler/debatebot/internal/handlers/discord Messenger

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/bwmarrin/discordgo"
)

// Messenger is the part of the Discord REST API the commands use
type Messenger interface {
	InteractionRespond(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error
	InteractionResponseEdit(ctx context.Context, interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error)
	UserChannelCreate(ctx context.Context, userID string) (*discordgo.Channel, error)
	ChannelMessageSend(ctx context.Context, channelID, content string) (*discordgo.Message, error)
	ChannelMessageSendComplex(ctx context.Context, channelID string, data *discordgo.MessageSend) (*discordgo.Message, error)
	ChannelMessageEdit(ctx context.Context, channelID, messageID, content string) (*discordgo.Message, error)
}

// SessionMessenger implements Messenger with a discordgo session
type SessionMessenger struct {
	session *discordgo.Session
}

// NewSessionMessenger wraps a discordgo session
func NewSessionMessenger(session *discordgo.Session) *SessionMessenger {
	return &SessionMessenger{session: session}
}

func (m *SessionMessenger) InteractionRespond(ctx context.Context, interaction *discordgo.Interaction, resp *discordgo.InteractionResponse) error {
	return m.session.InteractionRespond(interaction, resp, discordgo.WithContext(ctx))
}

func (m *SessionMessenger) InteractionResponseEdit(ctx context.Context, interaction *discordgo.Interaction, edit *discordgo.WebhookEdit) (*discordgo.Message, error) {
	return m.session.InteractionResponseEdit(interaction, edit, discordgo.WithContext(ctx))
}

func (m *SessionMessenger) UserChannelCreate(ctx context.Context, userID string) (*discordgo.Channel, error) {
	return m.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
}

func (m *SessionMessenger) ChannelMessageSend(ctx context.Context, channelID, content string) (*discordgo.Message, error) {
	return m.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
}

func (m *SessionMessenger) ChannelMessageSendComplex(ctx context.Context, channelID string, data *discordgo.MessageSend) (*discordgo.Message, error) {
	return m.session.ChannelMessageSendComplex(channelID, data, discordgo.WithContext(ctx))
}

func (m *SessionMessenger) ChannelMessageEdit(ctx context.Context, channelID, messageID, content string) (*discordgo.Message, error) {
	return m.session.ChannelMessageEdit(channelID, messageID, content, discordgo.WithContext(ctx))
}

// TimerNotifier delivers countdown messages over direct messages
type TimerNotifier struct {
	messenger Messenger
}

// NewTimerNotifier creates a countdown notifier backed by messenger
func NewTimerNotifier(messenger Messenger) *TimerNotifier {
	return &TimerNotifier{messenger: messenger}
}

// OpenDirect returns the direct message channel with the user
func (n *TimerNotifier) OpenDirect(ctx context.Context, userID string) (string, error) {
	channel, err := n.messenger.UserChannelCreate(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to create DM channel: %w", err)
	}
	return channel.ID, nil
}

// Post sends a new message to a channel
func (n *TimerNotifier) Post(ctx context.Context, channelID, text string) (*models.MessageRef, error) {
	msg, err := n.messenger.ChannelMessageSend(ctx, channelID, text)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	return &models.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

// Edit replaces the text of a posted message
func (n *TimerNotifier) Edit(ctx context.Context, ref *models.MessageRef, text string) error {
	if _, err := n.messenger.ChannelMessageEdit(ctx, ref.ChannelID, ref.MessageID, text); err != nil {
		return fmt.Errorf("failed to edit message: %w", err)
	}
	return nil
}
