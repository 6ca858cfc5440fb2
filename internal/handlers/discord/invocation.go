package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Invocation is a slash command as the command handlers see it
type Invocation struct {
	Interaction *discordgo.Interaction

	// Command is the slash command name without the slash
	Command string

	// Text is the value of the command's string option, trimmed
	Text string

	ChannelID string
	GuildID   string
	UserID    string
	UserName  string

	// DirectMessage is true when the command was used outside a server
	DirectMessage bool
}

// NewInvocation reads an application command interaction. It returns nil for
// any other kind of interaction.
func NewInvocation(i *discordgo.Interaction) *Invocation {
	if i == nil || i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()

	inv := &Invocation{
		Interaction:   i,
		Command:       data.Name,
		ChannelID:     i.ChannelID,
		GuildID:       i.GuildID,
		DirectMessage: i.GuildID == "",
	}

	for _, opt := range data.Options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			inv.Text = strings.TrimSpace(opt.StringValue())
			break
		}
	}

	// Member is set in servers, User in direct messages
	switch {
	case i.Member != nil && i.Member.User != nil:
		inv.UserID = i.Member.User.ID
		inv.UserName = displayName(i.Member.User)
		if i.Member.Nick != "" {
			inv.UserName = i.Member.Nick
		}
	case i.User != nil:
		inv.UserID = i.User.ID
		inv.UserName = displayName(i.User)
	}

	return inv
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}
