package discord

import (
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/bwmarrin/discordgo"
)

const (
	embedColor = 0x00ff00 // Green color

	// Discord limits an embed description to 4096 characters and a message to 10 embeds
	maxDescriptionLength = 4096
	maxEmbeds            = 10

	dividerLine = "───────────────"
)

// renderLines turns blocks into the lines of a Discord markdown message
func renderLines(blocks []models.Block) []string {
	lines := make([]string, 0, len(blocks))

	for _, b := range blocks {
		text := b.Text
		if !b.Markdown {
			text = models.EscapeMarkdown(text)
		}

		switch b.Kind {
		case models.BlockKindDivider:
			lines = append(lines, dividerLine)
		case models.BlockKindContext:
			for _, line := range strings.Split(text, "\n") {
				lines = append(lines, "-# "+line)
			}
		default:
			lines = append(lines, text)
		}
	}

	return lines
}

// renderBlocks lays blocks out as embed descriptions, starting a new embed whenever
// the next block would not fit. Blocks past the last embed are dropped.
func renderBlocks(blocks []models.Block) []*discordgo.MessageEmbed {
	var embeds []*discordgo.MessageEmbed
	var current strings.Builder

	flush := func() {
		if current.Len() == 0 {
			return
		}
		embeds = append(embeds, &discordgo.MessageEmbed{
			Description: current.String(),
			Color:       embedColor,
		})
		current.Reset()
	}

	for _, line := range renderLines(blocks) {
		for len(line) > maxDescriptionLength {
			flush()
			cut := maxDescriptionLength
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			current.WriteString(line[:cut])
			line = line[cut:]
		}

		if current.Len() > 0 && current.Len()+1+len(line) > maxDescriptionLength {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	flush()

	if len(embeds) > maxEmbeds {
		embeds = embeds[:maxEmbeds]
	}

	return embeds
}
