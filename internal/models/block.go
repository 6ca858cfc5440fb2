package models

import "strings"

// BlockKind is the layout of a message block
type BlockKind string

const (
	// BlockKindSection is a paragraph of text
	BlockKindSection BlockKind = "section"

	// BlockKindContext is small secondary text
	BlockKindContext BlockKind = "context"

	// BlockKindDivider is a visual separator and carries no text
	BlockKindDivider BlockKind = "divider"
)

// Block is one unit of a formatted chat message
type Block struct {
	Kind BlockKind

	Text string

	// Markdown is false for text that must be shown verbatim
	Markdown bool
}

// Section returns a markdown section block
func Section(text string) Block {
	return Block{Kind: BlockKindSection, Text: text, Markdown: true}
}

// PlainSection returns a section block shown verbatim
func PlainSection(text string) Block {
	return Block{Kind: BlockKindSection, Text: text}
}

// Context returns a markdown context block
func Context(text string) Block {
	return Block{Kind: BlockKindContext, Text: text, Markdown: true}
}

// Divider returns a divider block
func Divider() Block {
	return Block{Kind: BlockKindDivider}
}

// Link renders a masked markdown link
func Link(text, url string) string {
	return "[" + text + "](" + url + ")"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"~", `\~`,
	"`", "\\`",
	"|", `\|`,
)

// EscapeMarkdown makes text show verbatim inside markdown
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}
