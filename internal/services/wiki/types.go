package wiki

import (
	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/KirkDiggler/debatebot/internal/scrape"
)

// Config holds configuration for the wiki service
type Config struct {
	Fetcher scrape.Fetcher

	// BaseURL is the root of the case list wiki, ending in a slash
	BaseURL string
}

// LookupInput contains parameters for a case list lookup
type LookupInput struct {
	// Query is the debater or team followed by the two word entry, e.g. "Jane Doe Negative Case"
	Query string
}

// LookupOutput contains the result of a case list lookup
type LookupOutput struct {
	URL string

	// Found is false when the wiki has no page for the query
	Found bool

	Titles []string

	Blocks []models.Block
}
