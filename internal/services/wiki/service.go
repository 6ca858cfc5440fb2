package wiki

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/KirkDiggler/debatebot/internal/scrape"
)

const (
	entryTokens  = 2
	encodedSpace = "%20"
)

// service implements the Service interface
type service struct {
	fetcher scrape.Fetcher
	baseURL string
}

// New creates a new wiki service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Fetcher == nil {
		return nil, ErrNilFetcher
	}

	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURL
	}

	return &service{
		fetcher: cfg.Fetcher,
		baseURL: cfg.BaseURL,
	}, nil
}

// BuildURL turns a query into a wiki page URL. The last two words name the entry
// and the words before them name the page, e.g. "Jane Doe Negative Case" becomes
// base + "Jane%20Doe/Negative%20Case".
func BuildURL(base, query string) string {
	tokens := strings.Split(query, " ")
	cut := max(len(tokens)-entryTokens, 0)

	path := strings.Join(tokens[:cut], encodedSpace)
	entry := strings.Join(tokens[cut:], encodedSpace)

	return base + path + "/" + entry
}

// Lookup fetches the case list page for the query and reads its entry titles
func (s *service) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return nil, ErrEmptyQuery
	}

	query := strings.TrimSpace(input.Query)
	link := BuildURL(s.baseURL, query)

	page, found, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch case list: %w", err)
	}

	if !found {
		return &LookupOutput{
			URL: link,
			Blocks: []models.Block{
				models.PlainSection(fmt.Sprintf("%s is invalid or has no entries", query)),
			},
		}, nil
	}

	titles := slices.Collect(scrape.WikiTitles(page))

	body := strings.Join(titles, "\n")
	if body == "" {
		body = "No Entries"
	}

	return &LookupOutput{
		URL:    link,
		Found:  true,
		Titles: titles,
		Blocks: []models.Block{
			models.Section(models.Link(query, link)),
			models.Divider(),
			models.PlainSection(body),
		},
	}, nil
}
