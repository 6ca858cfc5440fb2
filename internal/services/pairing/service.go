package pairing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/KirkDiggler/debatebot/internal/models"
	tournamentRepo "github.com/KirkDiggler/debatebot/internal/repositories/tournament"
	"github.com/KirkDiggler/debatebot/internal/scrape"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const postingsMarker = "postings"

var tracer = otel.Tracer("debatebot/pairing")

// service implements the Service interface
type service struct {
	fetcher        scrape.Fetcher
	tournamentRepo tournamentRepo.Repository
	schoolCode     string
	baseURL        *url.URL
}

// New creates a new pairing service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Fetcher == nil {
		return nil, ErrNilFetcher
	}

	if cfg.TournamentRepo == nil {
		return nil, ErrNilTournamentRepo
	}

	s := &service{
		fetcher:        cfg.Fetcher,
		tournamentRepo: cfg.TournamentRepo,
		schoolCode:     cfg.SchoolCode,
	}

	if cfg.BaseURL != "" {
		base, err := url.Parse(cfg.BaseURL)
		if err != nil || !base.IsAbs() {
			return nil, ErrInvalidBaseURL
		}
		s.baseURL = base
	}

	return s, nil
}

// GetPairings follows the round link on the tournament page and reads the pairings table
func (s *service) GetPairings(ctx context.Context, input *GetPairingsInput) (*GetPairingsOutput, error) {
	ctx, span := tracer.Start(ctx, "GetPairings")
	defer span.End()

	tournamentURL := ""
	if input != nil {
		tournamentURL = input.URL
	}

	if tournamentURL == "" {
		tournament, err := s.tournamentRepo.GetTournament(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get tournament: %w", err)
		}
		tournamentURL = tournament.URL
	}
	span.SetAttributes(attribute.String("tournament_url", tournamentURL))

	tournamentPage, err := s.fetchPage(ctx, tournamentURL)
	if err != nil {
		return nil, err
	}

	href, ok := scrape.NextRoundLink(tournamentPage)
	if !ok {
		log.Printf("No round link on %s", tournamentURL)
		return nil, ErrPairingsUnavailable
	}

	base := s.baseURL
	if base == nil {
		base, err = url.Parse(tournamentURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse tournament URL: %w", err)
		}
	}
	roundURL := scrape.Resolve(base, href)
	span.AddEvent("round link", trace.WithAttributes(attribute.String("round_url", roundURL)))

	roundPage, err := s.fetchPage(ctx, roundURL)
	if err != nil {
		return nil, err
	}

	records, err := scrape.ParseTable(roundPage)
	if err != nil {
		if errors.Is(err, scrape.ErrNoTable) {
			log.Printf("No pairings table on %s", roundURL)
			return nil, ErrPairingsUnavailable
		}
		return nil, fmt.Errorf("failed to parse pairings table: %w", err)
	}

	if len(records) > 0 && !hasRoom(records) {
		return nil, ErrMissingRoomColumn
	}

	rows := make([]*models.PairingRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, toRow(record))
	}
	rows = FilterRows(rows, s.schoolCode)

	roundBase, err := url.Parse(roundURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse round URL: %w", err)
	}

	links := make(models.JudgeLinks)
	for name, profile := range scrape.JudgeLinks(roundPage, roundBase) {
		links[name] = models.Link(name, profile)
	}

	return &GetPairingsOutput{
		RoundURL:   roundURL,
		Rows:       rows,
		JudgeLinks: links,
		Blocks:     BuildBlocks(rows, links),
	}, nil
}

// fetchPage reports a missing page as ErrPairingsUnavailable
func (s *service) fetchPage(ctx context.Context, link string) (string, error) {
	page, found, err := s.fetcher.Fetch(ctx, link)
	if err != nil {
		return "", fmt.Errorf("failed to fetch pairings: %w", err)
	}

	if !found {
		log.Printf("Pairings page not found: %s", link)
		return "", ErrPairingsUnavailable
	}

	return page, nil
}

// SetTournament changes the current tournament. URLs that are not postings pages
// leave the current tournament as it was.
func (s *service) SetTournament(ctx context.Context, input *SetTournamentInput) (*SetTournamentOutput, error) {
	if input == nil {
		return nil, ErrInvalidTournamentURL
	}

	link := strings.TrimSpace(input.URL)
	if !strings.Contains(link, postingsMarker) {
		return nil, ErrInvalidTournamentURL
	}

	tournament, err := s.tournamentRepo.SetTournament(ctx, &tournamentRepo.SetTournamentInput{
		URL:   link,
		SetBy: input.SetBy,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to set tournament: %w", err)
	}

	return &SetTournamentOutput{
		Tournament: tournament,
		Blocks: []models.Block{
			models.Context(fmt.Sprintf("_Tournament set by: %s_", models.EscapeMarkdown(input.SetBy))),
		},
	}, nil
}
