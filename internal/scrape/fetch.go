package scrape

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/KirkDiggler/debatebot/internal/metrics"
	"github.com/go-resty/resty/v2"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("debatebot/scrape")

//go:generate mockgen -package=mocks -destination=mocks/mock_fetcher.go github.com/KirkDiggler/debatebot/internal/scrape Fetcher

// Fetcher retrieves the HTML of a page
type Fetcher interface {
	// Fetch returns the body of the page at url. found is false, with a nil error,
	// when the server reports the page does not exist.
	Fetch(ctx context.Context, url string) (body string, found bool, err error)
}

// ClientConfig holds configuration for the page fetching client
type ClientConfig struct {
	// Timeout bounds a single fetch, zero leaves the client default
	Timeout time.Duration

	// CacheTTL keeps fetched pages around for this long, zero disables caching
	CacheTTL time.Duration

	// UserAgent overrides the user-agent header when set
	UserAgent string
}

// Client fetches pages over HTTP
type Client struct {
	http  *resty.Client
	pages *cache.Cache
}

// NewClient creates a new page fetching client
func NewClient(cfg *ClientConfig) *Client {
	if cfg == nil {
		cfg = &ClientConfig{}
	}

	httpClient := resty.New()
	if cfg.Timeout > 0 {
		httpClient.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		httpClient.SetHeader("user-agent", cfg.UserAgent)
	}

	c := &Client{http: httpClient}
	if cfg.CacheTTL > 0 {
		c.pages = cache.New(cfg.CacheTTL, cfg.CacheTTL*10)
	}

	return c
}

// Fetch retrieves the page at link. Only a 404 is reported as not found; any other
// error status is returned as ErrUnexpectedStatus.
func (c *Client) Fetch(ctx context.Context, link string) (string, bool, error) {
	ctx, span := tracer.Start(ctx, "Fetch", trace.WithAttributes(attribute.String("url", link)))
	defer span.End()

	if c.pages != nil {
		if page, ok := c.pages.Get(link); ok {
			metrics.Fetches.WithLabelValues("cached").Inc()
			return page.(string), true, nil
		}
	}

	slog.DebugContext(ctx, "fetch page", "url", link)

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		metrics.Fetches.WithLabelValues("error").Inc()
		return "", false, fmt.Errorf("failed to fetch %s: %w", link, err)
	}

	if res.StatusCode() == http.StatusNotFound {
		slog.DebugContext(ctx, "page not found", "url", link)
		metrics.Fetches.WithLabelValues("not_found").Inc()
		return "", false, nil
	}

	if res.IsError() {
		span.SetStatus(codes.Error, "unexpected status")
		metrics.Fetches.WithLabelValues("error").Inc()
		return "", false, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, res.StatusCode(), link)
	}

	body := res.String()
	if c.pages != nil {
		c.pages.Set(link, body, cache.DefaultExpiration)
	}

	metrics.Fetches.WithLabelValues("ok").Inc()
	return body, true, nil
}
