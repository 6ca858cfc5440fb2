package scrape

// ScrapeError is a custom error type for scraping errors
type ScrapeError string

// Error implements the error interface
func (e ScrapeError) Error() string {
	return string(e)
}

const (
	ErrUnexpectedStatus ScrapeError = "unexpected response status"
	ErrNoTable          ScrapeError = "page has no table"
)
