package wiki

// WikiError is a custom error type for wiki errors
type WikiError string

// Error implements the error interface
func (e WikiError) Error() string {
	return string(e)
}

const (
	ErrNilConfig  WikiError = "config cannot be nil"
	ErrNilFetcher WikiError = "fetcher cannot be nil"
	ErrNoBaseURL  WikiError = "base URL cannot be empty"
	ErrEmptyQuery WikiError = "wiki query cannot be empty"
)
