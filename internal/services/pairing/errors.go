package pairing

// PairingError is a custom error type for pairing errors
type PairingError string

// Error implements the error interface
func (e PairingError) Error() string {
	return string(e)
}

const (
	ErrNilConfig            PairingError = "config cannot be nil"
	ErrNilFetcher           PairingError = "fetcher cannot be nil"
	ErrNilTournamentRepo    PairingError = "tournament repository cannot be nil"
	ErrInvalidBaseURL       PairingError = "base URL is invalid"
	ErrPairingsUnavailable  PairingError = "no pairings are available"
	ErrMissingRoomColumn    PairingError = "pairings table has no Room column"
	ErrInvalidTournamentURL PairingError = "tournament URL must be a postings page"
)
