package models

import (
	"time"
)

// Tournament is the tournament whose pairings /pairings reports
type Tournament struct {
	// URL is the postings page of the tournament
	URL string

	// SetBy is the name of the user who last set the tournament, empty for the default
	SetBy string

	// SetAt is when the tournament was last set
	SetAt time.Time
}
