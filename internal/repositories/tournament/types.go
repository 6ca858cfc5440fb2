package tournament

// SetTournamentInput contains parameters for replacing the tournament
type SetTournamentInput struct {
	URL   string
	SetBy string
}
