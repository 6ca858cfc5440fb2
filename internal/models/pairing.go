package models

// PairingRow is one room of a round, as read from a pairings table
type PairingRow struct {
	// Flight is empty when the table has no flight column
	Flight string

	Room string

	// Side1 is the affirmative (or first listed) entry
	Side1 string

	// Side2 is the negative (or second listed) entry
	Side2 string

	// Judge holds every judge name of the room, normalized to a single line
	Judge string

	// JudgeNames splits the judge cell into one name per line of the page
	JudgeNames []string
}

// JudgeLinks maps a judge display name to its rendered profile link
type JudgeLinks map[string]string
