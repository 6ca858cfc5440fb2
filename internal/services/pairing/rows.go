package pairing

import (
	"strings"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/KirkDiggler/debatebot/internal/scrape"
)

const (
	pairingsHeader = "**=== Pairings ===**"
	missingCell    = "none"
)

// toRow reads a table record, tolerating the column names the tournament sites use
func toRow(record map[string]string) *models.PairingRow {
	rawJudge := firstOf(record, "Judge", "Judges")
	if rawJudge == "" {
		rawJudge = missingCell
	}

	var names []string
	for _, line := range strings.Split(strings.ReplaceAll(rawJudge, "\t", ""), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}

	return &models.PairingRow{
		Flight:     record["Flt"],
		Room:       record["Room"],
		Side1:      orMissing(firstOf(record, "1", "Aff")),
		Side2:      orMissing(firstOf(record, "2", "Neg")),
		Judge:      scrape.NormalizeJudge(rawJudge),
		JudgeNames: names,
	}
}

// firstOf returns the first non-empty value among keys
func firstOf(record map[string]string, keys ...string) string {
	for _, key := range keys {
		if v := record[key]; v != "" {
			return v
		}
	}
	return ""
}

func orMissing(s string) string {
	if s == "" {
		return missingCell
	}
	return s
}

// hasRoom reports whether any record carries a Room cell
func hasRoom(records []map[string]string) bool {
	for _, record := range records {
		if _, ok := record["Room"]; ok {
			return true
		}
	}
	return false
}

// FilterRows keeps the rows where schoolCode appears in either side
func FilterRows(rows []*models.PairingRow, schoolCode string) []*models.PairingRow {
	filtered := make([]*models.PairingRow, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(row.Side1, schoolCode) || strings.Contains(row.Side2, schoolCode) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// RenderJudge replaces the judge of a row with profile links. The whole judge text
// is tried first, then each judge name on its own. Names without a link are kept.
func RenderJudge(row *models.PairingRow, links models.JudgeLinks) string {
	if link, ok := links[row.Judge]; ok {
		return link
	}

	if len(row.JudgeNames) == 0 {
		return row.Judge
	}

	rendered := make([]string, 0, len(row.JudgeNames))
	for _, name := range row.JudgeNames {
		if link, ok := links[name]; ok {
			rendered = append(rendered, link)
			continue
		}
		rendered = append(rendered, name)
	}
	return strings.Join(rendered, " ")
}

// BuildBlocks renders a header then one tab separated line and a divider per row
func BuildBlocks(rows []*models.PairingRow, links models.JudgeLinks) []models.Block {
	blocks := make([]models.Block, 0, 1+2*len(rows))
	blocks = append(blocks, models.Section(pairingsHeader))

	for _, row := range rows {
		fields := []string{row.Flight, row.Room, row.Side1, row.Side2, RenderJudge(row, links)}
		blocks = append(blocks,
			models.Section(strings.Join(fields, "\t")),
			models.Divider(),
		)
	}

	return blocks
}
