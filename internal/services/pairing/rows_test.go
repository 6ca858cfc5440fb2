package pairing

import (
	"testing"

	"github.com/KirkDiggler/debatebot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestToRow(t *testing.T) {
	testCases := []struct {
		name     string
		record   map[string]string
		expected *models.PairingRow
	}{
		{
			name:   "numbered sides with flight",
			record: map[string]string{"Flt": "2", "Room": "101", "1": "Lincoln AB", "2": "Other CD", "Judge": "Smith, Jane"},
			expected: &models.PairingRow{
				Flight: "2", Room: "101", Side1: "Lincoln AB", Side2: "Other CD",
				Judge: "Smith, Jane", JudgeNames: []string{"Smith, Jane"},
			},
		},
		{
			name:   "aff and neg without flight",
			record: map[string]string{"Room": "A1", "Aff": "Lincoln AB", "Neg": "Other CD", "Judges": "Smith, Jane\n\t\tDoe, John"},
			expected: &models.PairingRow{
				Room: "A1", Side1: "Lincoln AB", Side2: "Other CD",
				Judge: "Smith, Jane Doe, John", JudgeNames: []string{"Smith, Jane", "Doe, John"},
			},
		},
		{
			name:   "numbered columns win over aff and neg",
			record: map[string]string{"Room": "B2", "1": "One", "Aff": "Aff", "2": "", "Neg": "Neg"},
			expected: &models.PairingRow{
				Room: "B2", Side1: "One", Side2: "Neg",
				Judge: "none", JudgeNames: []string{"none"},
			},
		},
		{
			name:   "missing sides",
			record: map[string]string{"Room": "C3"},
			expected: &models.PairingRow{
				Room: "C3", Side1: "none", Side2: "none",
				Judge: "none", JudgeNames: []string{"none"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, toRow(tc.record))
		})
	}
}

func TestFilterRows(t *testing.T) {
	rows := []*models.PairingRow{
		{Room: "1", Side1: "Lincoln AB", Side2: "Other"},
		{Room: "2", Side1: "Other", Side2: "Lincoln CD"},
		{Room: "3", Side1: "Other", Side2: "Another"},
	}

	filtered := FilterRows(rows, "Lincoln")
	assert.Len(t, filtered, 2)
	assert.Equal(t, "1", filtered[0].Room)
	assert.Equal(t, "2", filtered[1].Room)

	assert.Len(t, FilterRows(rows, ""), 3)
	assert.Empty(t, FilterRows(rows, "lincoln"))
}

func TestRenderJudge(t *testing.T) {
	links := models.JudgeLinks{
		"Smith, Jane":     "[Smith, Jane](https://j/1)",
		"Doe, John":       "[Doe, John](https://j/2)",
		"Panel A Panel B": "[Panel](https://j/3)",
	}

	testCases := []struct {
		name     string
		row      *models.PairingRow
		expected string
	}{
		{
			name:     "whole text match",
			row:      &models.PairingRow{Judge: "Smith, Jane", JudgeNames: []string{"Smith, Jane"}},
			expected: "[Smith, Jane](https://j/1)",
		},
		{
			name:     "whole text match beats per name",
			row:      &models.PairingRow{Judge: "Panel A Panel B", JudgeNames: []string{"Panel A", "Panel B"}},
			expected: "[Panel](https://j/3)",
		},
		{
			name:     "each name looked up",
			row:      &models.PairingRow{Judge: "Smith, Jane Doe, John", JudgeNames: []string{"Smith, Jane", "Doe, John"}},
			expected: "[Smith, Jane](https://j/1) [Doe, John](https://j/2)",
		},
		{
			name:     "unmatched names pass through",
			row:      &models.PairingRow{Judge: "Nobody Doe, John", JudgeNames: []string{"Nobody", "Doe, John"}},
			expected: "Nobody [Doe, John](https://j/2)",
		},
		{
			name:     "no names",
			row:      &models.PairingRow{Judge: "none"},
			expected: "none",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RenderJudge(tc.row, links))
		})
	}
}

func TestBuildBlocksEmpty(t *testing.T) {
	assert.Equal(t, []models.Block{models.Section("**=== Pairings ===**")}, BuildBlocks(nil, nil))
}
