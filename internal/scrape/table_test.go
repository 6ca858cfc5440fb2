package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTable(t *testing.T) {
	rows, err := ParseTable(pairingsPage)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "1", rows[0]["Flt"])
	assert.Equal(t, "101", rows[0]["Room"])
	assert.Equal(t, "Lincoln AB", rows[0]["1"])
	assert.Equal(t, "Other CD", rows[0]["2"])
	assert.Equal(t, "Smith,\n\t\t\t\tJane", rows[0]["Judge"])
	assert.Equal(t, "Nobody", rows[2]["Judge"])
}

func TestParseTableFirstTableOnly(t *testing.T) {
	doc := `<table>
		<tr><td>Room</td><td>Aff</td></tr>
		<tr><td>A1</td><td>
			<table><tr><td>nested</td></tr></table>
		</td></tr>
	</table>
	<table><tr><th>Other</th></tr><tr><td>ignored</td></tr></table>`

	rows, err := ParseTable(doc)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "A1", rows[0]["Room"])
	assert.Equal(t, "nested", rows[0]["Aff"])
}

func TestParseTableShortRows(t *testing.T) {
	doc := `<table><tr><th>Room</th><th>Aff</th><th>Neg</th></tr><tr><td>R1</td></tr></table>`

	rows, err := ParseTable(doc)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, ok := rows[0]["Aff"]
	assert.False(t, ok)
}

func TestParseTableNoTable(t *testing.T) {
	_, err := ParseTable("<html><body><p>Pairings not yet released</p></body></html>")
	assert.ErrorIs(t, err, ErrNoTable)

	_, err = ParseTable("")
	assert.ErrorIs(t, err, ErrNoTable)
}
