package scrape

import (
	"net/url"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const caseListPage = `<html><body>
<h4 name="entry_title_1">1AC - Kant</h4>
<p>some summary</p>
<h4>unnamed heading</h4>
<h4 name="entry_author">Not a title</h4>
<h4 name="entry_title_2">
	<span>NC - Util &amp; Stuff</span>
</h4>
<h4 name="entry_title_3"></h4>
<p>Trailing text</p>
</body></html>`

func TestWikiTitles(t *testing.T) {
	titles := slices.Collect(WikiTitles(caseListPage))

	assert.Equal(t, []string{"1AC - Kant", "NC - Util & Stuff"}, titles)
}

func TestWikiTitlesEmptyHeadingTakesNoText(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		expected []string
	}{
		{
			name: "empty heading",
			doc:  "<h4 name=\"entry_title_1\"></h4>\n<p>Cites: Kant 1785, Korsgaard 1996</p>",
		},
		{
			name:     "blank heading",
			doc:      "<h4 name=\"entry_title_1\">  </h4><p>Cites</p><h4 name=\"entry_title_2\">2NR</h4>",
			expected: []string{"2NR"},
		},
		{
			name:     "nested title",
			doc:      "<h4 name=\"entry_title_1\">\n\t<b>\n</b><i>1AC</i></h4>",
			expected: []string{"1AC"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, slices.Collect(WikiTitles(tc.doc)))
		})
	}
}

func TestWikiTitlesStopsEarly(t *testing.T) {
	var got []string
	for title := range WikiTitles(caseListPage) {
		got = append(got, title)
		break
	}
	assert.Equal(t, []string{"1AC - Kant"}, got)
}

func TestWikiTitlesEmpty(t *testing.T) {
	assert.Empty(t, slices.Collect(WikiTitles("<html><body><h4>nothing</h4></body></html>")))
	assert.Empty(t, slices.Collect(WikiTitles("")))
}

func TestNextRoundLink(t *testing.T) {
	testCases := []struct {
		name     string
		doc      string
		expected string
		found    bool
	}{
		{
			name: "first match wins",
			doc: `<a name="top">no href</a>
				<a href="/index/tourn/index.mhtml">home</a>
				<a href="/index/tourn/postings/round.mhtml?tourn_id=1&amp;round_id=2">Round 2</a>
				<a href="/index/tourn/postings/round.mhtml?tourn_id=1&amp;round_id=3">Round 3</a>`,
			expected: "/index/tourn/postings/round.mhtml?tourn_id=1&round_id=2",
			found:    true,
		},
		{
			name:  "anchors without href are skipped",
			doc:   `<a>one</a><a id="x">two</a>`,
			found: false,
		},
		{
			name:  "no anchors",
			doc:   `<p>/postings/round</p>`,
			found: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			link, found := NextRoundLink(tc.doc)
			assert.Equal(t, tc.found, found)
			assert.Equal(t, tc.expected, link)
		})
	}
}

const pairingsPage = `<html><body>
<table>
	<thead>
		<tr><th>Flt</th><th>Room</th><th>1</th><th>2</th><th>Judge</th></tr>
	</thead>
	<tbody>
		<tr>
			<td>1</td><td>101</td><td>Lincoln AB</td><td>Other CD</td>
			<td><a href="judge.mhtml?judge_id=11&amp;tourn_id=1">
				Smith,
				Jane
			</a></td>
		</tr>
		<tr>
			<td>2</td><td>102</td><td>Third EF</td><td>Fourth GH</td>
			<td><a href="judge.mhtml?judge_id=12&amp;tourn_id=1">Doe, John</a></td>
		</tr>
		<tr>
			<td>1</td><td>103</td><td>Fifth IJ</td><td>Lincoln KL</td>
			<td><a>Nobody</a></td>
		</tr>
	</tbody>
</table>
</body></html>`

func TestJudgeLinks(t *testing.T) {
	base, err := url.Parse("https://www.tabroom.com/index/tourn/postings/round.mhtml?tourn_id=1&round_id=2")
	require.NoError(t, err)

	links := JudgeLinks(pairingsPage, base)

	assert.Equal(t, map[string]string{
		"Smith, Jane": "https://www.tabroom.com/index/tourn/postings/judge.mhtml?judge_id=11&tourn_id=1",
		"Doe, John":   "https://www.tabroom.com/index/tourn/postings/judge.mhtml?judge_id=12&tourn_id=1",
	}, links)
}

func TestJudgeLinksIsRepeatable(t *testing.T) {
	base, err := url.Parse("https://www.tabroom.com/index/tourn/postings/round.mhtml")
	require.NoError(t, err)

	assert.Equal(t, JudgeLinks(pairingsPage, base), JudgeLinks(pairingsPage, base))
}

func TestJudgeLinksLastWriteWins(t *testing.T) {
	doc := `<a href="judge.mhtml?judge_id=1">Same Name</a><a href="judge.mhtml?judge_id=2">Same Name</a>`

	links := JudgeLinks(doc, nil)

	assert.Equal(t, map[string]string{"Same Name": "judge.mhtml?judge_id=2"}, links)
}

func TestJudgeLinksEmptyAnchorTakesNoText(t *testing.T) {
	doc := "<tr><td><a href=\"judge.mhtml?judge_id=9\"> </a></td>\n<td>Room 204</td></tr>" +
		"<tr><td><a href=\"judge.mhtml?judge_id=10\"></a></td><td>Room 205</td></tr>"

	assert.Empty(t, JudgeLinks(doc, nil))
}

func TestJudgeLinksNestedName(t *testing.T) {
	doc := "<a href=\"judge.mhtml?judge_id=9\">\n\t<span>Lee, Ann</span>\n</a><span>Room 204</span>"

	assert.Equal(t, map[string]string{"Lee, Ann": "judge.mhtml?judge_id=9"}, JudgeLinks(doc, nil))
}

func TestJudgeLinksNeedsAnchorPerName(t *testing.T) {
	doc := `<a href="judge.mhtml?judge_id=1">First</a><span>Second</span>`

	links := JudgeLinks(doc, nil)

	assert.Len(t, links, 1)
	assert.Contains(t, links, "First")
}

func TestNormalizeJudge(t *testing.T) {
	assert.Equal(t, "Smith, Jane", NormalizeJudge("Smith,\n\t\tJane"))
	assert.Equal(t, "A B C", NormalizeJudge("A\n\n\nB\nC"))
	assert.Equal(t, " padded ", NormalizeJudge("\t\n\tpadded\n"))
}
