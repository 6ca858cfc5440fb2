package scrape

import (
	"iter"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	titleMarker     = "title"
	nextRoundMarker = "/postings/round"
	judgeMarker     = "judge.mhtml?judge"
)

var newlineRuns = regexp.MustCompile(`\n+`)

// NormalizeJudge drops tabs and collapses each run of newlines into a single space
func NormalizeJudge(s string) string {
	s = strings.ReplaceAll(s, "\t", "")
	return newlineRuns.ReplaceAllString(s, " ")
}

// WikiTitles yields the entry titles of a case list page in document order.
// A title is the first text inside an h4 whose name attribute contains "title".
// A heading that closes without text yields nothing.
func WikiTitles(doc string) iter.Seq[string] {
	return func(yield func(string) bool) {
		expectingTitle := false

		walk(doc, tokenHandler{
			OpenTag: func(tok html.Token) bool {
				if tok.DataAtom != atom.H4 {
					return true
				}
				if name, ok := attr(tok, "name"); ok {
					expectingTitle = strings.Contains(name, titleMarker)
				}
				return true
			},
			CloseTag: func(tok html.Token) bool {
				if tok.DataAtom == atom.H4 {
					expectingTitle = false
				}
				return true
			},
			// blank text before a nested tag keeps the heading open
			Text: func(text string) bool {
				if !expectingTitle {
					return true
				}
				title := strings.TrimSpace(text)
				if title == "" {
					return true
				}
				expectingTitle = false
				return yield(title)
			},
		})
	}
}

// NextRoundLink returns the href of the first anchor pointing at a round posting
func NextRoundLink(doc string) (string, bool) {
	var next string
	found := false

	walk(doc, tokenHandler{
		OpenTag: func(tok html.Token) bool {
			if tok.DataAtom != atom.A {
				return true
			}
			href, ok := attr(tok, "href")
			if !ok || !strings.Contains(href, nextRoundMarker) {
				return true
			}
			next, found = href, true
			return false
		},
	})

	return next, found
}

// JudgeLinks maps each judge name on a pairings page to the absolute URL of the
// judge's profile, resolving relative hrefs against base. The name is the first
// text inside the anchor; an anchor that closes without text is ignored. A name
// seen twice keeps its last link.
func JudgeLinks(doc string, base *url.URL) map[string]string {
	links := make(map[string]string)
	pending := ""

	walk(doc, tokenHandler{
		OpenTag: func(tok html.Token) bool {
			if tok.DataAtom != atom.A {
				return true
			}
			if href, ok := attr(tok, "href"); ok && strings.Contains(href, judgeMarker) {
				pending = href
			}
			return true
		},
		CloseTag: func(tok html.Token) bool {
			if tok.DataAtom == atom.A {
				pending = ""
			}
			return true
		},
		Text: func(text string) bool {
			if pending == "" {
				return true
			}
			name := strings.TrimSpace(NormalizeJudge(text))
			if name == "" {
				return true
			}
			links[name] = Resolve(base, pending)
			pending = ""
			return true
		},
	})

	return links
}

// Resolve returns href made absolute against base. Unparseable hrefs are
// returned untouched.
func Resolve(base *url.URL, href string) string {
	if base == nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
