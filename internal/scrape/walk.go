package scrape

import (
	"strings"

	"golang.org/x/net/html"
)

// tokenHandler receives the events of a single pass over a document.
// Returning false from any callback ends the pass.
type tokenHandler struct {
	OpenTag  func(tok html.Token) bool
	CloseTag func(tok html.Token) bool
	Text     func(text string) bool
}

// walk tokenizes doc once, reporting tags and text with entities decoded.
// Comments and doctypes are skipped.
func walk(doc string, h tokenHandler) {
	z := html.NewTokenizer(strings.NewReader(doc))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF, or the rest of the document is unreadable
			return
		case html.StartTagToken, html.SelfClosingTagToken:
			if h.OpenTag != nil && !h.OpenTag(z.Token()) {
				return
			}
		case html.EndTagToken:
			if h.CloseTag != nil && !h.CloseTag(z.Token()) {
				return
			}
		case html.TextToken:
			if h.Text != nil && !h.Text(string(z.Text())) {
				return
			}
		}
	}
}

// attr looks up an attribute of tok. Tags missing the attribute report false
// instead of an empty value.
func attr(tok html.Token, key string) (string, bool) {
	for _, a := range tok.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}
