package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeMarkdown(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "Coach Smith", expected: "Coach Smith"},
		{input: "debate_coach", expected: `debate\_coach`},
		{input: "*star* ~x~ `code` a|b", expected: "\\*star\\* \\~x\\~ \\`code\\` a\\|b"},
		{input: `back\slash`, expected: `back\\slash`},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, EscapeMarkdown(tc.input))
		})
	}
}
