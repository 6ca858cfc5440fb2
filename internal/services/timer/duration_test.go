package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	testCases := []struct {
		input    string
		expected time.Duration
		err      error
	}{
		{input: "2:30", expected: 150 * time.Second},
		{input: "0:45", expected: 45 * time.Second},
		{input: "1:5", expected: 65 * time.Second},
		{input: " 10:00 ", expected: 10 * time.Minute},
		{input: "3", expected: 3 * time.Minute},
		{input: ":30", expected: 30 * time.Second},
		{input: "1.5", expected: 90 * time.Second},
		{input: "0:0.25", expected: 250 * time.Millisecond},
		{input: "", err: ErrEmptyDuration},
		{input: "abc", err: ErrInvalidDuration},
		{input: "1:xx", err: ErrInvalidDuration},
		{input: "0:00", err: ErrInvalidDuration},
		{input: "-1:00", err: ErrInvalidDuration},
		{input: "NaN", err: ErrInvalidDuration},
		{input: "1:2:3", err: ErrInvalidDuration},
		{input: "200:00", err: ErrDurationTooLong},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, err := ParseDuration(tc.input, 3*time.Hour)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, d)
		})
	}
}

func TestParseDurationWithoutLimit(t *testing.T) {
	d, err := ParseDuration("600:00", 0)
	assert.NoError(t, err)
	assert.Equal(t, 10*time.Hour, d)
}

func TestFormatRemaining(t *testing.T) {
	testCases := []struct {
		input    time.Duration
		expected string
	}{
		// first update of a 2:30 timer
		{input: 150*time.Second - 2*time.Second, expected: "2:28"},
		{input: 5 * time.Second, expected: "0:05"},
		{input: 61900 * time.Millisecond, expected: "1:01"},
		{input: 90 * time.Minute, expected: "90:00"},
		{input: 0, expected: "0:00"},
		{input: -2 * time.Second, expected: "0:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatRemaining(tc.input))
		})
	}
}
