package timer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseDuration reads a minutes:seconds duration. Either part may be left out or
// fractional, so "2:30", "2", ":45" and "1.5" are all accepted.
func ParseDuration(text string, maxDuration time.Duration) (time.Duration, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, ErrEmptyDuration
	}

	parts := strings.Split(text, ":")
	if len(parts) > 2 {
		return 0, ErrInvalidDuration
	}

	minutes, err := parsePart(parts[0])
	if err != nil {
		return 0, err
	}

	seconds := 0.0
	if len(parts) == 2 {
		if seconds, err = parsePart(parts[1]); err != nil {
			return 0, err
		}
	}

	ms := 60000*minutes + 1000*seconds
	if ms <= 0 || ms > math.MaxInt64/float64(time.Millisecond) {
		return 0, ErrInvalidDuration
	}

	d := time.Duration(ms * float64(time.Millisecond))
	if maxDuration > 0 && d > maxDuration {
		return 0, ErrDurationTooLong
	}

	return d, nil
}

func parsePart(part string) (float64, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(part, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidDuration
	}

	return v, nil
}

// FormatRemaining shows a duration as minutes:seconds with the seconds zero padded
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d", ms/60000, (ms%60000)/1000)
}
