package domain

import (
	"math"
	"regexp"
	"strconv"
	"time"

	"go.trai.ch/zerr"
)

var windowPattern = regexp.MustCompile(`^(\d+)\s*(s|m|min|h)$`)

// ParseWindow parses a settle window such as "20s", "5m", "5 min" or "1h".
// Anything outside <digits><optional whitespace><s|m|min|h> fails with ErrInvalidDurationFormat.
func ParseWindow(s string) (time.Duration, error) {
	m := windowPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, invalidWindow(s)
	}

	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, invalidWindow(s)
	}

	var unit time.Duration
	switch m[2] {
	case "s":
		unit = time.Second
	case "m", "min":
		unit = time.Minute
	case "h":
		unit = time.Hour
	default:
		return 0, invalidWindow(s)
	}

	if n > math.MaxInt64/int64(unit) {
		return 0, invalidWindow(s)
	}

	return time.Duration(n) * unit, nil
}

func invalidWindow(s string) error {
	return zerr.With(zerr.Wrap(ErrInvalidDurationFormat, "cannot parse settle window"), "window", s)
}
