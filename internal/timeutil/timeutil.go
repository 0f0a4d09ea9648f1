package timeutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseAge parses a Go duration, or a whole number of days ("3d") or
// weeks ("2w").
func ParseAge(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty duration")
	}
	if d, err := time.ParseDuration(s); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("negative duration: %s", s)
		}
		return d, nil
	}

	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}
	n, err := strconv.ParseInt(s[:len(s)-1], 10, 64)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid duration: %s", s)
	}

	switch s[len(s)-1] {
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit in %s", s)
	}
}

// ParseSince turns an RFC3339 timestamp or an age such as "36h" or "2d"
// into an absolute cutoff before now.
func ParseSince(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	age, err := ParseAge(strings.TrimPrefix(s, "-"))
	if err != nil {
		return time.Time{}, err
	}
	return now.Add(-age), nil
}
