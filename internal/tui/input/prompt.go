// Package input parses what the user types into the TUI prompt.
package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/javiermolinar/nightshift/internal/clock"
)

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("nothing entered")

// Entry is a parsed prompt line: either an absolute time or a relative offset.
type Entry struct {
	Time     clock.TimeOfDay
	Offset   int
	Relative bool
}

// Proposed returns the minute value the entry asks for, given the knob's current time.
// The result is not normalized.
func (e Entry) Proposed(current clock.TimeOfDay) int {
	if e.Relative {
		return int(current) + e.Offset
	}
	return int(e.Time)
}

// ParseEntry accepts "HH:MM", "+N"/"-N" minutes, or "+Nh"/"-Nh" hours.
func ParseEntry(s string) (Entry, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Entry{}, ErrEmpty
	}

	if s[0] == '+' || s[0] == '-' {
		sign := 1
		if s[0] == '-' {
			sign = -1
		}
		body := s[1:]
		unit := 1
		if strings.HasSuffix(body, "h") {
			unit = 60
			body = strings.TrimSuffix(body, "h")
		} else {
			body = strings.TrimSuffix(body, "m")
		}
		n, err := strconv.Atoi(body)
		if err != nil || n < 0 {
			return Entry{}, fmt.Errorf("invalid offset %q", s)
		}
		return Entry{Offset: sign * n * unit, Relative: true}, nil
	}

	t, err := clock.Parse(s)
	if err != nil {
		return Entry{}, err
	}
	return Entry{Time: t}, nil
}
