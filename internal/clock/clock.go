// Package clock provides time-of-day arithmetic on a circular 24-hour day.
package clock

import (
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay is the length of the circular day.
const MinutesPerDay = 24 * 60

// Evening is 18:00, the point where the slider bar starts.
const Evening TimeOfDay = 18 * 60

// ErrInvalidTime is returned when a string is not a valid HH:MM time.
var ErrInvalidTime = errors.New("time must be in HH:MM format between 00:00 and 23:59")

// TimeOfDay is a number of minutes since midnight, always in [0, 1440).
type TimeOfDay int

// Normalize wraps any minute count onto the day.
func Normalize(m int) TimeOfDay {
	m %= MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return TimeOfDay(m)
}

// Forward returns the minutes needed to go from `from` to `to` moving forward in time.
func Forward(from, to TimeOfDay) int {
	return int(Normalize(int(to) - int(from)))
}

// Distance returns the shorter of the two gaps between a and b on the ring.
func Distance(a, b TimeOfDay) int {
	return min(Forward(a, b), Forward(b, a))
}

// Add returns t moved by delta minutes, wrapping around midnight.
func (t TimeOfDay) Add(delta int) TimeOfDay {
	return Normalize(int(t) + delta)
}

// Hour returns the hour component.
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute returns the minute component.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String renders t as HH:MM.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Format renders t either as "18:00" or as "6:00 PM".
func (t TimeOfDay) Format(use24h bool) string {
	if use24h {
		return t.String()
	}
	hour := t.Hour()
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), suffix)
}

// Parse converts "HH:MM" to a TimeOfDay.
func Parse(s string) (TimeOfDay, error) {
	if len(s) != 5 {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidTime, s)
	}
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w, got %q", ErrInvalidTime, s)
	}
	return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
}

// MustParse is like Parse but panics on invalid input. Intended for constants and tests.
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}
