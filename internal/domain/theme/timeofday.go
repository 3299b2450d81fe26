package theme

import (
	"fmt"
	"strings"
	"time"
)

const day = 24 * time.Hour

// TimeOfDay is a wall-clock offset from local midnight. It carries no date or zone.
type TimeOfDay time.Duration

// NewTimeOfDay builds a TimeOfDay from clock fields.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(minute)*time.Minute +
		time.Duration(second)*time.Second)
}

// ParseTimeOfDay parses "15:04" or "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{"15:04:05", "15:04"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()), nil
		}
	}
	return 0, fmt.Errorf("invalid time of day %q: expected HH:MM or HH:MM:SS", s)
}

// TimeOfDayOf returns the wall-clock part of t in t's location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second()) + TimeOfDay(t.Nanosecond())
}

// On anchors d to the calendar date of date, in date's location.
func (d TimeOfDay) On(date time.Time) time.Time {
	dur := time.Duration(d)
	y, m, dd := date.Date()
	return time.Date(y, m, dd,
		int(dur/time.Hour), int(dur%time.Hour/time.Minute), int(dur%time.Minute/time.Second),
		int(dur%time.Second), date.Location())
}

// Valid reports whether d lies within a single day.
func (d TimeOfDay) Valid() bool {
	return d >= 0 && time.Duration(d) < day
}

func (d TimeOfDay) String() string {
	dur := time.Duration(d)
	return fmt.Sprintf("%02d:%02d:%02d",
		int(dur/time.Hour), int(dur%time.Hour/time.Minute), int(dur%time.Minute/time.Second))
}

// Midnight returns the start of t's calendar day in t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
