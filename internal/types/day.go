package types

import (
	"fmt"
	"strings"
	"time"
)

// dayLayouts are the formats accepted for calendar-date strings, in the
// order they are tried. Records written by older versions of the frontend
// carry full RFC3339 timestamps, newer ones a plain date.
var dayLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseDay parses a calendar-date string.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, layout := range dayLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("parsing %q as date failed", s)
}

// DayKey formats a time as a YYYY-MM-DD bucket key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether two instants fall on the same calendar date.
// The comparison is on dates, not timestamps.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Midnight truncates an instant to 00:00 on its calendar date.
func Midnight(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}
