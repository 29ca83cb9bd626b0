package finance

import (
	"time"

	"github.com/atelier-luz/backend/internal/types"
)

// PeriodType selects the reporting window.
type PeriodType string

const (
	PeriodAll    PeriodType = "all"
	PeriodYear   PeriodType = "year"
	PeriodMonth  PeriodType = "month"
	PeriodCustom PeriodType = "custom"
)

// Period is a user-selected reporting window. Year and month compare
// against the current real-world date; custom bounds are inclusive and a
// bound left unset imposes no constraint on that side.
type Period struct {
	Type  PeriodType `json:"type" form:"type" example:"custom"`
	Start string     `json:"start" form:"start" example:"2024-01-01"` // Inclusive lower bound at 00:00
	End   string     `json:"end" form:"end" example:"2024-01-31"`     // Inclusive upper bound at 23:59:59.999
}

// Matches reports whether a calendar-date string falls into the period,
// evaluated against the now instant. An unparsable date never matches; the
// record is excluded, not errored.
func (p Period) Matches(date string, now time.Time) bool {
	if p.Type == "" || p.Type == PeriodAll {
		return true
	}

	t, err := types.ParseDay(date)
	if err != nil {
		return false
	}

	switch p.Type {
	case PeriodYear:
		return t.Year() == now.Year()
	case PeriodMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	case PeriodCustom:
		// An unparsable bound behaves like an unset one
		if p.Start != "" {
			if start, err := types.ParseDay(p.Start); err == nil {
				if t.Before(types.Midnight(start)) {
					return false
				}
			}
		}

		if p.End != "" {
			if end, err := types.ParseDay(p.End); err == nil {
				endOfDay := types.Midnight(end).Add(24*time.Hour - time.Millisecond)
				if t.After(endOfDay) {
					return false
				}
			}
		}

		return true
	}

	return false
}
