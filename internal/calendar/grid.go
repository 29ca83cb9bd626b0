package calendar

import (
	"time"

	"github.com/atelier-luz/backend/internal/types"
)

// Cell is one cell of the month grid. Leading cells before the first day of
// the month carry Day 0 so the grid starts on the right weekday column.
type Cell struct {
	Day   int    `json:"day" example:"15"` // 0 for a leading blank cell
	Date  string `json:"date,omitempty" example:"2024-06-15"`
	Today bool   `json:"today,omitempty"`
}

// Grid builds the cells for a month: one blank per weekday before day 1
// (weeks start on Sunday), then one cell per day. The now instant is only
// used for the today marker.
func Grid(month types.Month, now time.Time) []Cell {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}

	for day := 1; day <= days; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.UTC)
		cells = append(cells, Cell{
			Day:   day,
			Date:  types.DayKey(date),
			Today: types.SameDay(date, now),
		})
	}

	return cells
}
