package calendar_test

import (
	"testing"
	"time"

	"github.com/atelier-luz/backend/internal/calendar"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/atelier-luz/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandNoServiceLines(t *testing.T) {
	contract := models.Contract{
		ClientName: "Ana Souza",
		EventDate:  "2024-06-15",
		EventTime:  "14:30",
		Location:   "Estúdio Central",
	}

	events := calendar.Expand(contract)

	require.Len(t, events, 1)
	assert.Equal(t, "Ana Souza", events[0].ClientName)
	assert.Equal(t, "2024-06-15", events[0].Date)
	assert.Equal(t, "14:30", events[0].Time)
	assert.Equal(t, models.StatusPendingApproval, events[0].Status)
}

func TestExpandPerLineOverrides(t *testing.T) {
	contract := models.Contract{
		ClientName: "Ana Souza",
		EventDate:  "2024-06-15",
		EventTime:  "14:30",
		Location:   "Estúdio Central",
		Services: models.ServiceLines{
			{Name: "Ensaio Gestante", Price: "500"},
			{Name: "Ensaio Newborn", Price: "500", EventDate: "2024-07-20", EventTime: "09:00", Location: "Domicílio"},
		},
	}

	events := calendar.Expand(contract)
	require.Len(t, events, 2)

	// First line inherits the contract values
	assert.Equal(t, "2024-06-15", events[0].Date)
	assert.Equal(t, "14:30", events[0].Time)
	assert.Equal(t, "Estúdio Central", events[0].Location)

	// Second line's own values win
	assert.Equal(t, "2024-07-20", events[1].Date)
	assert.Equal(t, "09:00", events[1].Time)
	assert.Equal(t, "Domicílio", events[1].Location)
}

func TestExpandAllCount(t *testing.T) {
	contracts := []models.Contract{
		{ClientName: "A", EventDate: "2024-06-01"},
		{ClientName: "B", EventDate: "2024-06-02", Services: models.ServiceLines{{Price: "1"}, {Price: "2"}, {Price: "3"}}},
	}

	events := calendar.ExpandAll(contracts)
	assert.Len(t, events, 4)
}

func TestBucketOrdering(t *testing.T) {
	events := []calendar.Event{
		{ClientName: "Carla", Date: "2024-06-15", Time: "16:00"},
		{ClientName: "Beatriz", Date: "2024-06-15", Time: "09:30"},
		{ClientName: "Ana", Date: "2024-06-15", Time: "09:30"},
		{ClientName: "Diana", Date: "2024-06-15"}, // no time sorts first
		{ClientName: "Eva", Date: "2024-06-16", Time: "10:00"},
	}

	buckets := calendar.Bucket(events)

	require.Len(t, buckets, 2)
	day := buckets["2024-06-15"]
	require.Len(t, day, 4)

	assert.Equal(t, "Diana", day[0].ClientName)
	assert.Equal(t, "Ana", day[1].ClientName)
	assert.Equal(t, "Beatriz", day[2].ClientName)
	assert.Equal(t, "Carla", day[3].ClientName)

	assert.Len(t, buckets["2024-06-16"], 1)
}

func TestGrid(t *testing.T) {
	// June 2024 starts on a Saturday
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	cells := calendar.Grid(types.NewMonth(2024, 6), now)

	require.Len(t, cells, 6+30)

	for i := 0; i < 6; i++ {
		assert.Equal(t, 0, cells[i].Day, "cell %d must be a leading blank", i)
	}

	assert.Equal(t, 1, cells[6].Day)
	assert.Equal(t, "2024-06-01", cells[6].Date)
	assert.Equal(t, 30, cells[len(cells)-1].Day)

	var today []calendar.Cell
	for _, cell := range cells {
		if cell.Today {
			today = append(today, cell)
		}
	}
	require.Len(t, today, 1)
	assert.Equal(t, 15, today[0].Day)
}

func TestGridNoLeadingBlanks(t *testing.T) {
	// September 2024 starts on a Sunday
	cells := calendar.Grid(types.NewMonth(2024, 9), time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	require.Len(t, cells, 30)
	assert.Equal(t, 1, cells[0].Day)

	for _, cell := range cells {
		assert.False(t, cell.Today)
	}
}
