package types_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/atelier-luz/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestMonthString(t *testing.T) {
	assert.Equal(t, "2024-06", types.NewMonth(2024, 6).String())
	assert.Equal(t, "0001-01", types.Month{}.String())
}

func TestParseMonth(t *testing.T) {
	month, err := types.ParseMonth("2024-06")
	assert.Nil(t, err)
	assert.Equal(t, types.NewMonth(2024, 6), month)

	_, err = types.ParseMonth("June 2024")
	assert.NotNil(t, err)
}

func TestMonthOf(t *testing.T) {
	assert.Equal(t, types.NewMonth(2024, 6), types.MonthOf(time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)))
}

func TestMonthUnmarshalJSON(t *testing.T) {
	var target struct {
		Month types.Month
	}

	tests := []string{
		`{ "month": "2024-05" }`,
		`{ "month": "2024-05-12" }`,
		`{ "month": "2024-05-12T17:59:23+02:00" }`,
	}

	for _, tt := range tests {
		err := json.Unmarshal([]byte(tt), &target)
		assert.Nil(t, err)
		assert.True(t, types.NewMonth(2024, 5).Equal(target.Month), "parsing %s", tt)
	}

	err := json.Unmarshal([]byte(`{ "month": "bogus" }`), &target)
	assert.NotNil(t, err)
}

func TestMonthMarshalJSON(t *testing.T) {
	data, err := json.Marshal(types.NewMonth(2024, 5))
	assert.Nil(t, err)
	assert.Equal(t, `"2024-05"`, string(data))
}

func TestMonthAddDate(t *testing.T) {
	month := types.NewMonth(2024, 11)

	assert.Equal(t, types.NewMonth(2025, 1), month.AddDate(0, 2))
	assert.Equal(t, types.NewMonth(2023, 11), month.AddDate(-1, 0))
}

func TestMonthContains(t *testing.T) {
	month := types.NewMonth(2024, 6)

	assert.True(t, month.Contains(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, month.Contains(time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, month.Contains(time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)))
}
