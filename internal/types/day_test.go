package types_test

import (
	"testing"
	"time"

	"github.com/atelier-luz/backend/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2024-06-15", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-06-15T14:30:00Z", time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"2024-06-15T14:30:00", time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)},
		{"15/06/2024", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{" 2024-06-15 ", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parsed, err := types.ParseDay(tt.input)
			assert.Nil(t, err)
			assert.True(t, tt.expected.Equal(parsed), "parsing %q returned %s", tt.input, parsed)
		})
	}

	for _, input := range []string{"", "bogus", "15.06.2024"} {
		_, err := types.ParseDay(input)
		assert.NotNil(t, err, "parsing %q must fail", input)
	}
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2024-06-15", types.DayKey(time.Date(2024, 6, 15, 23, 59, 0, 0, time.UTC)))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	b := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)

	assert.True(t, types.SameDay(a, b))
	assert.False(t, types.SameDay(a, b.Add(time.Second)))
}

func TestMidnight(t *testing.T) {
	truncated := types.Midnight(time.Date(2024, 6, 15, 14, 30, 17, 12, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), truncated)
}
