package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDayOverview(t *testing.T) {
	tests := []struct {
		name       string
		day        DayOverview
		difference int
		ratio      float64
	}{
		{"under schedule", DayOverview{ExpectedMinutes: 450, LoggedMinutes: 225}, -225, 0.5},
		{"over schedule", DayOverview{ExpectedMinutes: 390, LoggedMinutes: 429}, 39, 1.1},
		{"day off", DayOverview{ExpectedMinutes: 0, LoggedMinutes: 30}, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.difference, tt.day.Difference())
			assert.InDelta(t, tt.ratio, tt.day.Ratio(), 0.0001)
		})
	}
}

func TestWeekOverview_Totals(t *testing.T) {
	week := WeekOverview{Days: []DayOverview{
		{ExpectedMinutes: 450, LoggedMinutes: 400},
		{ExpectedMinutes: 390, LoggedMinutes: 390},
		{ExpectedMinutes: 0, LoggedMinutes: 60},
	}}

	assert.Equal(t, 840, week.ExpectedMinutes())
	assert.Equal(t, 850, week.LoggedMinutes())
	assert.Equal(t, 10, week.Difference())
}
