package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewLogEntry(t *testing.T) {
	start := time.Date(2025, 2, 5, 12, 0, 0, 0, time.Local)
	end := start.Add(15 * time.Minute)

	entry := NewLogEntry("Email triage", start, end)

	assert.Equal(t, LogEntry{
		Date:        "2025-02-05",
		Start:       "12:00",
		Separator:   "-",
		End:         "12:15",
		Task:        "Email triage",
		Minutes:     15,
		HasDuration: true,
	}, entry)
	assert.Equal(t, "2025-02-05 12:00 - 12:15 | Email triage", entry.Line())
}

func TestNewLogEntry_CrossesMidnight(t *testing.T) {
	start := time.Date(2025, 2, 5, 23, 45, 0, 0, time.Local)
	end := start.Add(30 * time.Minute)

	entry := NewLogEntry("Late", start, end)

	assert.Equal(t, "2025-02-05", entry.Date, "date comes from the start")
	assert.Equal(t, -1410, entry.Minutes)
	assert.True(t, entry.IsNegative())
}

func TestLogEntry_Weekday(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2025-01-06", "Monday"},
		{"2025-01-12", "Sunday"},
		{"2025-13-01", ""},
		{"yesterday", ""},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.expected, LogEntry{Date: tt.date}.Weekday())
		})
	}
}

func TestLogEntry_Duration(t *testing.T) {
	assert.Nil(t, LogEntry{Minutes: 10}.Duration())

	d := LogEntry{Minutes: 10, HasDuration: true}.Duration()
	if assert.NotNil(t, d) {
		assert.Equal(t, 10, *d)
	}
}

func TestLogEntry_HasSeparator(t *testing.T) {
	assert.True(t, LogEntry{Separator: "-"}.HasSeparator())
	assert.False(t, LogEntry{Separator: "to"}.HasSeparator())
}

func TestLogEntry_LineDefaultsSeparator(t *testing.T) {
	e := LogEntry{Date: "2025-01-06", Start: "09:00", End: "09:30", Task: "X"}
	assert.Equal(t, "2025-01-06 09:00 - 09:30 | X", e.String())
}
