package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func sampleEntries() []LogEntry {
	return []LogEntry{
		{Date: "2025-01-06", Separator: "-", Task: "A", Minutes: 30, HasDuration: true},
		{Date: "2025-01-06", Separator: "to", Task: "B", Minutes: 15, HasDuration: true},
		{Date: "2025-01-07", Separator: "-", Task: "A", HasDuration: false},
		{Date: "2025-01-07", Separator: "-", Task: "a", Minutes: 45, HasDuration: true},
	}
}

func TestEntryFilter_Filter(t *testing.T) {
	tests := []struct {
		name     string
		filter   EntryFilter
		expected []string
	}{
		{"empty filter matches all", EntryFilter{}, []string{"A", "B", "A", "a"}},
		{"by date", EntryFilter{Date: strPtr("2025-01-06")}, []string{"A", "B"}},
		{"task is case-sensitive", EntryFilter{Task: strPtr("A")}, []string{"A", "A"}},
		{"require duration", EntryFilter{RequireDuration: true}, []string{"A", "B", "a"}},
		{"require separator", EntryFilter{RequireSeparator: true}, []string{"A", "A", "a"}},
		{"combined", EntryFilter{Date: strPtr("2025-01-07"), RequireDuration: true}, []string{"a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tasks []string
			for _, e := range tt.filter.Filter(sampleEntries()) {
				tasks = append(tasks, e.Task)
			}
			assert.Equal(t, tt.expected, tasks)
		})
	}
}

func TestSumMinutes(t *testing.T) {
	assert.Equal(t, 90, SumMinutes(sampleEntries()))
	assert.Equal(t, 0, SumMinutes(nil))
}
