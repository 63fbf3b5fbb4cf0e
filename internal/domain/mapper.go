package domain

import (
	"wogger/internal/repository/sqlite"
)

// ExportRecord is the normalized row written by every export format
type ExportRecord struct {
	Date      string `json:"date"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Duration  *int   `json:"duration"`
	Task      string `json:"task"`
}

// ExportRecordMapper converts log entries to export records and database rows.
type ExportRecordMapper struct{}

// NewExportRecordMapper creates a new ExportRecordMapper instance.
func NewExportRecordMapper() *ExportRecordMapper {
	return &ExportRecordMapper{}
}

// FromLogEntry converts a parsed line into an export record.
func (m *ExportRecordMapper) FromLogEntry(entry LogEntry) ExportRecord {
	return ExportRecord{
		Date:      entry.Date,
		Day:       entry.Weekday(),
		StartTime: entry.Start,
		EndTime:   entry.End,
		Duration:  entry.Duration(),
		Task:      entry.Task,
	}
}

// FromLogEntries converts entries in order.
func (m *ExportRecordMapper) FromLogEntries(entries []LogEntry) []ExportRecord {
	records := make([]ExportRecord, len(entries))
	for i, e := range entries {
		records[i] = m.FromLogEntry(e)
	}
	return records
}

// ToDatabase converts an export record to a database TimeEntry. The task
// is linked by name when the rows are saved.
func (m *ExportRecordMapper) ToDatabase(record ExportRecord) *sqlite.TimeEntry {
	return &sqlite.TimeEntry{
		EntryDate:       record.Date,
		Weekday:         record.Day,
		StartTime:       record.StartTime,
		EndTime:         record.EndTime,
		DurationMinutes: record.Duration,
	}
}

// FromDatabase converts a database TimeEntry back to an export record.
func (m *ExportRecordMapper) FromDatabase(entry sqlite.TimeEntry, taskName string) ExportRecord {
	return ExportRecord{
		Date:      entry.EntryDate,
		Day:       entry.Weekday,
		StartTime: entry.StartTime,
		EndTime:   entry.EndTime,
		Duration:  entry.DurationMinutes,
		Task:      taskName,
	}
}

// ToDatabaseSlice converts records to database rows plus the parallel task names.
func (m *ExportRecordMapper) ToDatabaseSlice(records []ExportRecord) ([]*sqlite.TimeEntry, []string) {
	entries := make([]*sqlite.TimeEntry, len(records))
	names := make([]string, len(records))
	for i, r := range records {
		entries[i] = m.ToDatabase(r)
		names[i] = r.Task
	}
	return entries, names
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	ExportRecord *ExportRecordMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		ExportRecord: NewExportRecordMapper(),
	}
}
