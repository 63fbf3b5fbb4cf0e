package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTimeEntry scans a single time entry from a database row
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var duration sql.NullInt64

	err := scanner.Scan(
		&entry.ID,
		&entry.TaskID,
		&entry.EntryDate,
		&entry.Weekday,
		&entry.StartTime,
		&entry.EndTime,
		&duration,
	)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		minutes := int(duration.Int64)
		entry.DurationMinutes = &minutes
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	return scanAll(rows, ScanTimeEntry)
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	if err := scanner.Scan(&task.ID, &task.TaskName); err != nil {
		return nil, err
	}
	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	return scanAll(rows, ScanTask)
}

// ScanTaskTotal scans a task name with its summed minutes and entry count
func ScanTaskTotal(scanner Scanner) (*TaskTotal, error) {
	total := &TaskTotal{}
	if err := scanner.Scan(&total.TaskName, &total.Minutes, &total.Entries); err != nil {
		return nil, err
	}
	return total, nil
}

// ScanTaskTotals scans multiple task totals from database rows
func ScanTaskTotals(rows Rows) ([]*TaskTotal, error) {
	return scanAll(rows, ScanTaskTotal)
}

func scanAll[T any](rows Rows, scan func(Scanner) (*T, error)) ([]*T, error) {
	var results []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
