package sqlite

// Task is a distinct task name in an export database
type Task struct {
	ID       int64
	TaskName string
}

// TimeEntry is one exported log line.
// DurationMinutes is nil when the clock times could not be parsed.
type TimeEntry struct {
	ID              int64
	TaskID          int64
	EntryDate       string
	Weekday         string
	StartTime       string
	EndTime         string
	DurationMinutes *int
}

// TaskTotal is the summed duration of all entries for one task
type TaskTotal struct {
	TaskName string
	Minutes  int
	Entries  int
}
