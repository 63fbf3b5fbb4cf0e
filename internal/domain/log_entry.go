package domain

import (
	"fmt"
	"time"

	"wogger/internal/timecalc"
)

// Separator is the literal token between start and end time in a log line
const Separator = "-"

// UnspecifiedTask is logged when the user submits a prompt without a task name
const UnspecifiedTask = "Unspecified"

// LogEntry is one parsed line of time_log.txt.
// Date, Start, Separator and End hold the tokens as written. Minutes is
// End - Start and only meaningful when HasDuration is true.
type LogEntry struct {
	Date        string
	Start       string
	Separator   string
	End         string
	Task        string
	Minutes     int
	HasDuration bool
}

// NewLogEntry builds an entry from structured timestamps. The date comes from
// start and the duration is the minute-of-day difference, so an interval
// crossing midnight yields a negative duration.
func NewLogEntry(task string, start, end time.Time) LogEntry {
	entry := LogEntry{
		Date:      timecalc.FormatDate(start),
		Start:     timecalc.FormatClock(start),
		Separator: Separator,
		End:       timecalc.FormatClock(end),
		Task:      task,
	}
	if minutes, err := timecalc.MinutesBetween(entry.Start, entry.End); err == nil {
		entry.Minutes = minutes
		entry.HasDuration = true
	}
	return entry
}

// Line renders the entry in the log file grammar
func (e LogEntry) Line() string {
	sep := e.Separator
	if sep == "" {
		sep = Separator
	}
	return fmt.Sprintf("%s %s %s %s | %s", e.Date, e.Start, sep, e.End, e.Task)
}

// Weekday returns the English weekday name of Date, or "" if it does not parse
func (e LogEntry) Weekday() string {
	d, err := time.Parse(timecalc.DateLayout, e.Date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

// HasSeparator reports whether the separator token is the literal dash
func (e LogEntry) HasSeparator() bool {
	return e.Separator == Separator
}

// Duration returns the minutes as a pointer, nil when the times did not parse
func (e LogEntry) Duration() *int {
	if !e.HasDuration {
		return nil
	}
	minutes := e.Minutes
	return &minutes
}

// IsNegative reports whether the entry has a duration below zero
func (e LogEntry) IsNegative() bool {
	return e.HasDuration && e.Minutes < 0
}

// String returns the log line for display purposes.
func (e LogEntry) String() string {
	return e.Line()
}
