package domain

// EntryFilter selects entries from a log scan. Nil fields match everything.
type EntryFilter struct {
	Date *string
	Task *string
	// RequireDuration drops entries whose clock times did not parse.
	RequireDuration bool
	// RequireSeparator drops entries whose separator token is not "-".
	RequireSeparator bool
}

// Matches reports whether entry passes the filter. Task comparison is case-sensitive.
func (f EntryFilter) Matches(entry LogEntry) bool {
	if f.Date != nil && entry.Date != *f.Date {
		return false
	}
	if f.Task != nil && entry.Task != *f.Task {
		return false
	}
	if f.RequireDuration && !entry.HasDuration {
		return false
	}
	if f.RequireSeparator && !entry.HasSeparator() {
		return false
	}
	return true
}

// Filter returns the entries matching f, preserving order
func (f EntryFilter) Filter(entries []LogEntry) []LogEntry {
	matched := make([]LogEntry, 0, len(entries))
	for _, e := range entries {
		if f.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// SumMinutes adds up Minutes over entries with a duration
func SumMinutes(entries []LogEntry) int {
	total := 0
	for _, e := range entries {
		if e.HasDuration {
			total += e.Minutes
		}
	}
	return total
}
