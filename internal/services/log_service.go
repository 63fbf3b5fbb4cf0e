package services

import (
	"sort"
	"strings"
	"sync"
	"time"

	"wogger/internal/domain"
	"wogger/internal/errors"
	"wogger/internal/logging"
	"wogger/internal/repository/logfile"
	"wogger/internal/timecalc"
	"wogger/internal/validation"
)

var taskNameCleaner = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// logServiceImpl implements the LogService interface
type logServiceImpl struct {
	mu            sync.RWMutex
	repo          logfile.Repository
	settings      SettingsProvider
	lineValidator *validation.LineValidator
	index         map[string]int
	skipped       []logfile.SkippedLine
}

// NewLogService creates a LogService over repo and loads the index
func NewLogService(repo logfile.Repository, provider SettingsProvider) (LogService, error) {
	l := &logServiceImpl{
		repo:          repo,
		settings:      provider,
		lineValidator: validation.NewLineValidator(),
		index:         make(map[string]int),
	}
	if _, err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

// LogPath returns the location of time_log.txt
func (l *logServiceImpl) LogPath() string {
	return l.repo.Path()
}

// Reload clears and rebuilds the index from the file
func (l *logServiceImpl) Reload() ([]logfile.SkippedLine, error) {
	result, err := l.repo.Read()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int)
	for _, entry := range result.Entries {
		if entry.HasDuration {
			index[entry.Task] += entry.Minutes
		}
	}

	l.mu.Lock()
	l.index = index
	l.skipped = result.Skipped
	l.mu.Unlock()

	logging.Debugf("index rebuilt: %d tasks, %d skipped lines\n", len(index), len(result.Skipped))
	return result.Skipped, nil
}

// Skipped returns the lines skipped by the last Reload
func (l *logServiceImpl) Skipped() []logfile.SkippedLine {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]logfile.SkippedLine(nil), l.skipped...)
}

// Entries scans the file and returns every parsed entry in file order
func (l *logServiceImpl) Entries() ([]domain.LogEntry, error) {
	result, err := l.repo.Read()
	if err != nil {
		return nil, err
	}
	return result.Entries, nil
}

// TaskMinutes returns the cached minutes for task, 0 if unknown
func (l *logServiceImpl) TaskMinutes(task string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.index[task]
}

// TotalMinutes sums the index
func (l *logServiceImpl) TotalMinutes() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	total := 0
	for _, minutes := range l.index {
		total += minutes
	}
	return total
}

// Tasks returns the indexed task names in sorted order
func (l *logServiceImpl) Tasks() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	names := make([]string, 0, len(l.index))
	for name := range l.index {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TaskTotals returns the index as sorted TaskTotals
func (l *logServiceImpl) TaskTotals() []domain.TaskTotal {
	names := l.Tasks()
	totals := make([]domain.TaskTotal, len(names))
	for i, name := range names {
		totals[i] = domain.NewTaskTotal(name, l.TaskMinutes(name))
	}
	return totals
}

// TasksForDate returns the distinct task names logged on date, sorted
func (l *logServiceImpl) TasksForDate(date string) ([]string, error) {
	entries, err := l.Entries()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := []string{}
	for _, entry := range (domain.EntryFilter{Date: &date}).Filter(entries) {
		if _, ok := seen[entry.Task]; ok {
			continue
		}
		seen[entry.Task] = struct{}{}
		names = append(names, entry.Task)
	}
	sort.Strings(names)
	return names, nil
}

// MinutesForDate sums the entries logged on date
func (l *logServiceImpl) MinutesForDate(date string) (int, error) {
	entries, err := l.Entries()
	if err != nil {
		return 0, err
	}
	filter := domain.EntryFilter{Date: &date, RequireDuration: true}
	return domain.SumMinutes(filter.Filter(entries)), nil
}

// PrettyTotal formats the minutes of task, or of every task when nil, using
// the standard work day and week from the settings
func (l *logServiceImpl) PrettyTotal(task *string) (string, error) {
	entries, err := l.Entries()
	if err != nil {
		return "", err
	}
	filter := domain.EntryFilter{Task: task, RequireDuration: true}
	total := domain.SumMinutes(filter.Filter(entries))

	s := l.settings.Get()
	return timecalc.FormatPretty(total, s.StandartWorkDay, s.StandartDaysInWeek), nil
}

// IsValidManualLine reports whether text may be appended
func (l *logServiceImpl) IsValidManualLine(text string) bool {
	return l.lineValidator.IsValidManualLine(text)
}

// ValidateManualLine describes every problem with text
func (l *logServiceImpl) ValidateManualLine(text string) error {
	return l.lineValidator.ValidateManualLine(text)
}

// AppendManualLine appends a validated line and updates the index. Lines
// with a negative duration are rejected and nothing is written.
func (l *logServiceImpl) AppendManualLine(text string) error {
	if err := l.lineValidator.ValidateManualLine(text); err != nil {
		return err
	}

	line := strings.TrimSpace(text)
	entry, err := logfile.ParseLine(line)
	if err != nil {
		return errors.NewValidationError("invalid log line", err)
	}
	if entry.IsNegative() {
		return errors.NewInvalidIntervalError(entry.Start, entry.End, entry.Minutes)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.repo.Append(line); err != nil {
		return err
	}
	l.index[entry.Task] += entry.Minutes

	logging.Debugf("appended %q (%d min)\n", line, entry.Minutes)
	return nil
}

// LogWorkItem formats an entry from the prompt interval and appends it
// through AppendManualLine. An empty task is logged as Unspecified.
func (l *logServiceImpl) LogWorkItem(task string, start, end time.Time) (domain.LogEntry, error) {
	name := strings.TrimSpace(taskNameCleaner.Replace(task))
	if name == "" {
		name = domain.UnspecifiedTask
	}

	entry := domain.NewLogEntry(name, start, end)
	if err := l.AppendManualLine(entry.Line()); err != nil {
		return domain.LogEntry{}, err
	}
	return entry, nil
}

// Reset moves the log to a timestamped backup and clears the index
func (l *logServiceImpl) Reset(now time.Time) (string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	backup, err := l.repo.Backup(now)
	if err != nil {
		return "", err
	}
	l.index = make(map[string]int)
	l.skipped = nil
	return backup, nil
}
