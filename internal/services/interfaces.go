package services

import (
	"context"
	"time"

	"wogger/internal/domain"
	"wogger/internal/repository/logfile"
	"wogger/internal/settings"
)

// SettingsProvider exposes the current settings to the services
type SettingsProvider interface {
	Get() settings.Settings
	DataDir() string
}

// ExportFormat selects the export writer
type ExportFormat string

const (
	ExportCSV    ExportFormat = "csv"
	ExportJSON   ExportFormat = "json"
	ExportSQLite ExportFormat = "sqlite"
)

// TaskListing is one row of the task table
type TaskListing struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
	Pretty  string `json:"pretty"`
}

// DayReport combines the minutes, task names and schedule comparison of one day
type DayReport struct {
	Overview domain.DayOverview `json:"overview"`
	Tasks    []string           `json:"tasks"`
}

// LogService is the log engine: validated appends to time_log.txt and the
// per-task index derived from it.
type LogService interface {
	// Index maintenance
	Reload() ([]logfile.SkippedLine, error)
	Skipped() []logfile.SkippedLine
	Entries() ([]domain.LogEntry, error)

	// Cached aggregation
	TaskMinutes(task string) int
	TotalMinutes() int
	Tasks() []string
	TaskTotals() []domain.TaskTotal

	// Fresh scans
	TasksForDate(date string) ([]string, error)
	MinutesForDate(date string) (int, error)
	PrettyTotal(task *string) (string, error)

	// Writing
	IsValidManualLine(text string) bool
	ValidateManualLine(text string) error
	AppendManualLine(text string) error
	LogWorkItem(task string, start, end time.Time) (domain.LogEntry, error)
	Reset(now time.Time) (string, error)

	// Location
	LogPath() string
}

// ReportingService compares logged time with the work schedule
type ReportingService interface {
	DayOverview(date time.Time) (domain.DayOverview, error)
	DayReport(date time.Time) (*DayReport, error)
	WeekOverview(anyDay time.Time) (domain.WeekOverview, error)
	TodaySummary(now time.Time) (domain.TodaySummary, error)
	TaskListing() []TaskListing
}

// ExportService writes the log to csv, json or sqlite files in the data folder
type ExportService interface {
	Export(ctx context.Context, format ExportFormat, now time.Time) (string, error)
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	LogService       LogService
	ReportingService ReportingService
	ExportService    ExportService
}

// NewServiceContainer wires the services over the log file in the data
// folder reported by provider. The index is loaded before returning.
func NewServiceContainer(provider SettingsProvider) (*ServiceContainer, error) {
	logService, err := NewLogService(logfile.New(provider.DataDir()), provider)
	if err != nil {
		return nil, err
	}

	return &ServiceContainer{
		LogService:       logService,
		ReportingService: NewReportingService(logService, provider),
		ExportService:    NewExportService(logService, provider),
	}, nil
}
