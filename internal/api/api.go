package api

import (
	"context"
	"sync"
	"time"

	"wogger/internal/domain"
	"wogger/internal/logging"
	"wogger/internal/repository/logfile"
	"wogger/internal/services"
	"wogger/internal/settings"
	"wogger/internal/timecalc"
)

// SettingsStore is the part of settings.Store the API depends on
type SettingsStore interface {
	Get() settings.Settings
	DataDir() string
	Path() string
	Set(key, value string) error
	Save() error
	ResetDefaults() error
	Entries() []settings.KeyValue
}

// API defines every operation the command line exposes.
type API interface {
	// Log engine
	LogWorkItem(task string, start, end time.Time) (domain.LogEntry, error)
	AppendLine(line string) error
	CheckLine(line string) error
	Reload() ([]logfile.SkippedLine, error)
	Skipped() []logfile.SkippedLine
	Tasks() []string
	TaskListing(todayOnly bool, now time.Time) ([]services.TaskListing, error)
	PrettyTotal(task *string) (string, error)
	Reset(now time.Time) (string, error)

	// Reporting
	TodaySummary(now time.Time) (domain.TodaySummary, error)
	DayReport(date time.Time) (*services.DayReport, error)
	WeekOverview(anyDay time.Time) (domain.WeekOverview, error)

	// Export
	Export(ctx context.Context, format services.ExportFormat, now time.Time) (string, error)

	// Locations
	LogPath() string
	DataDir() string

	// Settings
	Settings() settings.Settings
	SettingsPath() string
	SettingsEntries() []settings.KeyValue
	SetSetting(key, value string) error
	ResetSettings() error
}

type apiImpl struct {
	mu       sync.RWMutex
	store    SettingsStore
	services *services.ServiceContainer
	dataDir  string
}

// New creates a new API instance over the loaded settings store.
func New(store SettingsStore) (API, error) {
	a := &apiImpl{store: store}
	if err := a.rebuild(); err != nil {
		return nil, err
	}
	return a, nil
}

// rebuild wires fresh services when the data folder changes
func (a *apiImpl) rebuild() error {
	container, err := services.NewServiceContainer(a.store)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.services = container
	a.dataDir = a.store.DataDir()
	a.mu.Unlock()
	logging.Debugf("services ready for %s\n", a.store.DataDir())
	return nil
}

func (a *apiImpl) container() *services.ServiceContainer {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.services
}

// Log engine implementations

func (a *apiImpl) LogWorkItem(task string, start, end time.Time) (domain.LogEntry, error) {
	return a.container().LogService.LogWorkItem(task, start, end)
}

func (a *apiImpl) AppendLine(line string) error {
	return a.container().LogService.AppendManualLine(line)
}

func (a *apiImpl) CheckLine(line string) error {
	return a.container().LogService.ValidateManualLine(line)
}

func (a *apiImpl) Reload() ([]logfile.SkippedLine, error) {
	return a.container().LogService.Reload()
}

func (a *apiImpl) Skipped() []logfile.SkippedLine {
	return a.container().LogService.Skipped()
}

func (a *apiImpl) Tasks() []string {
	return a.container().LogService.Tasks()
}

// TaskListing returns every indexed task, or only those logged on now's date
func (a *apiImpl) TaskListing(todayOnly bool, now time.Time) ([]services.TaskListing, error) {
	c := a.container()
	rows := c.ReportingService.TaskListing()
	if !todayOnly {
		return rows, nil
	}

	today, err := c.LogService.TasksForDate(timecalc.FormatDate(now))
	if err != nil {
		return nil, err
	}
	keep := make(map[string]bool, len(today))
	for _, name := range today {
		keep[name] = true
	}

	filtered := make([]services.TaskListing, 0, len(today))
	for _, row := range rows {
		if keep[row.Name] {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

func (a *apiImpl) PrettyTotal(task *string) (string, error) {
	return a.container().LogService.PrettyTotal(task)
}

func (a *apiImpl) Reset(now time.Time) (string, error) {
	return a.container().LogService.Reset(now)
}

// Reporting implementations

func (a *apiImpl) TodaySummary(now time.Time) (domain.TodaySummary, error) {
	return a.container().ReportingService.TodaySummary(now)
}

func (a *apiImpl) DayReport(date time.Time) (*services.DayReport, error) {
	return a.container().ReportingService.DayReport(date)
}

func (a *apiImpl) WeekOverview(anyDay time.Time) (domain.WeekOverview, error) {
	return a.container().ReportingService.WeekOverview(anyDay)
}

func (a *apiImpl) Export(ctx context.Context, format services.ExportFormat, now time.Time) (string, error) {
	return a.container().ExportService.Export(ctx, format, now)
}

func (a *apiImpl) LogPath() string {
	return a.container().LogService.LogPath()
}

func (a *apiImpl) DataDir() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.dataDir
}

// Settings implementations

func (a *apiImpl) Settings() settings.Settings {
	return a.store.Get()
}

func (a *apiImpl) SettingsPath() string {
	return a.store.Path()
}

func (a *apiImpl) SettingsEntries() []settings.KeyValue {
	return a.store.Entries()
}

// SetSetting applies and saves one setting. Changing the data folder
// rewires the services to the new location.
func (a *apiImpl) SetSetting(key, value string) error {
	if err := a.store.Set(key, value); err != nil {
		return err
	}
	if err := a.store.Save(); err != nil {
		return err
	}
	return a.rebuildIfMoved()
}

// ResetSettings reverts to the defaults and saves them
func (a *apiImpl) ResetSettings() error {
	if err := a.store.ResetDefaults(); err != nil {
		return err
	}
	if err := a.store.Save(); err != nil {
		return err
	}
	return a.rebuildIfMoved()
}

func (a *apiImpl) rebuildIfMoved() error {
	if a.store.DataDir() == a.DataDir() {
		return nil
	}
	return a.rebuild()
}
