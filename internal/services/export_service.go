package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wogger/internal/domain"
	"wogger/internal/errors"
	"wogger/internal/logging"
	"wogger/internal/repository/sqlite"
)

const exportStampLayout = "20060102150405"

var csvHeader = []string{"Date", "Day", "Start Time", "End Time", "Duration (min)", "Task"}

// ParseExportFormat maps a user supplied name to an ExportFormat
func ParseExportFormat(name string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(name))) {
	case ExportCSV, "":
		return ExportCSV, nil
	case ExportJSON:
		return ExportJSON, nil
	case ExportSQLite:
		return ExportSQLite, nil
	default:
		return "", errors.NewInvalidInputError("format", name, "must be csv, json or sqlite")
	}
}

// Extension returns the file extension written for the format
func (f ExportFormat) Extension() string {
	if f == ExportSQLite {
		return "db"
	}
	return string(f)
}

// ExportFileName returns time_log_export_<YYYYMMDDHHMMSS>.<ext>
func ExportFileName(format ExportFormat, now time.Time) string {
	return fmt.Sprintf("time_log_export_%s.%s", now.Format(exportStampLayout), format.Extension())
}

type jsonExport struct {
	ExportedAt string                `json:"exported_at"`
	Count      int                   `json:"count"`
	Entries    []domain.ExportRecord `json:"entries"`
}

// exportServiceImpl implements the ExportService interface
type exportServiceImpl struct {
	logService LogService
	settings   SettingsProvider
	mapper     *domain.Mapper
}

// NewExportService creates a new ExportService instance
func NewExportService(logService LogService, provider SettingsProvider) ExportService {
	return &exportServiceImpl{
		logService: logService,
		settings:   provider,
		mapper:     domain.NewMapper(),
	}
}

// Export writes every entry with a "-" separator to a new file in the data
// folder and returns its path
func (e *exportServiceImpl) Export(ctx context.Context, format ExportFormat, now time.Time) (string, error) {
	format, err := ParseExportFormat(string(format))
	if err != nil {
		return "", err
	}

	entries, err := e.logService.Entries()
	if err != nil {
		return "", err
	}
	records := e.mapper.ExportRecord.FromLogEntries(domain.EntryFilter{RequireSeparator: true}.Filter(entries))

	dir := e.settings.DataDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.NewIOError("create data folder", dir, err)
	}
	path := filepath.Join(dir, ExportFileName(format, now))

	switch format {
	case ExportJSON:
		err = writeJSON(records, path, now)
	case ExportSQLite:
		err = writeSQLite(ctx, e.mapper, records, path)
	default:
		err = writeCSV(records, path)
	}
	if err != nil {
		return "", err
	}

	logging.Debugf("exported %d records to %s\n", len(records), path)
	return path, nil
}

func writeCSV(records []domain.ExportRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIOError("create", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return errors.NewIOError("write", path, err)
	}
	for _, r := range records {
		duration := ""
		if r.Duration != nil {
			duration = strconv.Itoa(*r.Duration)
		}
		row := []string{r.Date, r.Day, r.StartTime, r.EndTime, duration, r.Task}
		if err := w.Write(row); err != nil {
			return errors.NewIOError("write", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}

func writeJSON(records []domain.ExportRecord, path string, now time.Time) error {
	if records == nil {
		records = []domain.ExportRecord{}
	}
	export := jsonExport{
		ExportedAt: now.Format(time.RFC3339),
		Count:      len(records),
		Entries:    records,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewIOError("write", path, err)
	}
	return nil
}

func writeSQLite(ctx context.Context, mapper *domain.Mapper, records []domain.ExportRecord, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.NewIOError("replace", path, err)
	}

	repo, err := sqlite.New(path)
	if err != nil {
		return err
	}
	defer repo.Close()

	entries, names := mapper.ExportRecord.ToDatabaseSlice(records)
	if err := repo.SaveEntries(ctx, entries, names); err != nil {
		return err
	}

	stored, err := readSQLite(ctx, mapper, repo)
	if err != nil {
		return err
	}
	if len(stored) != len(records) {
		return errors.NewDatabaseError("verify export",
			fmt.Errorf("wrote %d records but read back %d", len(records), len(stored)))
	}

	totals, err := repo.TaskTotals(ctx)
	if err != nil {
		return err
	}
	for _, total := range totals {
		logging.Debugf("exported %s: %d entries, %d min\n", total.TaskName, total.Entries, total.Minutes)
	}
	return nil
}

// readSQLite returns the rows of an export database as records in log order
func readSQLite(ctx context.Context, mapper *domain.Mapper, repo sqlite.Repository) ([]domain.ExportRecord, error) {
	tasks, err := repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(tasks))
	for _, task := range tasks {
		names[task.ID] = task.TaskName
	}

	rows, err := repo.ListTimeEntries(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]domain.ExportRecord, 0, len(rows))
	for _, row := range rows {
		name, ok := names[row.TaskID]
		if !ok {
			return nil, errors.NewDatabaseError("verify export", fmt.Errorf("entry %d has no task", row.ID))
		}
		records = append(records, mapper.ExportRecord.FromDatabase(*row, name))
	}
	return records, nil
}
