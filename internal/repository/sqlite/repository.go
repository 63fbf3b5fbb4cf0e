package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"wogger/internal/errors"
	"wogger/internal/logging"
	"wogger/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for export database operations
type Repository interface {
	// Write operations
	SaveEntries(ctx context.Context, entries []*TimeEntry, taskNames []string) error

	// Read operations
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTimeEntries(ctx context.Context) ([]*TimeEntry, error)
	TaskTotals(ctx context.Context) ([]*TaskTotal, error)

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

var pragmas = []string{
	"PRAGMA foreign_keys=ON",
	"PRAGMA busy_timeout=5000",
}

// New opens (or creates) the SQLite file at dbPath and applies migrations
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, errors.NewDatabaseError(fmt.Sprintf("exec %q", p), err)
		}
	}

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	logging.Debugf("opened export database %s\n", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

const insertTask = `INSERT INTO tasks (task_name) VALUES (?)`

const insertTimeEntry = `
	INSERT INTO time_entries (task_id, entry_date, weekday, start_time, end_time, duration_minutes)
	VALUES (?, ?, ?, ?, ?, ?)`

const selectTimeEntries = `
	SELECT time_entries.id, task_id, entry_date, weekday, start_time, end_time, duration_minutes
	FROM time_entries`

func createTimeEntry(ctx context.Context, db execer, entry *TimeEntry) error {
	id, err := ExecuteWithLastInsertID(ctx, db, insertTimeEntry,
		entry.TaskID, entry.EntryDate, entry.Weekday, entry.StartTime, entry.EndTime,
		FormatMinutesForDB(entry.DurationMinutes))
	if err != nil {
		return err
	}
	entry.ID = id
	return nil
}

// SaveEntries writes entries in a single transaction. taskNames[i] names
// the task of entries[i]; tasks are created on first use and TaskID is set.
func (r *SQLiteRepository) SaveEntries(ctx context.Context, entries []*TimeEntry, taskNames []string) error {
	if len(entries) != len(taskNames) {
		return errors.NewInvalidInputError("taskNames", len(taskNames), "must have one task name per entry")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return HandleDatabaseError("begin transaction", err)
	}
	defer tx.Rollback()

	taskIDs := make(map[string]int64)
	for i, entry := range entries {
		name := taskNames[i]
		id, ok := taskIDs[name]
		if !ok {
			id, err = ExecuteWithLastInsertID(ctx, tx, insertTask, name)
			if err != nil {
				return err
			}
			taskIDs[name] = id
		}

		entry.TaskID = id
		if err := createTimeEntry(ctx, tx, entry); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return HandleDatabaseError("commit transaction", err)
	}
	logging.Debugf("saved %d entries across %d tasks\n", len(entries), len(taskIDs))
	return nil
}

// ListTasks retrieves all tasks
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `SELECT id, task_name FROM tasks ORDER BY task_name ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}

// ListTimeEntries retrieves all time entries in log order
func (r *SQLiteRepository) ListTimeEntries(ctx context.Context) ([]*TimeEntry, error) {
	query := selectTimeEntries + ` ORDER BY time_entries.id ASC`
	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries")
}

// TaskTotals sums durations per task; entries without a duration count as zero
func (r *SQLiteRepository) TaskTotals(ctx context.Context) ([]*TaskTotal, error) {
	query := `
	SELECT tasks.task_name, COALESCE(SUM(duration_minutes), 0), COUNT(time_entries.id)
	FROM tasks
	JOIN time_entries ON time_entries.task_id = tasks.id
	GROUP BY tasks.id
	ORDER BY tasks.task_name ASC`
	return QueryMultiple(ctx, r.db, query, ScanTaskTotals, "task totals")
}
