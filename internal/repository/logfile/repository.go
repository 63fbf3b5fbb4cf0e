package logfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wogger/internal/errors"
	"wogger/internal/logging"
)

const (
	// FileName is the log file inside the data folder.
	FileName = "time_log.txt"

	backupStampLayout = "200601021504"
)

// Repository defines the operations on the log file
type Repository interface {
	Path() string
	Dir() string
	Exists() bool
	Read() (ParseResult, error)
	Append(line string) error
	Backup(now time.Time) (string, error)
}

// FileRepository is a Repository backed by <dir>/time_log.txt.
// It assumes a single writer process; there is no file locking.
type FileRepository struct {
	dir string
}

// New creates a repository for the log file in dir
func New(dir string) *FileRepository {
	return &FileRepository{dir: dir}
}

// Dir returns the data folder
func (r *FileRepository) Dir() string {
	return r.dir
}

// Path returns the full path of time_log.txt
func (r *FileRepository) Path() string {
	return filepath.Join(r.dir, FileName)
}

// Exists reports whether the log file is present
func (r *FileRepository) Exists() bool {
	info, err := os.Stat(r.Path())
	return err == nil && !info.IsDir()
}

// Read parses the whole file. A missing file is an empty log.
func (r *FileRepository) Read() (ParseResult, error) {
	f, err := os.Open(r.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return ParseResult{}, nil
		}
		return ParseResult{}, errors.NewIOError("open", r.Path(), err)
	}
	defer f.Close()

	result, err := Parse(f)
	if err != nil {
		return result, err
	}
	logging.Debugf("read %d entries from %s (%d skipped)\n", len(result.Entries), r.Path(), len(result.Skipped))
	return result, nil
}

// Append writes line plus a newline at the end of the file, creating the
// folder and file when needed.
func (r *FileRepository) Append(line string) error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return errors.NewIOError("create data folder", r.dir, err)
	}

	f, err := os.OpenFile(r.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.NewIOError("open", r.Path(), err)
	}
	defer f.Close()

	if _, err := f.WriteString(strings.TrimRight(line, "\r\n") + "\n"); err != nil {
		return errors.NewIOError("append to", r.Path(), err)
	}
	return nil
}

// BackupName returns time_log.txt.bak<YYYYMMDDHHMM> for now
func BackupName(now time.Time) string {
	return fmt.Sprintf("%s.bak%s", FileName, now.Format(backupStampLayout))
}

// Backup renames the log file to its timestamped backup name and returns
// the backup path, or "" when there was no log file.
func (r *FileRepository) Backup(now time.Time) (string, error) {
	if !r.Exists() {
		return "", nil
	}

	backupPath := filepath.Join(r.dir, BackupName(now))
	if err := os.Rename(r.Path(), backupPath); err != nil {
		return "", errors.NewIOError("rename", r.Path(), err)
	}

	logging.Debugf("moved %s to %s\n", r.Path(), backupPath)
	return backupPath, nil
}
