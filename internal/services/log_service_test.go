package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"wogger/internal/errors"
	"wogger/internal/repository/logfile"
	"wogger/internal/settings"
	"wogger/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `2025-02-05 12:00 - 12:15 | Email
garbage

2025-02-05 13:00 - 14:00 | Email
2025-02-06 09:00 - 09:30 | Review
2025-02-06 xx:00 - 09:30 | Broken
2025-02-06 10:00 ~ 10:30 | Tilde
`

// setupServices writes content as time_log.txt in a temp data folder and
// wires the services over it
func setupServices(t *testing.T, content string) (*ServiceContainer, string) {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, logfile.FileName), []byte(content), 0644))
	}

	store := settings.NewStore(filepath.Join(dir, "settings.json"), dir)
	container, err := NewServiceContainer(store)
	require.NoError(t, err)
	return container, dir
}

func readLog(t *testing.T, dir string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, logfile.FileName))
	if os.IsNotExist(err) {
		return ""
	}
	require.NoError(t, err)
	return string(data)
}

func TestLogService_Index(t *testing.T) {
	container, _ := setupServices(t, sampleLog)
	service := container.LogService

	assert.Equal(t, 75, service.TaskMinutes("Email"))
	assert.Equal(t, 30, service.TaskMinutes("Review"))
	assert.Equal(t, 30, service.TaskMinutes("Tilde"), "index does not check the separator")
	assert.Equal(t, 0, service.TaskMinutes("Broken"), "entries without a duration are not indexed")
	assert.Equal(t, 0, service.TaskMinutes("email"), "lookup is case-sensitive")
	assert.Equal(t, 135, service.TotalMinutes())
	assert.Equal(t, []string{"Email", "Review", "Tilde"}, service.Tasks())

	totals := service.TaskTotals()
	require.Len(t, totals, 3)
	assert.Equal(t, "Email", totals[0].Name)
	assert.Equal(t, 75, totals[0].Minutes)
}

func TestLogService_Skipped(t *testing.T) {
	container, _ := setupServices(t, sampleLog)

	skipped := container.LogService.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, 2, skipped[0].LineNumber)
	assert.Equal(t, "garbage", skipped[0].Text)
}

func TestLogService_EmptyLog(t *testing.T) {
	container, _ := setupServices(t, "")
	service := container.LogService

	assert.Equal(t, 0, service.TotalMinutes())
	assert.Empty(t, service.Tasks())

	total, err := service.PrettyTotal(nil)
	require.NoError(t, err)
	assert.Equal(t, "0m", total)
}

func TestLogService_TasksForDate(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected []string
	}{
		{
			name:     "should list distinct tasks sorted",
			date:     "2025-02-05",
			expected: []string{"Email"},
		},
		{
			name:     "should include entries without a duration",
			date:     "2025-02-06",
			expected: []string{"Broken", "Review", "Tilde"},
		},
		{
			name:     "should return empty for unknown date",
			date:     "2025-02-07",
			expected: []string{},
		},
	}

	container, _ := setupServices(t, sampleLog)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := container.LogService.TasksForDate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tasks)
		})
	}
}

func TestLogService_MinutesForDate(t *testing.T) {
	container, _ := setupServices(t, sampleLog)

	tests := map[string]int{
		"2025-02-05": 75,
		"2025-02-06": 60,
		"2025-02-07": 0,
		"2025-2-5":   0,
	}
	for date, expected := range tests {
		minutes, err := container.LogService.MinutesForDate(date)
		require.NoError(t, err)
		assert.Equal(t, expected, minutes, date)
	}
}

func TestLogService_PrettyTotal(t *testing.T) {
	container, _ := setupServices(t, sampleLog)

	email := "Email"
	lower := "email"
	tests := []struct {
		name     string
		task     *string
		expected string
	}{
		{"should sum every task", nil, "2h 15m"},
		{"should sum one task", &email, "1h 15m"},
		{"should match case-sensitively", &lower, "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := container.LogService.PrettyTotal(tt.task)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, total)
		})
	}
}

func TestLogService_PrettyTotalUsesStandardSettings(t *testing.T) {
	dir := t.TempDir()
	content := "2025-02-05 08:00 - 18:00 | Build\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, logfile.FileName), []byte(content), 0644))

	store := settings.NewStore(filepath.Join(dir, "settings.json"), dir)
	store.Update(func(s *settings.Settings) {
		s.StandartWorkDay = 480
	})
	service, err := NewLogService(logfile.New(dir), store)
	require.NoError(t, err)

	total, err := service.PrettyTotal(nil)
	require.NoError(t, err)
	assert.Equal(t, "1d 2h", total)
}

func TestLogService_AppendManualLine(t *testing.T) {
	t.Run("should append trimmed line and update index", func(t *testing.T) {
		container, dir := setupServices(t, "")
		service := container.LogService

		err := service.AppendManualLine("  2025-02-05 12:00 - 12:15 | Email triage  \n")
		require.NoError(t, err)

		assert.Equal(t, "2025-02-05 12:00 - 12:15 | Email triage\n", readLog(t, dir))
		assert.Equal(t, 15, service.TaskMinutes("Email triage"))
	})

	t.Run("should reject invalid line without writing", func(t *testing.T) {
		container, dir := setupServices(t, sampleLog)
		service := container.LogService

		err := service.AppendManualLine("2025-02-30 12:00 - 12:15 | Email")
		require.Error(t, err)
		assert.True(t, validation.IsValidationError(err))
		assert.Equal(t, sampleLog, readLog(t, dir))
		assert.Equal(t, 75, service.TaskMinutes("Email"))
	})

	t.Run("should reject negative interval without writing", func(t *testing.T) {
		container, dir := setupServices(t, sampleLog)
		service := container.LogService

		err := service.AppendManualLine("2025-02-05 10:00 - 09:45 | Email")
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInterval))
		assert.ErrorIs(t, err, errors.ErrNegativeInterval)
		assert.Equal(t, sampleLog, readLog(t, dir))
		assert.Equal(t, 75, service.TaskMinutes("Email"))
	})

	t.Run("should accept zero length interval", func(t *testing.T) {
		container, _ := setupServices(t, "")
		require.NoError(t, container.LogService.AppendManualLine("2025-02-05 10:00 - 10:00 | Email"))
		assert.Equal(t, []string{"Email"}, container.LogService.Tasks())
	})
}

func TestLogService_LogWorkItem(t *testing.T) {
	day := func(hour, minute int) time.Time {
		return time.Date(2025, 2, 7, hour, minute, 0, 0, time.Local)
	}

	tests := []struct {
		name         string
		task         string
		start        time.Time
		end          time.Time
		expectedLine string
		expectError  bool
	}{
		{
			name:         "should log named task",
			task:         "Code review",
			start:        day(9, 0),
			end:          day(9, 45),
			expectedLine: "2025-02-07 09:00 - 09:45 | Code review\n",
		},
		{
			name:         "should log empty task as Unspecified",
			task:         "   ",
			start:        day(9, 0),
			end:          day(9, 15),
			expectedLine: "2025-02-07 09:00 - 09:15 | Unspecified\n",
		},
		{
			name:         "should flatten newlines in task name",
			task:         "Planning\nmeeting",
			start:        day(10, 0),
			end:          day(10, 30),
			expectedLine: "2025-02-07 10:00 - 10:30 | Planning meeting\n",
		},
		{
			name:        "should reject interval crossing midnight",
			task:        "Late",
			start:       day(23, 50),
			end:         day(23, 50).Add(20 * time.Minute),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			container, dir := setupServices(t, "")

			entry, err := container.LogService.LogWorkItem(tt.task, tt.start, tt.end)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInterval))
				assert.Empty(t, readLog(t, dir))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLine, readLog(t, dir))
			assert.Equal(t, strings.TrimSuffix(tt.expectedLine, "\n"), entry.Line())
			assert.Equal(t, entry.Minutes, container.LogService.TaskMinutes(entry.Task))
		})
	}
}

func TestLogService_Reload(t *testing.T) {
	container, dir := setupServices(t, sampleLog)
	service := container.LogService

	f, err := os.OpenFile(filepath.Join(dir, logfile.FileName), os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("2025-02-07 09:00 - 10:00 | Email\nnot a line\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.Equal(t, 75, service.TaskMinutes("Email"), "index is cached until reload")

	skipped, err := service.Reload()
	require.NoError(t, err)
	assert.Len(t, skipped, 2)
	assert.Equal(t, 135, service.TaskMinutes("Email"))
	assert.Equal(t, 195, service.TotalMinutes())
}

func TestLogService_ReloadMatchesIncrementalIndex(t *testing.T) {
	container, _ := setupServices(t, sampleLog)
	service := container.LogService
	day := func(hour, minute int) time.Time {
		return time.Date(2025, 2, 7, hour, minute, 0, 0, time.Local)
	}

	require.NoError(t, service.AppendManualLine("2025-02-07 08:00 - 08:45 | Email"))
	require.NoError(t, service.AppendManualLine("  2025-02-07 08:45 - 08:45 | Standup  "))
	_, err := service.LogWorkItem("Code review", day(9, 0), day(9, 30))
	require.NoError(t, err)
	_, err = service.LogWorkItem("", day(9, 30), day(9, 45))
	require.NoError(t, err)
	_, err = service.LogWorkItem("Email", day(10, 0), day(10, 15))
	require.NoError(t, err)

	incremental := service.TaskTotals()
	incrementalTotal := service.TotalMinutes()
	assert.Equal(t, 75+45+15, service.TaskMinutes("Email"))

	_, err = service.Reload()
	require.NoError(t, err)

	assert.Equal(t, incremental, service.TaskTotals())
	assert.Equal(t, incrementalTotal, service.TotalMinutes())
}

func TestLogService_Reset(t *testing.T) {
	now := time.Date(2025, 2, 7, 17, 30, 0, 0, time.Local)

	t.Run("should move log to backup and clear index", func(t *testing.T) {
		container, dir := setupServices(t, sampleLog)
		service := container.LogService

		backup, err := service.Reset(now)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(dir, "time_log.txt.bak202502071730"), backup)
		data, err := os.ReadFile(backup)
		require.NoError(t, err)
		assert.Equal(t, sampleLog, string(data))

		assert.NoFileExists(t, service.LogPath())
		assert.Equal(t, 0, service.TotalMinutes())
		assert.Empty(t, service.Tasks())
		assert.Empty(t, service.Skipped())
	})

	t.Run("should do nothing without a log", func(t *testing.T) {
		container, _ := setupServices(t, "")

		backup, err := container.LogService.Reset(now)
		require.NoError(t, err)
		assert.Empty(t, backup)
	})
}
