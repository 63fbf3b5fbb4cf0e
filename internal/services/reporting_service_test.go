package services

import (
	"path/filepath"
	"testing"
	"time"

	"wogger/internal/repository/logfile"
	"wogger/internal/settings"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportingService_DayOverview(t *testing.T) {
	container, _ := setupServices(t, sampleLog)

	tests := []struct {
		name       string
		date       time.Time
		weekday    string
		expected   int
		logged     int
		difference int
	}{
		{
			name:       "should compare wednesday with schedule",
			date:       time.Date(2025, 2, 5, 18, 0, 0, 0, time.Local),
			weekday:    "Wednesday",
			expected:   450,
			logged:     75,
			difference: -375,
		},
		{
			name:       "should expect nothing on sunday",
			date:       time.Date(2025, 2, 9, 0, 0, 0, 0, time.Local),
			weekday:    "Sunday",
			expected:   0,
			logged:     0,
			difference: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overview, err := container.ReportingService.DayOverview(tt.date)
			require.NoError(t, err)

			assert.Equal(t, tt.weekday, overview.Weekday)
			assert.Equal(t, tt.expected, overview.ExpectedMinutes)
			assert.Equal(t, tt.logged, overview.LoggedMinutes)
			assert.Equal(t, tt.difference, overview.Difference())
		})
	}
}

func TestReportingService_DayReport(t *testing.T) {
	container, _ := setupServices(t, sampleLog)

	report, err := container.ReportingService.DayReport(time.Date(2025, 2, 6, 12, 0, 0, 0, time.Local))
	require.NoError(t, err)

	assert.Equal(t, "2025-02-06", report.Overview.Date)
	assert.Equal(t, 60, report.Overview.LoggedMinutes)
	assert.Equal(t, []string{"Broken", "Review", "Tilde"}, report.Tasks)
}

func TestReportingService_WeekOverview(t *testing.T) {
	container, _ := setupServices(t, sampleLog)

	week, err := container.ReportingService.WeekOverview(time.Date(2025, 2, 6, 12, 0, 0, 0, time.Local))
	require.NoError(t, err)

	require.Len(t, week.Days, 7)
	assert.Equal(t, "2025-02-03", week.Days[0].Date)
	assert.Equal(t, "Monday", week.Days[0].Weekday)
	assert.Equal(t, "2025-02-09", week.Days[6].Date)
	assert.Equal(t, 75, week.Days[2].LoggedMinutes)
	assert.Equal(t, 60, week.Days[3].LoggedMinutes)
	assert.Equal(t, 390, week.Days[4].ExpectedMinutes)

	assert.Equal(t, 2190, week.ExpectedMinutes())
	assert.Equal(t, 135, week.LoggedMinutes())
	assert.Equal(t, -2055, week.Difference())
}

func TestReportingService_WeekOverviewUsesSchedule(t *testing.T) {
	dir := t.TempDir()
	store := settings.NewStore(filepath.Join(dir, "settings.json"), dir)
	store.Update(func(s *settings.Settings) {
		s.WorkSchedule["Saturday"] = 120
	})

	logService, err := NewLogService(logfile.New(dir), store)
	require.NoError(t, err)
	reporting := NewReportingService(logService, store)

	week, err := reporting.WeekOverview(time.Date(2025, 2, 8, 9, 0, 0, 0, time.Local))
	require.NoError(t, err)
	assert.Equal(t, 120, week.Days[5].ExpectedMinutes)
	assert.Equal(t, 2310, week.ExpectedMinutes())
}

func TestReportingService_TodaySummary(t *testing.T) {
	container, _ := setupServices(t, sampleLog)

	summary, err := container.ReportingService.TodaySummary(time.Date(2025, 2, 6, 15, 0, 0, 0, time.Local))
	require.NoError(t, err)

	assert.Equal(t, "2025-02-06", summary.Date)
	assert.Equal(t, 135, summary.TotalMinutes)
	assert.Equal(t, 60, summary.TodayMinutes)
}

func TestReportingService_TaskListing(t *testing.T) {
	container, _ := setupServices(t, sampleLog)

	rows := container.ReportingService.TaskListing()
	require.Len(t, rows, 3)
	assert.Equal(t, TaskListing{Name: "Email", Minutes: 75, Pretty: "1h 15m"}, rows[0])
	assert.Equal(t, TaskListing{Name: "Review", Minutes: 30, Pretty: "30m"}, rows[1])
}
