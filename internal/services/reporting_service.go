package services

import (
	"time"

	"wogger/internal/domain"
	"wogger/internal/timecalc"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	logService LogService
	settings   SettingsProvider
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(logService LogService, provider SettingsProvider) ReportingService {
	return &reportingServiceImpl{
		logService: logService,
		settings:   provider,
	}
}

// DayOverview compares the minutes logged on date with its scheduled minutes
func (r *reportingServiceImpl) DayOverview(date time.Time) (domain.DayOverview, error) {
	dateStr := timecalc.FormatDate(date)
	logged, err := r.logService.MinutesForDate(dateStr)
	if err != nil {
		return domain.DayOverview{}, err
	}
	return r.buildDay(date, logged), nil
}

// DayReport adds the task names of date to its overview
func (r *reportingServiceImpl) DayReport(date time.Time) (*DayReport, error) {
	overview, err := r.DayOverview(date)
	if err != nil {
		return nil, err
	}
	tasks, err := r.logService.TasksForDate(overview.Date)
	if err != nil {
		return nil, err
	}
	return &DayReport{Overview: overview, Tasks: tasks}, nil
}

// WeekOverview returns Monday through Sunday of the week containing anyDay.
// The file is scanned once.
func (r *reportingServiceImpl) WeekOverview(anyDay time.Time) (domain.WeekOverview, error) {
	entries, err := r.logService.Entries()
	if err != nil {
		return domain.WeekOverview{}, err
	}

	perDate := make(map[string]int)
	for _, entry := range (domain.EntryFilter{RequireDuration: true}).Filter(entries) {
		perDate[entry.Date] += entry.Minutes
	}

	start := timecalc.WeekStart(anyDay)
	week := domain.WeekOverview{Start: start, Days: make([]domain.DayOverview, 0, 7)}
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		week.Days = append(week.Days, r.buildDay(day, perDate[timecalc.FormatDate(day)]))
	}
	return week, nil
}

// TodaySummary returns the status line figures for now
func (r *reportingServiceImpl) TodaySummary(now time.Time) (domain.TodaySummary, error) {
	date := timecalc.FormatDate(now)
	today, err := r.logService.MinutesForDate(date)
	if err != nil {
		return domain.TodaySummary{}, err
	}
	return domain.TodaySummary{
		Date:         date,
		TotalMinutes: r.logService.TotalMinutes(),
		TodayMinutes: today,
	}, nil
}

// TaskListing returns every indexed task with its minutes and pretty total
func (r *reportingServiceImpl) TaskListing() []TaskListing {
	s := r.settings.Get()
	totals := r.logService.TaskTotals()
	rows := make([]TaskListing, len(totals))
	for i, total := range totals {
		rows[i] = TaskListing{
			Name:    total.Name,
			Minutes: total.Minutes,
			Pretty:  timecalc.FormatPretty(total.Minutes, s.StandartWorkDay, s.StandartDaysInWeek),
		}
	}
	return rows
}

func (r *reportingServiceImpl) buildDay(date time.Time, logged int) domain.DayOverview {
	return domain.DayOverview{
		Date:            timecalc.FormatDate(date),
		Weekday:         date.Weekday().String(),
		ExpectedMinutes: r.settings.Get().ExpectedMinutes(date.Weekday()),
		LoggedMinutes:   logged,
	}
}
