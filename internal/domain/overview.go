package domain

import "time"

// DayOverview compares the minutes logged on a day with the work schedule
type DayOverview struct {
	Date            string
	Weekday         string
	ExpectedMinutes int
	LoggedMinutes   int
}

// Difference is logged minus expected; negative means under the schedule
func (d DayOverview) Difference() int {
	return d.LoggedMinutes - d.ExpectedMinutes
}

// Ratio is logged over expected, or 0 when nothing is expected
func (d DayOverview) Ratio() float64 {
	if d.ExpectedMinutes <= 0 {
		return 0
	}
	return float64(d.LoggedMinutes) / float64(d.ExpectedMinutes)
}

// WeekOverview holds seven days Monday through Sunday
type WeekOverview struct {
	Start time.Time
	Days  []DayOverview
}

// ExpectedMinutes sums the expected minutes of all days
func (w WeekOverview) ExpectedMinutes() int {
	total := 0
	for _, d := range w.Days {
		total += d.ExpectedMinutes
	}
	return total
}

// LoggedMinutes sums the logged minutes of all days
func (w WeekOverview) LoggedMinutes() int {
	total := 0
	for _, d := range w.Days {
		total += d.LoggedMinutes
	}
	return total
}

// Difference is logged minus expected over the whole week
func (w WeekOverview) Difference() int {
	return w.LoggedMinutes() - w.ExpectedMinutes()
}

// TodaySummary is the status line: all minutes in the file and minutes logged today
type TodaySummary struct {
	Date         string
	TotalMinutes int
	TodayMinutes int
}
