// Package timecalc holds the clock arithmetic and duration formatting used
// by the log engine.
package timecalc

import (
	"fmt"
	"strings"
	"time"

	"wogger/internal/errors"
)

const (
	// ClockLayout is the HH:MM layout used for start and end tokens.
	ClockLayout = "15:04"
	// DateLayout is the YYYY-MM-DD layout used for the date token.
	DateLayout = "2006-01-02"

	minutesPerHour       = 60
	defaultMinutesPerDay = 24 * minutesPerHour
	defaultDaysPerWeek   = 7
)

// ParseClock parses a 24-hour HH:MM token and returns minutes since midnight
func ParseClock(hhmm string) (int, error) {
	t, err := time.Parse(ClockLayout, hhmm)
	if err != nil {
		return 0, errors.NewParseError("time", hhmm, err)
	}
	return t.Hour()*minutesPerHour + t.Minute(), nil
}

// MinutesBetween returns end - start in whole minutes for two same-day
// clock times. There is no rollover, so the result is negative when end
// precedes start.
func MinutesBetween(start, end string) (int, error) {
	startMinutes, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endMinutes, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	return endMinutes - startMinutes, nil
}

// ParseDate parses a YYYY-MM-DD token into a local calendar date
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return time.Time{}, errors.NewParseError("date", date, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatClock renders t as HH:MM
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatPretty decomposes total minutes into "Xw Yd Zh Wm" using the given
// day length and week length. Zero components are omitted and a zero total
// yields "0m". Non-positive divisors fall back to 1440 minutes and 7 days.
// Negative totals are formatted by magnitude with a leading "-".
func FormatPretty(total, minutesPerDay, daysPerWeek int) string {
	if minutesPerDay <= 0 {
		minutesPerDay = defaultMinutesPerDay
	}
	if daysPerWeek <= 0 {
		daysPerWeek = defaultDaysPerWeek
	}
	if total < 0 {
		return "-" + FormatPretty(-total, minutesPerDay, daysPerWeek)
	}

	minutesPerWeek := minutesPerDay * daysPerWeek

	weeks := total / minutesPerWeek
	remainder := total % minutesPerWeek
	days := remainder / minutesPerDay
	remainder %= minutesPerDay
	hours := remainder / minutesPerHour
	minutes := remainder % minutesPerHour

	parts := make([]string, 0, 4)
	if weeks > 0 {
		parts = append(parts, fmt.Sprintf("%dw", weeks))
	}
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}

	if len(parts) == 0 {
		return "0m"
	}
	return strings.Join(parts, " ")
}

// NextQuarterHour returns the first quarter-hour boundary (:00, :15, :30, :45)
// on or after t. A t exactly on a boundary is returned unchanged.
func NextQuarterHour(t time.Time) time.Time {
	boundary := t.Truncate(time.Minute)
	for boundary.Minute()%15 != 0 {
		boundary = boundary.Add(time.Minute)
	}
	if boundary.Before(t) {
		boundary = boundary.Add(15 * time.Minute)
	}
	return boundary
}

// WeekStart returns Monday 00:00 of the week containing t, in t's location
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}
