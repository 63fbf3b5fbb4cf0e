package validation

import (
	"strings"
	"time"

	"wogger/internal/timecalc"
)

// Weekdays lists the work_schedule keys Monday through Sunday
var Weekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidDate checks for a real calendar date in YYYY-MM-DD form
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.Parse(timecalc.DateLayout, s)
	return err == nil
}

// IsValidClock checks for a 24-hour HH:MM time
func (v *Validator) IsValidClock(s string) bool {
	_, err := timecalc.ParseClock(s)
	return err == nil
}

// IsWeekday checks for an English weekday name as used in work_schedule
func (v *Validator) IsWeekday(s string) bool {
	for _, day := range Weekdays {
		if day == s {
			return true
		}
	}
	return false
}

// IsDigits reports whether s is non-empty and only ASCII digits
func (v *Validator) IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
