package validation

import (
	"fmt"
	"strings"
)

// SettingsValidator validates user settings values
type SettingsValidator struct {
	validator *Validator
}

// NewSettingsValidator creates a new settings validator
func NewSettingsValidator() *SettingsValidator {
	return &SettingsValidator{
		validator: NewValidator(),
	}
}

// ValidateCron is a syntactic sanity check: exactly five whitespace-separated
// fields, each empty or all digits once "*", "," and "-" are removed.
func (sv *SettingsValidator) ValidateCron(expr string) error {
	validationError := NewValidationError()

	fields := strings.Fields(expr)
	if len(fields) != 5 {
		validationError.AddInvalidFormatError("popup_cron", expr, "5 space-separated fields")
		return validationError
	}

	stripper := strings.NewReplacer("*", "", ",", "", "-", "")
	for i, field := range fields {
		rest := stripper.Replace(field)
		if rest != "" && !sv.validator.IsDigits(rest) {
			validationError.AddInvalidValueError("popup_cron", expr,
				fmt.Sprintf("field %d (%q) may only contain digits, '*', ',' and '-'", i+1, field))
		}
	}

	return validationError.ErrOrNil()
}

// IsValidCron reports whether ValidateCron accepts expr
func (sv *SettingsValidator) IsValidCron(expr string) bool {
	return sv.ValidateCron(expr) == nil
}

// ValidateWorkSchedule checks weekday keys and non-negative minutes
func (sv *SettingsValidator) ValidateWorkSchedule(schedule map[string]int) error {
	validationError := NewValidationError()

	for day, minutes := range schedule {
		field := "work_schedule." + day
		if !sv.validator.IsWeekday(day) {
			validationError.AddInvalidValueError(field, day, "not a weekday name")
			continue
		}
		if minutes < 0 || minutes > 24*60 {
			validationError.AddInvalidRangeError(field, minutes, "must be between 0 and 1440 minutes")
		}
	}

	return validationError.ErrOrNil()
}

// ValidateFormatting checks the divisors used for pretty totals
func (sv *SettingsValidator) ValidateFormatting(workDayMinutes, daysInWeek int) error {
	validationError := NewValidationError()

	if workDayMinutes <= 0 || workDayMinutes > 24*60 {
		validationError.AddInvalidRangeError("standart_work_day", workDayMinutes, "must be between 1 and 1440 minutes")
	}
	if daysInWeek <= 0 || daysInWeek > 7 {
		validationError.AddInvalidRangeError("standart_days_in_week", daysInWeek, "must be between 1 and 7")
	}

	return validationError.ErrOrNil()
}
