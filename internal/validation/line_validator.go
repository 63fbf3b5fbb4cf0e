package validation

import (
	"strings"

	"wogger/internal/domain"
)

const lineFormat = "YYYY-MM-DD HH:MM - HH:MM | task"

// LineValidator validates manually entered log lines
type LineValidator struct {
	validator *Validator
}

// NewLineValidator creates a new line validator
func NewLineValidator() *LineValidator {
	return &LineValidator{
		validator: NewValidator(),
	}
}

// ValidateManualLine checks the grammar, a real calendar date, valid clock
// times, the literal "-" separator and a non-empty task. The sign of the
// duration is not checked.
func (lv *LineValidator) ValidateManualLine(text string) error {
	validationError := NewValidationError()

	if strings.ContainsAny(strings.TrimSpace(text), "\r\n") {
		validationError.AddInvalidFormatError("line", text, "a single line")
		return validationError
	}

	tokens, err := domain.TokenizeLine(text)
	if err != nil {
		validationError.AddInvalidFormatError("line", text, lineFormat)
		return validationError
	}

	if !lv.validator.IsValidDate(tokens.Date) {
		validationError.AddInvalidFormatError("date", tokens.Date, "YYYY-MM-DD")
	}
	if !lv.validator.IsValidClock(tokens.Start) {
		validationError.AddInvalidFormatError("start_time", tokens.Start, "HH:MM")
	}
	if tokens.Separator != domain.Separator {
		validationError.AddInvalidValueError("separator", tokens.Separator, `must be "-"`)
	}
	if !lv.validator.IsValidClock(tokens.End) {
		validationError.AddInvalidFormatError("end_time", tokens.End, "HH:MM")
	}
	if !lv.validator.IsNonEmptyString(tokens.Task) {
		validationError.AddRequiredError("task")
	}

	return validationError.ErrOrNil()
}

// IsValidManualLine reports whether ValidateManualLine accepts text
func (lv *LineValidator) IsValidManualLine(text string) bool {
	return lv.ValidateManualLine(text) == nil
}
