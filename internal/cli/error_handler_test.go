package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "wogger/internal/errors"
	"wogger/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	lineErr := validation.NewValidationError()
	lineErr.AddRequiredError("task")

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Validation error",
			operation: "add line",
			err:       lineErr,
			expected:  "failed to add line: " + lineErr.GetUserFriendlyMessage(),
		},
		{
			name:      "Invalid input error",
			operation: "export",
			err:       apperrors.NewInvalidInputError("format", "xml", "expected csv, json or sqlite"),
			expected:  "failed to export: invalid input for format: expected csv, json or sqlite",
		},
		{
			name:      "Database error",
			operation: "export",
			err:       apperrors.NewDatabaseError("insert", errors.New("locked")),
			expected:  "failed to export: A database error occurred while exporting. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "watch",
			err:       errors.New("regular error"),
			expected:  "failed to watch: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, eh.Handle(tt.operation, tt.err), tt.expected)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, eh.Handle("anything", nil))
	})

	t.Run("plain errors stay unwrappable", func(t *testing.T) {
		base := errors.New("base")
		assert.ErrorIs(t, eh.Handle("op", base), base)
	})
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()

	assert.NoError(t, eh.HandleSimple(nil))
	assert.EqualError(t, eh.HandleSimple(errors.New("plain")), "plain")

	err := eh.HandleSimple(apperrors.NewInvalidIntervalError("10:00", "09:00", -60))
	assert.Contains(t, err.Error(), "negative duration (-60 min)")
	assert.Contains(t, err.Error(), "edit time_log.txt")
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	lineErr := validation.NewValidationError()
	lineErr.AddRequiredError("task")
	intervalErr := apperrors.NewInvalidIntervalError("10:00", "09:00", -60)

	assert.True(t, eh.IsValidationError(lineErr))
	assert.True(t, eh.IsValidationError(apperrors.NewValidationError("bad", nil)))
	assert.False(t, eh.IsValidationError(intervalErr))

	assert.True(t, eh.IsIntervalError(intervalErr))
	assert.False(t, eh.IsIntervalError(errors.New("other")))

	assert.Equal(t, "NEGATIVE_INTERVAL", eh.GetErrorCode(intervalErr))
	assert.Equal(t, "UNKNOWN_ERROR", eh.GetErrorCode(errors.New("other")))
}
