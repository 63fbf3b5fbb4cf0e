package errors

import (
	"errors"
	"testing"
)

func TestErrorType_String(t *testing.T) {
	tests := []struct {
		name      string
		errorType ErrorType
		expected  string
	}{
		{"Validation", ErrorTypeValidation, "validation"},
		{"InvalidInput", ErrorTypeInvalidInput, "invalid_input"},
		{"InvalidInterval", ErrorTypeInvalidInterval, "invalid_interval"},
		{"Parse", ErrorTypeParse, "parse"},
		{"IO", ErrorTypeIO, "io"},
		{"Database", ErrorTypeDatabase, "database"},
		{"Unknown", ErrorType(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.errorType.String()
			if result != tt.expected {
				t.Errorf("ErrorType.String() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "Error without cause",
			appError: &AppError{
				Type:    ErrorTypeValidation,
				Message: "invalid input",
			},
			expected: "validation: invalid input",
		},
		{
			name: "Error with cause",
			appError: &AppError{
				Type:    ErrorTypeIO,
				Message: "append to time_log.txt",
				Cause:   errors.New("disk full"),
			},
			expected: "io: append to time_log.txt (caused by: disk full)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.appError.Error()
			if result != tt.expected {
				t.Errorf("AppError.Error() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	appError := &AppError{
		Type:    ErrorTypeIO,
		Message: "wrapped error",
		Cause:   cause,
	}

	if appError.Unwrap() != cause {
		t.Errorf("AppError.Unwrap() = %v, want %v", appError.Unwrap(), cause)
	}
	if !errors.Is(appError, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}

func TestAppError_Is(t *testing.T) {
	err := NewInvalidIntervalError("10:00", "09:45", -15)

	if !errors.Is(err, ErrNegativeInterval) {
		t.Error("invalid interval error should match ErrNegativeInterval")
	}

	other := NewParseError("time", "25:00", nil)
	if errors.Is(other, ErrNegativeInterval) {
		t.Error("parse error should not match ErrNegativeInterval")
	}

	if err.Is(errors.New("plain")) {
		t.Error("AppError should not match a plain error")
	}
}

func TestAppError_IsType(t *testing.T) {
	err := &AppError{Type: ErrorTypeParse}

	if !err.IsType(ErrorTypeParse) {
		t.Error("IsType(ErrorTypeParse) should be true")
	}
	if err.IsType(ErrorTypeIO) {
		t.Error("IsType(ErrorTypeIO) should be false")
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation}
	err.WithContext("line", "garbage").WithContext("number", 3)

	if len(err.Context) != 2 {
		t.Fatalf("Context should have 2 entries, got %d", len(err.Context))
	}
	if err.Context["line"] != "garbage" {
		t.Errorf("Context[line] = %v, want garbage", err.Context["line"])
	}
}

func TestAppError_GetContext(t *testing.T) {
	err := &AppError{Type: ErrorTypeValidation}

	if _, ok := err.GetContext("missing"); ok {
		t.Error("GetContext on nil context should report missing")
	}

	err.WithContext("key", "value")
	value, ok := err.GetContext("key")
	if !ok || value != "value" {
		t.Errorf("GetContext(key) = %v, %v; want value, true", value, ok)
	}
}
