package errors

import (
	"errors"
)

// IsCritical checks if error is critical severity
func IsCritical(err error) bool {
	var fmtErr FormatterError
	if errors.As(err, &fmtErr) {
		return fmtErr.Severity() == Critical
	}
	return false
}

// IsDataError checks if error is input-data-related
func IsDataError(err error) bool {
	var dataErr *DataError
	return errors.As(err, &dataErr)
}

// IsSystemError checks if error is configuration/system-related
func IsSystemError(err error) bool {
	var sysErr *SystemError
	return errors.As(err, &sysErr)
}

// GetErrorCode extracts error code from FormatterError, returns "UNKNOWN" for other errors
func GetErrorCode(err error) string {
	var fmtErr FormatterError
	if errors.As(err, &fmtErr) {
		return fmtErr.Code()
	}
	return "UNKNOWN"
}

// LogContext returns zap-style key/value pairs describing a FormatterError,
// suitable for SugaredLogger *w variants. Non-FormatterError values get a
// minimal context.
func LogContext(err error) []interface{} {
	var fmtErr FormatterError
	if !errors.As(err, &fmtErr) {
		return []interface{}{"error", err.Error()}
	}
	ctx := fmtErr.Context()
	return []interface{}{
		"error", fmtErr.Error(),
		"code", fmtErr.Code(),
		"severity", fmtErr.Severity().String(),
		"component", ctx.Component,
		"operation", ctx.Operation,
	}
}
