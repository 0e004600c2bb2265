package errors

import (
	"fmt"
	"time"
)

// Severity levels for error classification
type Severity int

const (
	// Info - Notable events for monitoring/debugging (non-blocking)
	Info Severity = iota
	// Warning - Issue detected but operation succeeded with degraded quality
	Warning
	// Error - Operation failed but the caller can continue with other input
	Error
	// Critical - Process cannot continue, requires operator attention
	Critical
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ErrorContext provides structured context for debugging and monitoring
type ErrorContext struct {
	Component string                 `json:"component"` // Which package (e.g. "u256str", "config", "server")
	Operation string                 `json:"operation"` // What operation (e.g. "ParseHex", "LoadConfig")
	Input     string                 `json:"input,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// FormatterError is the error interface for the formatting toolchain.
//
// The conversion functions themselves never fail; errors occur only at the
// boundaries that parse caller input or load configuration.
//
// Usage Guidelines:
// - Use DataError for unparseable or out-of-range input (caller's fault)
// - Use SystemError for configuration and startup failures
//
// Error Handling Patterns:
// - Check error type with errors.As() or type assertions
// - Use Severity() for logging level and alerting
// - Use Code() for metrics and monitoring
// - Use Context() for debugging and tracing
type FormatterError interface {
	error

	// Code returns a standardized error code for monitoring/metrics
	Code() string

	// Severity returns the severity level for logging and alerting
	Severity() Severity

	// Context returns structured context for debugging
	Context() ErrorContext

	// Unwrap returns the underlying error for error wrapping
	Unwrap() error
}

// baseError provides common functionality for all error types
type baseError struct {
	code       string
	message    string
	severity   Severity
	context    ErrorContext
	underlying error
}

func (e *baseError) Error() string {
	if e.underlying != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.underlying)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *baseError) Code() string          { return e.code }
func (e *baseError) Severity() Severity    { return e.severity }
func (e *baseError) Context() ErrorContext { return e.context }
func (e *baseError) Unwrap() error         { return e.underlying }

// DataError represents input parsing and validation failures
//
// Usage: Use for strings that are not valid decimal/hex numbers or that do
// not fit in 256 bits
// Examples: empty value, "0xzz", a 79-digit decimal constant
type DataError struct {
	*baseError
}

// SystemError represents configuration and startup failures
//
// Usage: Use for invalid configuration values that prevent the service or
// CLI from running
// Examples: negative hex width, malformed URI template, port out of range
type SystemError struct {
	*baseError
}
