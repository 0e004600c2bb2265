package errors

import (
	"time"
)

// Error code constants for monitoring and metrics
const (
	// Data error codes
	CodeInvalidDecimal = "INVALID_DECIMAL"
	CodeInvalidHex     = "INVALID_HEX"
	CodeValueOverflow  = "VALUE_OVERFLOW"

	// System error codes
	CodeInvalidConfig = "INVALID_CONFIG"
)

// DataError constructors

// NewInvalidDecimal creates an error for inputs that are not valid base-10 numbers
func NewInvalidDecimal(component, operation, input string, underlying error, ctx ...ContextOption) FormatterError {
	message := "Invalid decimal format: " + input
	return &DataError{
		baseError: newBaseError(CodeInvalidDecimal, message, Error,
			component, operation, input, underlying, ctx...),
	}
}

// NewInvalidHex creates an error for inputs that are not valid base-16 numbers
func NewInvalidHex(component, operation, input string, underlying error, ctx ...ContextOption) FormatterError {
	message := "Invalid hexadecimal format: " + input
	return &DataError{
		baseError: newBaseError(CodeInvalidHex, message, Error,
			component, operation, input, underlying, ctx...),
	}
}

// NewValueOverflow creates an error for numbers that do not fit in 256 bits
func NewValueOverflow(component, operation, input string, underlying error, ctx ...ContextOption) FormatterError {
	return &DataError{
		baseError: newBaseError(CodeValueOverflow, "Value does not fit in 256 bits", Error,
			component, operation, input, underlying, ctx...),
	}
}

// SystemError constructors

// NewInvalidConfig creates an error for configuration issues
func NewInvalidConfig(component, operation, issue string, underlying error, ctx ...ContextOption) FormatterError {
	message := "Configuration error: " + issue
	return &SystemError{
		baseError: newBaseError(CodeInvalidConfig, message, Critical,
			component, operation, issue, underlying, ctx...),
	}
}

// Helper functions

// newBaseError creates a baseError with consistent context
func newBaseError(code, message string, severity Severity,
	component, operation, input string, underlying error, contextOptions ...ContextOption) *baseError {

	context := ErrorContext{
		Component: component,
		Operation: operation,
		Input:     input,
		Timestamp: time.Now(),
		Metadata:  make(map[string]interface{}),
	}

	// Apply context options
	for _, opt := range contextOptions {
		opt(&context)
	}

	return &baseError{
		code:       code,
		message:    message,
		severity:   severity,
		context:    context,
		underlying: underlying,
	}
}

// ContextOption allows flexible context configuration
type ContextOption func(*ErrorContext)

// WithMetadata adds arbitrary metadata to error context
func WithMetadata(key string, value interface{}) ContextOption {
	return func(ctx *ErrorContext) {
		if ctx.Metadata == nil {
			ctx.Metadata = make(map[string]interface{})
		}
		ctx.Metadata[key] = value
	}
}
