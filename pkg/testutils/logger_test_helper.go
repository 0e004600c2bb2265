package testutils

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestLoggerSetup holds the test logger and buffer for log capture
type TestLoggerSetup struct {
	Logger *zap.SugaredLogger
	Buffer *bytes.Buffer
	t      *testing.T
}

// NewTestLogger creates a logger that writes to a buffer for testing
func NewTestLogger(t *testing.T) *TestLoggerSetup {
	buffer := &bytes.Buffer{}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"
	encoderConfig.LevelKey = "level"
	encoderConfig.TimeKey = "timestamp"

	// JSON output is easier to assert on than console output
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(buffer),
		zapcore.DebugLevel,
	)

	return &TestLoggerSetup{
		Logger: zap.New(core).Sugar(),
		Buffer: buffer,
		t:      t,
	}
}

// GetLogOutput returns the current log output as a string
func (tls *TestLoggerSetup) GetLogOutput() string {
	return tls.Buffer.String()
}

// ClearBuffer clears the log buffer
func (tls *TestLoggerSetup) ClearBuffer() {
	tls.Buffer.Reset()
}

// AssertLogContains checks if the log output contains the expected message
func (tls *TestLoggerSetup) AssertLogContains(expectedMessage string) {
	tls.t.Helper()
	output := tls.GetLogOutput()
	if !strings.Contains(output, expectedMessage) {
		tls.t.Errorf("Expected log to contain '%s', but got:\n%s", expectedMessage, output)
	}
}

// AssertLogLevel checks if a log entry with the specified level exists
func (tls *TestLoggerSetup) AssertLogLevel(level string) {
	tls.t.Helper()
	output := tls.GetLogOutput()
	if strings.Contains(output, `"level":"`+level+`"`) {
		return
	}
	tls.t.Errorf("Expected log to contain level '%s', but got:\n%s", level, output)
}
