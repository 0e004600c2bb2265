package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestInit_Development(t *testing.T) {
	Init(true)

	if Sugar == nil {
		t.Fatal("Sugar logger should not be nil after Init")
	}

	// Test that we can log without panicking
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Logging should not panic: %v", r)
		}
	}()

	Sugar.Debug("Test debug message")
	Sugar.Info("Test info message")
	Sugar.Warn("Test warn message")
	Sugar.Error("Test error message")
}

func TestInit_Production(t *testing.T) {
	Init(false)

	if Sugar == nil {
		t.Fatal("Sugar logger should not be nil after Init")
	}

	if Sugar.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("Production logger should not enable debug level")
	}
}
