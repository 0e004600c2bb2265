package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Sugar is the process-wide logger. Call Init once at startup before use.
var Sugar *zap.SugaredLogger

// Init builds the global logger. Development mode enables debug-level
// output; production mode logs at info and above. Both write console
// output to stdout.
func Init(development bool) {
	zapLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	if development {
		zapLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	config := zap.Config{
		Level:            zapLevel,
		Development:      development,
		Encoding:         "console",
		EncoderConfig:    encoderConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := config.Build()
	if err != nil {
		panic(err)
	}
	Sugar = logger.Sugar()
}
