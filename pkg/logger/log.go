package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the console logger; filePath, when set, receives a copy of stdout.
func NewLogger(level, filePath string) *zap.Logger {
	atomicLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	if err := atomicLevel.UnmarshalText([]byte(level)); err != nil {
		atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	outputs := []string{"stdout"}
	if filePath != "" {
		outputs = append(outputs, filePath)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	dualConfig := zap.Config{
		Encoding:         "console",
		Level:            atomicLevel,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderConfig,
	}

	dualLogger, err := dualConfig.Build()
	if err != nil {
		panic(err)
	}

	return dualLogger
}
