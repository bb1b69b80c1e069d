package logger

import "go.uber.org/zap"

// NewLogger builds the application logger. When filePath is non-empty the
// output is duplicated into that file next to stdout.
func NewLogger(filePath string) *zap.Logger {
	outputs := []string{"stdout"}
	if filePath != "" {
		outputs = append(outputs, filePath)
	}

	cfg := zap.Config{
		Encoding:         "console",
		Level:            zap.NewAtomicLevelAt(zap.DebugLevel),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}

	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}

	return l
}
