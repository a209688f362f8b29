package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New - production логгер в stderr, stdout остается под вывод демонстрации
func New(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	return cfg.Build()
}
