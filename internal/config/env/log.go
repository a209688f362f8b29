package env

import (
	"casino_showcase/internal/config"
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
)

const (
	logLevelEnvName = "LOG_LEVEL"
)

type logConfig struct {
	level zapcore.Level
}

func NewLogConfig() (config.LogConfig, error) {
	raw := os.Getenv(logLevelEnvName)
	if len(raw) == 0 {
		return &logConfig{level: zapcore.InfoLevel}, nil
	}

	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	return &logConfig{
		level: level,
	}, nil
}

func (cfg *logConfig) Level() zapcore.Level {
	return cfg.level
}
