package config

import (
	"log/slog"
	"strings"
)

const (
	LogFormatPretty = "pretty"
	LogFormatJSON   = "json"
)

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"pretty"`
}

func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c LogConfig) Pretty() bool {
	return !strings.EqualFold(c.Format, LogFormatJSON)
}
