package config

import (
	"log/slog"
	"os"
	"strings"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	// Path to a YAML process config; empty uses the embedded defaults.
	ProcessConfigPath string

	// Logging
	LogFile  string
	LogLevel slog.Level

	// Path of a Prometheus textfile written after each command; empty
	// disables the export.
	MetricsFile string
}

// Load reads configuration from environment variables.
func Load() Config {
	return Config{
		ProcessConfigPath: getEnv("SMARTTWIN_PROCESS_CONFIG", ""),
		LogFile:           getEnv("SMARTTWIN_LOG_FILE", ""),
		LogLevel:          parseLogLevel(getEnv("SMARTTWIN_LOG_LEVEL", "WARN")),
		MetricsFile:       getEnv("SMARTTWIN_METRICS_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
