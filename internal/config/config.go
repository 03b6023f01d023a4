// Package config resolves the service configuration from the environment.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// LegacyDataFile is the pre-existing document some deployments still carry
// in the working directory. It wins over the default path when present.
const LegacyDataFile = "Tarih.json"

// DefaultDataFile is where a fresh deployment keeps its document.
const DefaultDataFile = "data/schedule.json"

type Config struct {
	ServerAddress   string
	DataFile        string
	StaticDir       string
	LogLevel        string
	ShutdownTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ServerAddress:   getEnv("SERVER_ADDRESS", ":3000"),
		DataFile:        ResolveDataFile(os.Getenv("SCHEDULE_FILE"), LegacyDataFile, DefaultDataFile),
		StaticDir:       getEnv("STATIC_DIR", "public"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: 5 * time.Second,
	}
}

// ResolveDataFile picks the schedule document using the fixed precedence
// {explicit override, legacy path if it exists, default path}.
func ResolveDataFile(override, legacy, fallback string) string {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return override
		}
		return abs
	}
	if _, err := os.Stat(legacy); err == nil {
		return legacy
	}
	return fallback
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
