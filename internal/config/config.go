// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	App      AppConfig
}

// DatabaseConfig holds the embedded SQLite store settings.
type DatabaseConfig struct {
	// Path is the database file. With InMemory it is the name of a shared
	// in-memory database instead.
	Path          string
	InMemory      bool
	BusyTimeoutMS int
	Debug         bool
}

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string
	Lang     string
	// AreaCode is the DDD prepended to local phone numbers when building
	// WhatsApp links.
	AreaCode string
}

// DSN returns the go-sqlite3 connection string. Foreign keys are always
// enabled since cascade deletes depend on them.
func (d DatabaseConfig) DSN() string {
	params := []string{"_foreign_keys=1"}
	if d.BusyTimeoutMS > 0 {
		params = append(params, fmt.Sprintf("_busy_timeout=%d", d.BusyTimeoutMS))
	}
	if d.InMemory {
		return fmt.Sprintf("file:%s?mode=memory&cache=shared&%s", d.Path, strings.Join(params, "&"))
	}
	params = append(params, "_journal_mode=WAL")
	return fmt.Sprintf("file:%s?%s", d.Path, strings.Join(params, "&"))
}

// Load reads configuration from environment variables.
// It uses sensible defaults for a single-device install.
func Load() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:          getEnv("DB_PATH", "oficina.db"),
			InMemory:      getEnvBool("DB_IN_MEMORY", false),
			BusyTimeoutMS: getEnvInt("DB_BUSY_TIMEOUT_MS", 5000),
			Debug:         getEnvBool("DB_DEBUG", false),
		},
		App: AppConfig{
			LogLevel: getEnv("LOG_LEVEL", "info"),
			Lang:     getEnv("APP_LANG", "pt"),
			AreaCode: getEnv("DEFAULT_AREA_CODE", "67"),
		},
	}
}

// getEnv returns the value of an environment variable or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool returns the boolean value of an environment variable or a default.
// Accepts "1", "true", "yes" as true; everything else is false.
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "1" || value == "true" || value == "yes"
}
