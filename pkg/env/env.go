// Package env consolidates all environment variable reading for the
// application. Values are read once at startup; flags take precedence over
// the environment.
package env

import (
	"os"
	"strings"
)

// Environment variable names (single source of truth)
const (
	StoragePath = "CASC_STORAGE_PATH"
	Locale      = "CASC_LOCALE"
	OutputDir   = "CASC_OUTPUT_DIR"
	Product     = "CASC_PRODUCT"
	Zerofill    = "CASC_ZEROFILL_ENCRYPTED"
	LOGLevel    = "LOG_LEVEL"
)

// LogLevel returns LOG_LEVEL with default "INFO" (for early logger init).
func LogLevel() string {
	if v := os.Getenv(LOGLevel); v != "" {
		return v
	}
	return "INFO"
}

// Options holds the startup values that can come from the environment.
type Options struct {
	StoragePath string
	Locale      string
	OutputDir   string
	Product     string
	Zerofill    bool
	LogLevel    string
}

// ReadOptions reads all relevant environment variables once.
func ReadOptions() Options {
	return Options{
		StoragePath: os.Getenv(StoragePath),
		Locale:      getEnv(Locale, "enUS"),
		OutputDir:   getEnv(OutputDir, "."),
		Product:     os.Getenv(Product),
		Zerofill:    getEnvBool(Zerofill, false),
		LogLevel:    LogLevel(),
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.ToLower(v) == "true" || v == "1"
	}
	return defaultVal
}
