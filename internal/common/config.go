package common

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	Batch  BatchConfig
	Export ExportConfig
}

// BatchConfig holds batch-driver configuration
type BatchConfig struct {
	Workers     int
	IncludeExts []string
	SkipHidden  bool
}

// ExportConfig holds tabular-export configuration
type ExportConfig struct {
	SheetName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Batch: BatchConfig{
			Workers:     getEnvAsInt("BATCH_WORKERS", runtime.GOMAXPROCS(0)),
			IncludeExts: getEnvAsSlice("BATCH_EXTENSIONS", []string{"pdf"}),
			SkipHidden:  getEnvAsBool("BATCH_SKIP_HIDDEN", true),
		},
		Export: ExportConfig{
			SheetName: getEnv("EXPORT_SHEET_NAME", "Acordaos"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Batch.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "BATCH_WORKERS must be at least 1", ErrInvalidInput)
	}
	if len(c.Batch.IncludeExts) == 0 {
		return NewAppError("CONFIG_ERROR", "BATCH_EXTENSIONS must not be empty", ErrInvalidInput)
	}
	if c.Export.SheetName == "" {
		return NewAppError("CONFIG_ERROR", "EXPORT_SHEET_NAME is required", ErrInvalidInput)
	}
	return nil
}
