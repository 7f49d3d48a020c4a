package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Paths    PathsConfig
	Pipeline PipelineConfig
	Watch    WatchConfig
	LogLevel string
}

type PathsConfig struct {
	// InputDir holds the extraction artifacts (.txt / .xlsx) to process.
	InputDir string
	// OutputDir receives the generated import CSVs.
	OutputDir string
	// ProfileFile optionally replaces the built-in vendor profiles.
	ProfileFile string
	// StoreMapFile is the site-code/name to store-id mapping CSV.
	StoreMapFile string
}

type PipelineConfig struct {
	Concurrency int
	// Vendor forces a profile key and bypasses detection when set.
	Vendor string
}

type WatchConfig struct {
	Enabled bool
	// Schedule is a standard 5-field cron expression.
	Schedule string
}

// Load reads configuration from the environment, honoring a .env file
// in the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Paths: PathsConfig{
			InputDir:     getEnv("PO_INPUT_DIR", "inbox"),
			OutputDir:    getEnv("PO_OUTPUT_DIR", "out"),
			ProfileFile:  getEnv("PO_PROFILE_FILE", ""),
			StoreMapFile: getEnv("PO_STORE_MAP_FILE", ""),
		},
		Pipeline: PipelineConfig{
			Concurrency: getEnvAsInt("PO_CONCURRENCY", 4),
			Vendor:      getEnv("PO_VENDOR", ""),
		},
		Watch: WatchConfig{
			Enabled:  getEnvAsBool("PO_WATCH_ENABLED", false),
			Schedule: getEnv("PO_WATCH_SCHEDULE", "*/5 * * * *"),
		},
		LogLevel: getEnv("PO_LOG_LEVEL", "info"),
	}

	if cfg.Paths.InputDir == "" {
		return nil, errors.New("PO_INPUT_DIR is required")
	}
	if cfg.Pipeline.Concurrency < 1 {
		return nil, errors.New("PO_CONCURRENCY must be at least 1")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
