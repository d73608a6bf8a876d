package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration for the signals radar service.
type Config struct {
	ListenAddr      string
	StaticDataPath  string
	ThemePath       string
	SnapshotDBPath  string
	TabularBaseURL  string
	TabularAPIKey   string
	TabularTable    string
	FetchMaxRetries int
}

// FromEnv creates a configuration instance sourced from environment
// variables, with a .env overlay when present.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:      getEnv("RADAR_LISTEN_ADDR", ":8080"),
		StaticDataPath:  getEnv("RADAR_STATIC_DATA", "data/sample_signals.json"),
		ThemePath:       getEnv("RADAR_THEME", ""),
		SnapshotDBPath:  getEnv("RADAR_SNAPSHOT_DB", "radar_snapshots.db"),
		TabularBaseURL:  getEnv("RADAR_TABULAR_BASE_URL", ""),
		TabularAPIKey:   getEnv("RADAR_TABULAR_API_KEY", ""),
		TabularTable:    getEnv("RADAR_TABULAR_TABLE", "Signals"),
		FetchMaxRetries: 3,
	}

	if retries := os.Getenv("RADAR_FETCH_MAX_RETRIES"); retries != "" {
		if _, err := fmt.Sscanf(retries, "%d", &cfg.FetchMaxRetries); err != nil {
			return Config{}, fmt.Errorf("parse RADAR_FETCH_MAX_RETRIES: %w", err)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
