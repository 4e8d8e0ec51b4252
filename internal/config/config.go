package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Sheet    SheetConfig
	Cache    CacheConfig
	CORS     CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds snapshot database configuration
type DatabaseConfig struct {
	Path string
}

// SheetConfig holds the spreadsheet source configuration
type SheetConfig struct {
	URL             string
	Worksheets      []string // First entry is the default worksheet
	CurrencyPrefix  string
	RefreshSchedule string // cron expression for the background refresh
}

// CacheConfig holds loader cache configuration
type CacheConfig struct {
	TTL       time.Duration
	RedisAddr string // Empty disables the Redis tier
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	sheetURL := os.Getenv("SHEET_URL")
	if sheetURL == "" {
		return nil, fmt.Errorf("SHEET_URL is required")
	}

	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "15m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/holdings_dashboard.db"),
		},
		Sheet: SheetConfig{
			URL:             sheetURL,
			Worksheets:      splitList(getEnv("SHEET_WORKSHEETS", "Sheet1")),
			CurrencyPrefix:  getEnv("CURRENCY_PREFIX", "$"),
			RefreshSchedule: getEnv("REFRESH_SCHEDULE", "*/15 * * * *"),
		},
		Cache: CacheConfig{
			TTL:       cacheTTL,
			RedisAddr: getEnv("REDIS_ADDR", ""),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	if len(config.Sheet.Worksheets) == 0 {
		return nil, fmt.Errorf("SHEET_WORKSHEETS must name at least one worksheet")
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// splitList splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
