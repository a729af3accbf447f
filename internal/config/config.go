package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	APIPort string

	GitHubToken      string // optional; GraphQL is skipped without it
	GitHubGraphQLURL string
	GitHubBaseURL    string

	IndexPath      string // index file served and watched by the API
	SearchIndexURL string // index source for the terminal client; falls back to IndexPath
	SiteURL        string

	DBPath                 string
	ContributionsCacheTTL  time.Duration
	ContributionsCacheSize int
	UpstreamRPS            float64

	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates numeric fields.
// If a .env file exists in the current directory or a parent, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		APIPort:          getEnv("API_PORT", "9000"),
		GitHubToken:      getEnv("GITHUB_TOKEN", ""),
		GitHubGraphQLURL: getEnv("GITHUB_GRAPHQL_URL", "https://api.github.com/graphql"),
		GitHubBaseURL:    getEnv("GITHUB_BASE_URL", "https://github.com"),
		IndexPath:        getEnv("INDEX_PATH", filepath.Join("public", "search-index.json")),
		SearchIndexURL:   getEnv("SEARCH_INDEX_URL", ""),
		SiteURL:          getEnv("SITE_URL", "http://localhost:3000"),
		DBPath:           getEnv("DB_PATH", "./data/portfolio.db"),
	}
	logCfg := loadLogging()
	cfg.LogLevel = logCfg.Level
	cfg.LogFormat = logCfg.Format

	ttl, err := time.ParseDuration(getEnv("CONTRIBUTIONS_CACHE_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("CONTRIBUTIONS_CACHE_TTL must be a valid duration: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("CONTRIBUTIONS_CACHE_TTL must be greater than 0")
	}
	cfg.ContributionsCacheTTL = ttl

	size, err := strconv.Atoi(getEnv("CONTRIBUTIONS_CACHE_SIZE", "128"))
	if err != nil {
		return nil, fmt.Errorf("CONTRIBUTIONS_CACHE_SIZE must be a valid integer: %w", err)
	}
	if size <= 0 {
		return nil, fmt.Errorf("CONTRIBUTIONS_CACHE_SIZE must be greater than 0")
	}
	cfg.ContributionsCacheSize = size

	rps, err := strconv.ParseFloat(getEnv("UPSTREAM_RPS", "1"), 64)
	if err != nil {
		return nil, fmt.Errorf("UPSTREAM_RPS must be a valid number: %w", err)
	}
	if rps < 0 {
		return nil, fmt.Errorf("UPSTREAM_RPS must not be negative")
	}
	cfg.UpstreamRPS = rps

	return cfg, nil
}

// LoggingConfig holds the settings a tool needs to set up logging.
type LoggingConfig struct {
	Level  string
	Format string
}

// LoadLogging reads only LOG_LEVEL and LOG_FORMAT, with .env support. Tools
// that use nothing else call it instead of Load so unrelated settings
// cannot stop them.
func LoadLogging() LoggingConfig {
	loadDotEnv()
	return loadLogging()
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  getEnv("LOG_LEVEL", "info"),
		Format: getEnv("LOG_FORMAT", "auto"),
	}
}

// IndexSource returns where the terminal client loads the index from.
func (c *Config) IndexSource() string {
	if c.SearchIndexURL != "" {
		return c.SearchIndexURL
	}
	return c.IndexPath
}

// loadDotEnv loads the nearest .env file, searching the working directory
// and up to four parents.
func loadDotEnv() {
	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
