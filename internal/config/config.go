package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DBPath             string
	APIPort            string
	LogLevel           slog.Level
	LogFormat          string
	MatchTopK          int
	FuzzyBackend       string
	ResponseCacheSize  int
	CORSAllowedOrigins []string
	QdrantURL          string
	QdrantCollection   string
	SeedFile           string
	ServerURL          string
}

const maxTopK = 20

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates the numeric ones.
// If a .env file exists in the current directory or a parent directory, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	// Walk up a few levels looking for the project's .env
	wd, err := os.Getwd()
	if err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		DBPath:             getEnv("DB_PATH", "./data/faqbot.db"),
		APIPort:            getEnv("API_PORT", "8000"),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "text")),
		FuzzyBackend:       strings.ToLower(getEnv("FUZZY_BACKEND", "levenshtein")),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		QdrantURL:          getEnv("QDRANT_URL", ""),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "faq_tfidf"),
		SeedFile:           getEnv("SEED_FILE", ""),
	}
	// faqctl asks the running server at this address to reload the index
	cfg.ServerURL = strings.TrimRight(getEnv("FAQBOT_SERVER_URL", "http://localhost:"+cfg.APIPort), "/")

	level, err := parseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	topK, err := strconv.Atoi(getEnv("MATCH_TOP_K", "3"))
	if err != nil {
		return nil, fmt.Errorf("MATCH_TOP_K must be a valid integer: %w", err)
	}
	if topK <= 0 || topK > maxTopK {
		return nil, fmt.Errorf("MATCH_TOP_K must be between 1 and %d", maxTopK)
	}
	cfg.MatchTopK = topK

	cacheSize, err := strconv.Atoi(getEnv("RESPONSE_CACHE_SIZE", "512"))
	if err != nil {
		return nil, fmt.Errorf("RESPONSE_CACHE_SIZE must be a valid integer: %w", err)
	}
	if cacheSize < 0 {
		return nil, fmt.Errorf("RESPONSE_CACHE_SIZE must not be negative")
	}
	cfg.ResponseCacheSize = cacheSize

	// Create the data directory for the sqlite file
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL is invalid: %w", err)
	}
	return level, nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
