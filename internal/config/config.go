package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service
type Config struct {
	Port    string
	GinMode string

	// Optional Redis for response memoization and metrics.
	// Empty means the service runs without a cache.
	RedisURL string

	// Required API keys. TMDB_API_KEY is the only one any consumed
	// endpoint uses; the other two are part of the startup contract.
	TMDBAPIKey    string
	YouTubeAPIKey string
	RapidAPIKey   string

	TMDBBaseURL   string
	TMDBImageBase string

	AdminAPIKey string

	// Grid shape and detail section caps.
	GridLimit           int
	GridColumns         int
	CastLimit           int
	ProviderLimit       int
	RecommendationLimit int
	CreditsLimit        int
	GalleryLimit        int

	HTTPTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is merged in first. It fails when any of the three
// required API keys is missing.
func Load() (*Config, error) {
	// Ignore error if no .env file exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		RedisURL:      os.Getenv("REDIS_URL"),
		TMDBAPIKey:    os.Getenv("TMDB_API_KEY"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		RapidAPIKey:   os.Getenv("RAPIDAPI_KEY"),
		TMDBBaseURL:   getEnv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		TMDBImageBase: getEnv("TMDB_IMAGE_BASE", "https://image.tmdb.org/t/p"),
		AdminAPIKey:   os.Getenv("ADMIN_API_KEY"),

		GridLimit:           getEnvInt("GRID_LIMIT", 8),
		GridColumns:         getEnvInt("GRID_COLUMNS", 4),
		CastLimit:           getEnvInt("CAST_LIMIT", 5),
		ProviderLimit:       getEnvInt("PROVIDER_LIMIT", 6),
		RecommendationLimit: getEnvInt("RECOMMENDATION_LIMIT", 5),
		CreditsLimit:        getEnvInt("CREDITS_LIMIT", 5),
		GalleryLimit:        getEnvInt("GALLERY_LIMIT", 5),

		HTTPTimeout: 10 * time.Second,
	}

	for _, required := range []struct {
		name  string
		value string
	}{
		{"TMDB_API_KEY", cfg.TMDBAPIKey},
		{"YOUTUBE_API_KEY", cfg.YouTubeAPIKey},
		{"RAPIDAPI_KEY", cfg.RapidAPIKey},
	} {
		if required.value == "" {
			return nil, fmt.Errorf("missing required environment variable %s", required.name)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
