// Package config loads service configuration from the environment.
package config

import (
	"os"
	"time"
)

type Config struct {
	APIPort  string
	LogLevel string

	// StorageDriver selects the result store: memory, sqlite, or postgres.
	StorageDriver string
	SQLitePath    string
	PostgresDSN   string

	// Classification provider. An absent or malformed key routes every
	// request to the keyword fallback classifier.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// Music catalog provider. Absent credentials route every request to the
	// static fallback catalog.
	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyBaseURL      string
	SpotifyAuthURL      string

	// ProviderTimeout bounds each outbound provider call; a timeout is
	// treated like any other provider failure.
	ProviderTimeout time.Duration
}

func Load() Config {
	return Config{
		APIPort:  envOr("API_PORT", "8080"),
		LogLevel: envOr("LOG_LEVEL", "info"),

		StorageDriver: envOr("STORAGE_DRIVER", "memory"),
		SQLitePath:    envOr("SQLITE_PATH", "moodtune.db"),
		PostgresDSN:   os.Getenv("POSTGRES_DSN"),

		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: os.Getenv("OPENAI_BASE_URL"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4o"),

		SpotifyClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
		SpotifyClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		SpotifyBaseURL:      os.Getenv("SPOTIFY_BASE_URL"),
		SpotifyAuthURL:      os.Getenv("SPOTIFY_AUTH_URL"),

		ProviderTimeout: envOrDuration("PROVIDER_TIMEOUT", 5*time.Second),
	}
}

func envOr(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envOrDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
