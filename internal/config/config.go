package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	// RepoPath is the root of the locale repository (<root>/<locale>/*.lang).
	RepoPath        string
	ReferenceLocale string
	WorkerCount     int
	DatabaseURL     string
	LogLevel        string
	// ShowMissingFiles logs a warning for every lang file that can't be found.
	ShowMissingFiles bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		RepoPath:         getEnv("LANG_REPO", "."),
		ReferenceLocale:  getEnv("REFERENCE_LOCALE", "en-US"),
		WorkerCount:      getEnvInt("WORKER_COUNT", 8),
		DatabaseURL:      getEnv("DATABASE_URL", "postgres://localhost:5432/langchecker?sslmode=disable"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		ShowMissingFiles: getEnvBool("SHOW_MISSING_FILES", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
