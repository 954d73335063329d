package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/4-in-a-row/engine/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	SearchDepth    int
	MaxSearchDepth int
	ParallelSearch bool
	AllowedOrigins []string
	FrontendURL    string
	JWTSecret      string
	TokenTTL       time.Duration
	LogLevel       string
}

var AppConfig *Config

// LoadEnvFiles loads .env from the working directory or its parent. Missing
// files are not an error; the process environment still applies.
func LoadEnvFiles() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Debug().Str("component", "config").Msg("no .env file found")
		}
	}
}

// Bootstrap sets up logging from the process environment, loads .env and the
// config, then applies the configured level. Warnings raised while loading
// already go through the configured writer.
func Bootstrap(console bool) *Config {
	logging.Setup(GetEnv("LOG_LEVEL", "info"), console)
	LoadEnvFiles()
	cfg := LoadConfig()
	logging.Setup(cfg.LogLevel, console)
	return cfg
}

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	searchDepth := GetEnvAsInt("SEARCH_DEPTH", 6)
	maxSearchDepth := GetEnvAsInt("MAX_SEARCH_DEPTH", 10)
	if searchDepth < 0 {
		log.Warn().Str("component", "config").Int("depth", searchDepth).Msg("negative SEARCH_DEPTH, using 6")
		searchDepth = 6
	}
	if maxSearchDepth < searchDepth {
		maxSearchDepth = searchDepth
	}

	// Frontend & CORS
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")
	allowedOriginsStr := GetEnv("ALLOWED_ORIGINS", "")

	// Build allowed origins list (Frontend URL + CSV values)
	allowedOrigins := []string{frontendURL}
	if allowedOriginsStr != "" {
		extras := strings.Split(allowedOriginsStr, ",")
		for _, origin := range extras {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	AppConfig = &Config{
		Port:           port,
		SearchDepth:    searchDepth,
		MaxSearchDepth: maxSearchDepth,
		ParallelSearch: GetEnvAsBool("PARALLEL_SEARCH", false),
		AllowedOrigins: allowedOrigins,
		FrontendURL:    frontendURL,
		JWTSecret:      GetEnv("API_JWT_SECRET", ""),
		TokenTTL:       time.Duration(GetEnvAsInt("API_TOKEN_TTL_MINUTES", 60)) * time.Minute,
		LogLevel:       GetEnv("LOG_LEVEL", "info"),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Msgf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Warn().Str("component", "config").Msgf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
