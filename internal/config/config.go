package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	DatabaseURL  string
	JWTSecret    string
	TokenTTL     time.Duration
	AllowOrigins string

	LLMProvider string
	LLMModel    string
	LLMBaseURL  string
	LLMAPIKey   string
}

// Load reads configuration from the environment. Call godotenv.Load first if
// a .env file should be honored.
func Load() *Config {
	return &Config{
		Port:         getEnv("PORT", "8000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		JWTSecret:    getEnv("JWT_SECRET", "change-this-in-production"),
		TokenTTL:     time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 30)) * time.Minute,
		AllowOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),

		LLMProvider: getEnv("LLM_PROVIDER", "openrouter"),
		LLMModel:    getEnv("LLM_MODEL", "tngtech/deepseek-r1t2-chimera:free"),
		LLMBaseURL:  os.Getenv("LLM_BASE_URL"),
		LLMAPIKey:   os.Getenv("LLM_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
