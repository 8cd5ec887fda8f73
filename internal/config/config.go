package config

import (
	"os"
	"strconv"
	"strings"
)

// Config holds application configuration
type Config struct {
	Port               string
	Env                string
	LogLevel           string
	PublicBaseURL      string
	CORSAllowedOrigins []string

	// Gemini data generation. An empty API key is not a startup failure:
	// the generation gateway serves the built-in demo dataset instead.
	GeminiAPIKey  string
	GeminiModelID string

	// Max accepted size for an uploaded clinic logo, in bytes.
	MaxLogoBytes int64
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		PublicBaseURL:      getEnv("PUBLIC_BASE_URL", ""),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiModelID:      getEnv("GEMINI_MODEL_ID", "gemini-2.5-flash"),
		MaxLogoBytes:       getEnvAsInt64("MAX_LOGO_BYTES", 2<<20),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 retrieves an environment variable as an int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil && value > 0 {
		return value
	}
	return defaultValue
}

// getEnvAsList retrieves a comma-separated environment variable as a slice
func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
