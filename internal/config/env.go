package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present; variables already set in
// the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.DatabasePath = getEnv("SKINFLOW_DATABASE_PATH", cfg.DatabasePath)
	cfg.LogLevel = getEnv("SKINFLOW_LOG_LEVEL", cfg.LogLevel)
	cfg.DemoEmail = getEnv("SKINFLOW_DEMO_EMAIL", cfg.DemoEmail)
	cfg.DemoName = getEnv("SKINFLOW_DEMO_NAME", cfg.DemoName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
