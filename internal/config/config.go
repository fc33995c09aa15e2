// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration of the service. Regulatory
// tables live in RegulatoryConfig, not here.
type Config struct {
	// Server
	Port           int
	AllowedOrigins []string

	// Database. DBURL, when set, wins over the per-field settings.
	DBURL      string
	DBHost     string
	DBPort     int
	DBName     string
	DBUser     string
	DBPassword string

	// RetentionDays bounds how long simulation snapshots are kept;
	// 0 disables the startup sweep.
	RetentionDays int

	// Redis (zone price cache)
	RedisAddr        string
	PriceCacheTTLMin int

	// Application
	Stage    string
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnvInt("PORT", 8080),
		AllowedOrigins: []string{
			getEnv("ALLOWED_ORIGIN", "*"),
		},

		DBURL:      getEnv("DATABASE_URL", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnvInt("DB_PORT", 5432),
		DBName:     getEnv("DB_NAME", "mortgage_advisory"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),

		RetentionDays: getEnvInt("SIMULATION_RETENTION_DAYS", 0),

		RedisAddr:        getEnv("REDIS_ADDR", ""),
		PriceCacheTTLMin: getEnvInt("PRICE_CACHE_TTL_MIN", 360),

		Stage:    getEnv("STAGE", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

// DatabaseURL returns the PostgreSQL connection string.
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// getEnv returns the environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
