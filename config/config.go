package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	GitHub GitHubConfig
	Redis  RedisConfig
	App    AppConfig
}

type ServerConfig struct {
	Port       string
	CORSOrigin string
}

type GitHubConfig struct {
	Username string
	Token    string
	BaseURL  string
	CacheTTL time.Duration
	// RefreshSpec is a cron expression (with seconds) for the background
	// catalog refresh. Empty disables the job.
	RefreshSpec string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "8080"),
			CORSOrigin: getEnv("CORS_ORIGIN", "*"),
		},
		GitHub: GitHubConfig{
			Username:    getEnv("GITHUB_USERNAME", ""),
			Token:       getEnv("GITHUB_TOKEN", ""),
			BaseURL:     getEnv("GITHUB_API_URL", "https://api.github.com"),
			CacheTTL:    time.Duration(getEnvAsInt("GITHUB_CACHE_TTL_SECONDS", 300)) * time.Second,
			RefreshSpec: getEnv("GITHUB_REFRESH_CRON", ""),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.GitHub.BaseURL == "" {
		return fmt.Errorf("GITHUB_API_URL is required")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}
