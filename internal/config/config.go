package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort   string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Database configuration
	DBHost              string
	DBPort              int
	DBUser              string
	DBPassword          string
	DBName              string
	DBSSLMode           string
	DBMaxConns          int32
	DBMinConns          int32
	DBMaxConnLifetime   time.Duration
	DBMaxConnIdleTime   time.Duration
	DBHealthCheckPeriod time.Duration

	// News provider configuration. An empty NewsAPIKey is legal at
	// startup; imports then fail fast with a configuration error.
	NewsAPIKey     string
	NewsAPIBaseURL string
	NewsAPITimeout time.Duration

	// Path to an optional yaml file overriding the built-in relevance
	// keyword tables.
	KeywordsConfig string

	// AllowAPIArticleEdits decides whether provider-sourced articles
	// may be edited or deleted by moderators. The hidden and
	// don't-miss toggles are not gated by this flag.
	AllowAPIArticleEdits bool

	// Listing cache configuration. The cache is disabled when
	// RedisAddr is empty.
	RedisAddr string
	CacheTTL  time.Duration

	// ModeratorSecret is handed to the external auth layer that wraps
	// the moderation routes. The pipeline itself never reads it.
	ModeratorSecret string

	// Logging configuration
	LogLevel string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		ServerPort:           getEnv("SERVER_PORT", "8080"),
		ReadTimeout:          getEnvDuration("HTTP_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:         getEnvDuration("HTTP_WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:          getEnvDuration("HTTP_IDLE_TIMEOUT", 120*time.Second),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnvInt("DB_PORT", 5432),
		DBUser:               getEnv("DB_USER", "postgres"),
		DBPassword:           getEnv("DB_PASSWORD", "postgres"),
		DBName:               getEnv("DB_NAME", "lucknowzone"),
		DBSSLMode:            getEnv("DB_SSL_MODE", "disable"),
		DBMaxConns:           int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns:           int32(getEnvInt("DB_MIN_CONNS", 5)),
		DBMaxConnLifetime:    getEnvDuration("DB_MAX_CONN_LIFETIME", time.Hour),
		DBMaxConnIdleTime:    getEnvDuration("DB_MAX_CONN_IDLE_TIME", 30*time.Minute),
		DBHealthCheckPeriod:  getEnvDuration("DB_HEALTH_CHECK_PERIOD", time.Minute),
		NewsAPIKey:           getEnv("NEWS_API_KEY", ""),
		NewsAPIBaseURL:       getEnv("NEWS_API_BASE_URL", "https://newsdata.io"),
		NewsAPITimeout:       getEnvDuration("NEWS_API_TIMEOUT", 15*time.Second),
		KeywordsConfig:       getEnv("KEYWORDS_CONFIG", ""),
		AllowAPIArticleEdits: getEnvBool("ALLOW_API_ARTICLE_EDITS", false),
		RedisAddr:            getEnv("REDIS_ADDR", ""),
		CacheTTL:             getEnvDuration("CACHE_TTL", 5*time.Minute),
		ModeratorSecret:      getEnv("MODERATOR_SECRET", ""),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	if c.DBHost == "" {
		return fmt.Errorf("DB_HOST is required")
	}
	if c.DBUser == "" {
		return fmt.Errorf("DB_USER is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.NewsAPIBaseURL == "" {
		return fmt.Errorf("NEWS_API_BASE_URL is required")
	}
	if c.NewsAPITimeout <= 0 {
		return fmt.Errorf("NEWS_API_TIMEOUT must be positive")
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as int with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as bool with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
