package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int32
	MinConns int32

	MaxRetries     int
	RetryDelay     time.Duration
	ConnectTimeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// CatalogServiceConfig is how the order service reaches the catalog service.
type CatalogServiceConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CatalogConfig holds everything the catalog service needs.
type CatalogConfig struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

// OrderConfig holds everything the order service needs.
type OrderConfig struct {
	App      AppConfig
	Database DatabaseConfig
	Catalog  CatalogServiceConfig
}

// LoadCatalog reads catalog service config from environment variables.
func LoadCatalog() (*CatalogConfig, error) {
	cfg := &CatalogConfig{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Catalog Service"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("CATALOG_PORT", "8000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: loadDatabase("catalog"),
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
	}

	if err := validateDatabase(cfg.App.Environment, cfg.Database); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadOrder reads order service config from environment variables.
func LoadOrder() (*OrderConfig, error) {
	cfg := &OrderConfig{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Order Service"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("ORDER_PORT", "8001"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Database: loadDatabase("orders"),
		Catalog: CatalogServiceConfig{
			BaseURL: getEnv("CATALOG_SERVICE_URL", "http://catalog-service:8000"),
			Timeout: time.Duration(getEnvInt("CATALOG_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}

	if err := validateDatabase(cfg.App.Environment, cfg.Database); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func loadDatabase(defaultName string) DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnvInt("DB_PORT", 5432),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Database: getEnv("DB_NAME", defaultName),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
		MaxConns: int32(getEnvInt("DB_MAX_CONNS", 25)),
		MinConns: int32(getEnvInt("DB_MIN_CONNS", 5)),

		MaxRetries:     getEnvInt("DB_MAX_RETRIES", 3),
		RetryDelay:     time.Duration(getEnvInt("DB_RETRY_DELAY_SECONDS", 1)) * time.Second,
		ConnectTimeout: time.Duration(getEnvInt("DB_CONNECT_TIMEOUT_SECONDS", 5)) * time.Second,
	}
}

func validateDatabase(env string, db DatabaseConfig) error {
	if env == "production" && db.Password == "" {
		return fmt.Errorf("DB_PASSWORD must be set in production")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
