package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Store   StoreConfig
	Images  ImageConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	Version     string
}

type CatalogConfig struct {
	Path string // static restaurant catalog, JSON array
}

type StoreConfig struct {
	Path string // local review store (single SQLite file)
}

type ImageConfig struct {
	MaxDimension int // longest edge after normalization, px
	JPEGQuality  int // 1-100
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bagelhole Directory"),
			Environment: getEnv("APP_ENV", "development"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", "data/restaurants.json"),
		},
		Store: StoreConfig{
			Path: getEnv("STORE_PATH", "bagelhole.db"),
		},
		Images: ImageConfig{
			MaxDimension: getEnvInt("IMAGE_MAX_DIMENSION", 1400),
			JPEGQuality:  getEnvInt("IMAGE_JPEG_QUALITY", 82),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the config is usable.
func (c *Config) Validate() error {
	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH must not be empty")
	}
	if c.Store.Path == "" {
		return fmt.Errorf("STORE_PATH must not be empty")
	}
	if c.Images.MaxDimension < 1 {
		return fmt.Errorf("IMAGE_MAX_DIMENSION must be positive")
	}
	if c.Images.JPEGQuality < 1 || c.Images.JPEGQuality > 100 {
		return fmt.Errorf("IMAGE_JPEG_QUALITY must be between 1 and 100")
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
