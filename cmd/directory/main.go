package main

import (
	"os"

	"github.com/joho/godotenv"

	"bagelhole-directory/pkg/logger"
)

func main() {
	// .env is for development convenience; production-style installs
	// use plain environment variables.
	_ = godotenv.Load()

	logger.Init(getEnv("APP_ENV", "development"))

	if err := Execute(); err != nil {
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
