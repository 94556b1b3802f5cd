package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Mongo       MongoConfig
	LogLevel    string
}

// MongoConfig holds the connection settings for the orders collection.
// An empty URI means no MongoDB is configured; binaries then fall back to the
// in-memory store (demo mode).
type MongoConfig struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

func Load() (*Config, error) {
	// Load .env into the process environment first (optional, dev only)
	_ = godotenv.Load(".env")

	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("MONGO_DB", "ledgerapi")
	viper.SetDefault("MONGO_ORDERS_COLLECTION", "orders")
	viper.SetDefault("MONGO_CONNECT_TIMEOUT_SECONDS", "10")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	connectTimeout, err := time.ParseDuration(getEnvOrViper("MONGO_CONNECT_TIMEOUT_SECONDS", "10") + "s")
	if err != nil {
		return nil, fmt.Errorf("invalid MONGO_CONNECT_TIMEOUT_SECONDS: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Mongo: MongoConfig{
			URI:            strings.TrimSpace(getEnvOrViper("MONGO_URI", "")),
			Database:       getEnvOrViper("MONGO_DB", "ledgerapi"),
			Collection:     getEnvOrViper("MONGO_ORDERS_COLLECTION", "orders"),
			ConnectTimeout: connectTimeout,
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
