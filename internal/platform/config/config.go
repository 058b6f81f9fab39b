package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	// DataDir is the directory holding the flat-file record store.
	DataDir string

	// SeedOnStart populates the directory reference data when the store is
	// empty.
	SeedOnStart bool

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// NotificationQueueSize bounds the async dispatch queue; requests beyond
	// it are dropped with a warning.
	NotificationQueueSize int

	// NotificationSendTimeout caps a single provider send.
	NotificationSendTimeout time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SEED_ON_START", true)
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("NOTIFICATION_QUEUE_SIZE", 64)
	viper.SetDefault("NOTIFICATION_SEND_TIMEOUT", "5s")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                  viper.GetString("PORT"),
		IsProduction:          viper.GetBool("IS_PRODUCTION"),
		DataDir:               viper.GetString("DATA_DIR"),
		SeedOnStart:           viper.GetBool("SEED_ON_START"),
		RateLimit:             viper.GetString("RATE_LIMIT"),
		NotificationQueueSize: viper.GetInt("NOTIFICATION_QUEUE_SIZE"),
	}

	timeoutStr := viper.GetString("NOTIFICATION_SEND_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 5 * time.Second
		if timeoutStr != "" {
			log.Printf("Warning: Invalid value for NOTIFICATION_SEND_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
		}
	}
	cfg.NotificationSendTimeout = timeout

	if cfg.NotificationQueueSize <= 0 {
		cfg.NotificationQueueSize = 64
		log.Println("Warning: NOTIFICATION_QUEUE_SIZE must be positive. Defaulting to 64.")
	}

	return cfg, nil
}
