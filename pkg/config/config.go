package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port string
	Env  string

	// Database configuration
	DatabaseURL string

	// Redis configuration
	RedisURL      string
	RedisPassword string

	// JWT configuration
	JWTSecret string

	// Price feed configuration
	PriceFeedAPIKey string

	// Bitcoind RPC configuration
	BitcoindRPCURL  string
	BitcoindRPCUser string
	BitcoindRPCPass string

	// Memo sharing policy. Payer memos below these credited amounts are
	// withheld from the recipient.
	MemoSharingSatsThreshold  int64
	MemoSharingCentsThreshold int64

	// RewardsConfigPath optionally points to a YAML file overriding the
	// built-in onboarding reward memos
	RewardsConfigPath string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                      getEnv("PORT", "8080"),
		Env:                       getEnv("ENV", "development"),
		DatabaseURL:               getEnv("DATABASE_URL", ""),
		RedisURL:                  getEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:             getEnv("REDIS_PASSWORD", ""),
		JWTSecret:                 getEnv("JWT_SECRET", ""),
		PriceFeedAPIKey:           getEnv("PRICEFEED_API_KEY", ""),
		BitcoindRPCURL:            getEnv("BITCOIND_RPC_URL", "http://localhost:8332"),
		BitcoindRPCUser:           getEnv("BITCOIND_RPC_USER", ""),
		BitcoindRPCPass:           getEnv("BITCOIND_RPC_PASS", ""),
		MemoSharingSatsThreshold:  getEnvAsInt64("MEMO_SHARING_SATS_THRESHOLD", 1000),
		MemoSharingCentsThreshold: getEnvAsInt64("MEMO_SHARING_CENTS_THRESHOLD", 50),
		RewardsConfigPath:         getEnv("REWARDS_CONFIG_PATH", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters long")
	}

	if c.IsProduction() && (c.BitcoindRPCUser == "" || c.BitcoindRPCPass == "") {
		return fmt.Errorf("BITCOIND_RPC_USER and BITCOIND_RPC_PASS are required in production")
	}

	if c.MemoSharingSatsThreshold < 0 || c.MemoSharingCentsThreshold < 0 {
		return fmt.Errorf("memo sharing thresholds must not be negative")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt64 gets an environment variable as an int64 with a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}
