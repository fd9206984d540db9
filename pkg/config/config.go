package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string

	// Rate provider settings
	RateAPIBaseURL            string
	RateAPIKey                string
	RateAPITimeout            time.Duration
	RateAPIInsecureSkipVerify bool
	BaseCurrency              string
	RateCacheTTL              time.Duration

	// Rate limiting, in ulule/limiter format (e.g. "100-M")
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("RATE_API_BASE_URL", "https://v6.exchangerate-api.com/v6")
	viper.SetDefault("RATE_API_KEY", "")
	viper.SetDefault("RATE_API_TIMEOUT", "5s")
	viper.SetDefault("RATE_API_INSECURE_SKIP_VERIFY", false)
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("RATE_CACHE_TTL", "3600s")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	cfg.RateAPIBaseURL = viper.GetString("RATE_API_BASE_URL")
	cfg.RateAPIKey = viper.GetString("RATE_API_KEY")
	if cfg.RateAPIKey == "" {
		log.Println("Warning: RATE_API_KEY environment variable not set. Rate fetches will fail.")
	}

	rateTimeoutStr := viper.GetString("RATE_API_TIMEOUT")
	rateTimeout, err := time.ParseDuration(rateTimeoutStr)
	if err != nil {
		rateTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for RATE_API_TIMEOUT ('%s'). Defaulting to %s.\n", rateTimeoutStr, rateTimeout)
	}
	cfg.RateAPITimeout = rateTimeout

	cfg.RateAPIInsecureSkipVerify = viper.GetBool("RATE_API_INSECURE_SKIP_VERIFY")
	if cfg.RateAPIInsecureSkipVerify {
		log.Println("Warning: RATE_API_INSECURE_SKIP_VERIFY is enabled. TLS certificate validation is OFF.")
	}

	cfg.BaseCurrency = viper.GetString("BASE_CURRENCY")

	cacheTTLStr := viper.GetString("RATE_CACHE_TTL")
	cacheTTL, err := time.ParseDuration(cacheTTLStr)
	if err != nil {
		cacheTTL = time.Hour
		log.Printf("Warning: Invalid value for RATE_CACHE_TTL ('%s'). Defaulting to %s.\n", cacheTTLStr, cacheTTL)
	}
	cfg.RateCacheTTL = cacheTTL

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
