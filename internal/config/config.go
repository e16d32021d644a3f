package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no exchange rate API key is configured.
var ErrMissingAPIKey = errors.New("EXCHANGE_RATE_API_KEY is not set")

// Config holds application configuration.
type Config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	// Exchange rate API
	RateAPIURL     string
	RateAPIKey     string
	RateAPITimeout time.Duration

	CORSAllowedOrigins []string
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// Load reads environment variables from the dotenv file at path (if it exists),
// applies defaults and returns the resulting configuration.
// Variables already present in the environment take precedence over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	v := viper.New()
	v.SetDefault("APP_HOST", "localhost")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_LOG_LEVEL", "info")
	v.SetDefault("APP_LOG_FORMAT", "json")
	v.SetDefault("EXCHANGE_RATE_API_URL", "https://v6.exchangerate-api.com")
	v.SetDefault("EXCHANGE_RATE_API_KEY", "")
	v.SetDefault("EXCHANGE_RATE_API_TIMEOUT", "10s")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.AutomaticEnv()

	timeout, err := time.ParseDuration(v.GetString("EXCHANGE_RATE_API_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid EXCHANGE_RATE_API_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid EXCHANGE_RATE_API_TIMEOUT: must be positive, got %s", timeout)
	}

	cfg := &Config{
		AppHost:            v.GetString("APP_HOST"),
		AppPort:            v.GetString("APP_PORT"),
		LogLevel:           v.GetString("APP_LOG_LEVEL"),
		LogFormat:          v.GetString("APP_LOG_FORMAT"),
		RateAPIURL:         strings.TrimRight(v.GetString("EXCHANGE_RATE_API_URL"), "/"),
		RateAPIKey:         v.GetString("EXCHANGE_RATE_API_KEY"),
		RateAPITimeout:     timeout,
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.RateAPIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
