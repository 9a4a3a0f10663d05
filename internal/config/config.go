package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const devSessionHashKey = "dev-session-key-change-in-production"

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Currency    CurrencyConfig
	Session     SessionConfig
	HTTP        HTTPConfig
	Metrics     MetricsConfig
}

type CurrencyConfig struct {
	Symbol string
}

type SessionConfig struct {
	CookieName    string
	TTL           time.Duration
	SweepInterval time.Duration
	HashKey       string
}

type HTTPConfig struct {
	CORSOrigins []string
}

type MetricsConfig struct {
	Enabled bool
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// .env is optional
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	ttl, err := time.ParseDuration(getEnvOrViper("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}
	sweep, err := time.ParseDuration(getEnvOrViper("SESSION_SWEEP_INTERVAL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: %w", err)
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Currency: CurrencyConfig{
			Symbol: getEnvOrViper("CURRENCY_SYMBOL", "₽"),
		},
		Session: SessionConfig{
			CookieName:    getEnvOrViper("SESSION_COOKIE", "pizzatime_session"),
			TTL:           ttl,
			SweepInterval: sweep,
			HashKey:       getEnvOrViper("SESSION_HASH_KEY", ""),
		},
		HTTP: HTTPConfig{
			CORSOrigins: splitList(getEnvOrViper("CORS_ORIGINS", "http://localhost:5173")),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvOrViper("PROMETHEUS_ENABLED", "false") == "true",
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Session.HashKey == "" {
		if c.IsProduction() {
			return fmt.Errorf("SESSION_HASH_KEY is required in production")
		}
		c.Session.HashKey = devSessionHashKey
	}
	// blake2b accepts keys of at most 64 bytes
	if len(c.Session.HashKey) > 64 {
		return fmt.Errorf("SESSION_HASH_KEY must be at most 64 bytes")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	return nil
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

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
