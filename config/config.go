package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Apollo    ApolloConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Environment     string        `mapstructure:"environment"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ApolloConfig holds Apollo API configuration
type ApolloConfig struct {
	// APIKey is only a default; callers may supply their own key per request
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per minute, 0 disables
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

var environments = map[string]bool{
	"development": true,
	"test":        true,
	"production":  true,
}

// Load loads configuration from .env, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/enrichlens/")

	// Environment variable settings
	v.SetEnvPrefix("ENRICHLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The default key also honours the provider's conventional variable
	if err := v.BindEnv("apollo.api_key", "ENRICHLENS_APOLLO_API_KEY", "APOLLO_API_KEY"); err != nil {
		return nil, fmt.Errorf("error binding environment: %w", err)
	}

	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads .env from the working directory without overriding
// variables that are already set. A missing file is not an error.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})
	v.SetDefault("server.shutdown_timeout", "10s")

	// Apollo defaults
	v.SetDefault("apollo.base_url", "https://api.apollo.io/api/v1")
	v.SetDefault("apollo.timeout", "30s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 60)

	// Logging defaults
	v.SetDefault("logging.level", "info")
}

// validate validates the configuration
func validate(config *Config) error {
	if !environments[config.Server.Environment] {
		return fmt.Errorf("environment must be one of development, test, production, got: %s", config.Server.Environment)
	}

	if strings.TrimSpace(config.Apollo.BaseURL) == "" {
		return fmt.Errorf("Apollo base URL is required (set ENRICHLENS_APOLLO_BASE_URL)")
	}

	if config.Apollo.Timeout <= 0 {
		return fmt.Errorf("Apollo timeout must be positive, got: %s", config.Apollo.Timeout)
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("rate limit per IP must not be negative, got: %d", config.RateLimit.PerIP)
	}

	return nil
}

// ValidateAPIKey is an advisory sanity check: non-empty and at least ten
// characters once trimmed. Enrichment calls never enforce it.
func ValidateAPIKey(apiKey string) bool {
	return len(strings.TrimSpace(apiKey)) >= 10
}
