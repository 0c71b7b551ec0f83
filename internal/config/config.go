package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when GOOGLE_SHEETS_API_KEY is not configured.
var ErrMissingAPIKey = errors.New("GOOGLE_SHEETS_API_KEY is not set")

// Config stores all configuration of the application.
// Values are read from app.env in the config path and overridden by environment variables.
type Config struct {
	ServerAddress      string `mapstructure:"SERVER_ADDRESS"`
	GoogleSheetsAPIKey string `mapstructure:"GOOGLE_SHEETS_API_KEY"`
	SheetsEndpoint     string `mapstructure:"SHEETS_ENDPOINT"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	LogFormat          string `mapstructure:"LOG_FORMAT"`
	GinMode            string `mapstructure:"GIN_MODE"`
}

// LoadConfig reads configuration from file or environment variables.
// A missing app.env is not an error; a missing API key is.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("GOOGLE_SHEETS_API_KEY", "")
	v.SetDefault("SHEETS_ENDPOINT", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("GIN_MODE", "release")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	if cfg.GoogleSheetsAPIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	return cfg, nil
}
