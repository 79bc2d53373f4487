// Package config loads server settings from the environment or an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	ServerPort             string        `mapstructure:"SERVER_PORT"`
	LogLevel               string        `mapstructure:"LOG_LEVEL"`
	AirtimeCompletionDelay time.Duration `mapstructure:"AIRTIME_COMPLETION_DELAY"`
	CorsAllowedOrigins     []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	SeedData               bool          `mapstructure:"SEED_DATA"`
	RequestTimeout         time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout        time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// LoadConfig reads configuration from a .env file in path, then the environment.
// PORT takes precedence over SERVER_PORT so hosting platforms can assign the port.
func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("SERVER_PORT", "3000")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AIRTIME_COMPLETION_DELAY", "5s")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("SEED_DATA", true)
	viper.SetDefault("REQUEST_TIMEOUT", "30s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "10s")

	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("SERVER_PORT")
	_ = viper.BindEnv("LOG_LEVEL")
	_ = viper.BindEnv("AIRTIME_COMPLETION_DELAY")
	_ = viper.BindEnv("CORS_ALLOWED_ORIGINS")
	_ = viper.BindEnv("SEED_DATA")
	_ = viper.BindEnv("REQUEST_TIMEOUT")
	_ = viper.BindEnv("SHUTDOWN_TIMEOUT")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if port := viper.GetString("PORT"); port != "" {
		cfg.ServerPort = port
	}
	cfg.CorsAllowedOrigins = splitOrigins(cfg.CorsAllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting that cannot be used to start the server.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ServerPort) == "" {
		return errors.New("SERVER_PORT must not be empty")
	}
	if c.AirtimeCompletionDelay < 0 {
		return fmt.Errorf("AIRTIME_COMPLETION_DELAY must not be negative, got %s", c.AirtimeCompletionDelay)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive, got %s", c.RequestTimeout)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return level, nil
}

// splitOrigins flattens comma separated entries, since env values arrive as one string.
func splitOrigins(in []string) []string {
	var out []string
	for _, item := range in {
		for _, origin := range strings.Split(item, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}
