// Package config loads the demo service configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/fastygo/respond"
)

// Config aggregates all runtime settings required by the demo service.
type Config struct {
	AppName     string `validate:"required"`
	Environment string
	HTTP        HTTPConfig
	Labels      LabelConfig
	Token       TokenConfig
	Store       StoreConfig
	Logger      LoggerConfig
	Metrics     MetricsConfig
}

type HTTPConfig struct {
	Host            string
	Port            string `validate:"required,numeric"`
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// LabelConfig overrides the status labels stamped on response envelopes.
// Empty values resolve to the respond defaults.
type LabelConfig struct {
	Success string
	Fail    string
	Error   string
}

type TokenConfig struct {
	Secret string        `validate:"required"`
	Issuer string        `validate:"required"`
	TTL    time.Duration `validate:"gt=0"`
}

type StoreConfig struct {
	Path   string `validate:"required"`
	Bucket string `validate:"required"`
}

type LoggerConfig struct {
	Level    string `validate:"oneof=debug info warn error"`
	Encoding string `validate:"oneof=json console"`
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from environment variables (optionally .env),
// applies sane defaults and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "respond-demo"),
		Environment: getString("APP_ENV", "development"),
		HTTP: HTTPConfig{
			Host:            getString("SERVER_HOST", "0.0.0.0"),
			Port:            getString("SERVER_PORT", "8080"),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:     getDuration("SERVER_IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Labels: LabelConfig{
			Success: os.Getenv("RESPOND_SUCCESS_LABEL"),
			Fail:    os.Getenv("RESPOND_FAIL_LABEL"),
			Error:   os.Getenv("RESPOND_ERROR_LABEL"),
		},
		Token: TokenConfig{
			Secret: getString("TOKEN_SECRET", "dev-secret"),
			Issuer: getString("TOKEN_ISSUER", "respond-demo"),
			TTL:    getDuration("TOKEN_TTL", time.Hour),
		},
		Store: StoreConfig{
			Path:   getString("STORE_PATH", "./data/notes.db"),
			Bucket: getString("STORE_BUCKET", "notes"),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "json"),
		},
		Metrics: MetricsConfig{
			Enabled: getBool("METRICS_ENABLED", true),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}

// Address returns the HTTP listen address for the fasthttp server.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%s", c.HTTP.Host, c.HTTP.Port)
}

// RespondConfig maps the label overrides onto a respond.Config.
func (c *Config) RespondConfig() respond.Config {
	return respond.Config{
		SuccessLabel: c.Labels.Success,
		FailLabel:    c.Labels.Fail,
		ErrorLabel:   c.Labels.Error,
	}
}
