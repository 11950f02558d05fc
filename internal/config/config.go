package config

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
)

// Environment variables with defaults
type ServerEnvironment struct {

	// http server settings
	Environment           string        `env:"ENVIRONMENT,default=dev"`
	Host                  string        `env:"HOST,default=0.0.0.0"`
	Port                  int           `env:"PORT,default=8080"`
	LogLevel              string        `env:"LOG_LEVEL,default=debug"`
	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT,default=10s"`
	ReadTimeout           time.Duration `env:"READ_TIMEOUT,default=15s"`
	WriteTimeout          time.Duration `env:"WRITE_TIMEOUT,default=15s"`
	IdleTimeout           time.Duration `env:"IDLE_TIMEOUT,default=60s"`
	RequestTimeout        time.Duration `env:"REQUEST_TIMEOUT,default=30s"`
	RateLimitRPS          int32         `env:"RATE_LIMIT_RPS,default=100"`
	RateLimitBurst        int32         `env:"RATE_LIMIT_BURST,default=200"`
	MaxRequestSize        int64         `env:"MAX_REQUEST_SIZE,default=1048576"`

	// transfer record limits
	MaxDescriptionLength int `env:"MAX_DESCRIPTION_LENGTH,default=4096"`
	MaxKeyLength         int `env:"MAX_KEY_LENGTH,default=2048"`

	// batch signing
	SignBatchWorkers    int `env:"SIGN_BATCH_WORKERS,default=4"`
	SignBatchMaxRecords int `env:"SIGN_BATCH_MAX_RECORDS,default=100"`
}

var validEnvs = map[string]bool{
	"dev":     true,
	"test":    true,
	"prod":    true,
	"staging": true,
}

// NewServerConfig loads environment variables and returns a ServerEnvironment struct that contains the values
func NewServerConfig() (*ServerEnvironment, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := validateServerConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NewCLIConfig loads the same environment as the server but only checks the settings the CLI uses
func NewCLIConfig() (*ServerEnvironment, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	if err := validateLimits(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func load() (*ServerEnvironment, error) {
	var cfg ServerEnvironment

	_, err := env.UnmarshalFromEnviron(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal environment variables: %w", err)
	}

	if !validEnvs[cfg.Environment] {
		return nil, fmt.Errorf("invalid ENVIRONMENT: %s", cfg.Environment)
	}
	return &cfg, nil
}

// validateServerConfig checks the http server settings and the record limits
func validateServerConfig(cfg *ServerEnvironment) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	if cfg.MaxRequestSize < 1 {
		return fmt.Errorf("MAX_REQUEST_SIZE must be at least 1")
	}
	if cfg.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be greater than 0")
	}

	return validateLimits(cfg)
}

func validateLimits(cfg *ServerEnvironment) error {
	if cfg.MaxDescriptionLength < 1 {
		return fmt.Errorf("MAX_DESCRIPTION_LENGTH must be at least 1")
	}
	if cfg.MaxKeyLength < 1 {
		return fmt.Errorf("MAX_KEY_LENGTH must be at least 1")
	}
	if cfg.SignBatchWorkers < 1 {
		return fmt.Errorf("SIGN_BATCH_WORKERS must be at least 1")
	}
	if cfg.SignBatchMaxRecords < 1 {
		return fmt.Errorf("SIGN_BATCH_MAX_RECORDS must be at least 1")
	}

	return nil
}
