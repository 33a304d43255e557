// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"skiptrace/platform/validator"

	"github.com/joho/godotenv"
)

const (
	defaultEndpoint  = "https://api.skipengine.com/v1/service"
	defaultTimeout   = "30s"
	defaultInputFile = "foreclosures_processed.csv"
	defaultDelay     = "1s"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// SkipTraceConfig provides settings for the SkipEngine lookup client.
type SkipTraceConfig interface {
	GetSkipEngineAPIKey() string
	GetSkipEngineEndpoint() string
	GetSkipEngineTimeout() time.Duration
	UseSkipEngineTestKey() bool
	IsSkipTraceEnabled() bool
}

// BatchConfig provides settings for the table enrichment run.
type BatchConfig interface {
	GetInputFile() string
	GetPacingDelay() time.Duration
	GetColumnsFile() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	SkipEngineAPIKey   string
	SkipEngineEndpoint string        `validate:"required,url"`
	SkipEngineTimeout  time.Duration `validate:"gt=0"`
	SkipEngineTestMode bool
	InputFile          string        `validate:"required"`
	PacingDelay        time.Duration `validate:"gte=0"`
	ColumnsFile        string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// SkipTraceConfig implementation
func (c *Config) GetSkipEngineAPIKey() string          { return c.SkipEngineAPIKey }
func (c *Config) GetSkipEngineEndpoint() string        { return c.SkipEngineEndpoint }
func (c *Config) GetSkipEngineTimeout() time.Duration { return c.SkipEngineTimeout }
func (c *Config) UseSkipEngineTestKey() bool           { return c.SkipEngineTestMode }
func (c *Config) IsSkipTraceEnabled() bool             { return c.SkipEngineAPIKey != "" }

// BatchConfig implementation
func (c *Config) GetInputFile() string           { return c.InputFile }
func (c *Config) GetPacingDelay() time.Duration { return c.PacingDelay }
func (c *Config) GetColumnsFile() string         { return c.ColumnsFile }

// Load reads configuration from environment variables, after loading a .env
// file from the working directory when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := getEnv("SKIPENGINE_API_KEY", "")
	if apiKey == "" {
		apiKey = getEnv("API_KEY", "")
	}

	timeout, err := parseDuration("SKIPENGINE_TIMEOUT", getEnv("SKIPENGINE_TIMEOUT", defaultTimeout))
	if err != nil {
		return nil, err
	}
	delay, err := parseDuration("SKIPTRACE_DELAY", getEnv("SKIPTRACE_DELAY", defaultDelay))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		SkipEngineAPIKey:   strings.TrimSpace(apiKey),
		SkipEngineEndpoint: getEnv("SKIPENGINE_ENDPOINT", defaultEndpoint),
		SkipEngineTimeout:  timeout,
		SkipEngineTestMode: strings.EqualFold(getEnv("SKIPENGINE_TEST_MODE", "false"), "true"),
		InputFile:          getEnv("SKIPTRACE_INPUT_FILE", defaultInputFile),
		PacingDelay:        delay,
		ColumnsFile:        getEnv("SKIPTRACE_COLUMNS_FILE", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the struct tags. Callers that override fields after Load
// (CLI flags) should call it again.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseDuration(key, value string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
