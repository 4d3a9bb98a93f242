// Package config loads the service configuration from defaults, an optional
// YAML file and environment variables, in that order of precedence (last wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/trraform/crontrigger/pkg/job"
	"github.com/trraform/crontrigger/pkg/logger"
	"github.com/trraform/crontrigger/pkg/trigger"
)

// Defaults.
const (
	DefaultBaseURL         = "https://trraform-api-4a1d5fa5-8aa8-48ae-83b5-4771e43babf4.fly.dev"
	DefaultSchedule        = "*/5 * * * *"
	DefaultAddress         = ":8080"
	DefaultManualPath      = "/__scheduled"
	DefaultShutdownTimeout = 30 * time.Second
	DefaultManualBurst     = 1
	DefaultManualPerMinute = 6
	DefaultUserAgent       = "crontrigger"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full service configuration.
type Config struct {
	Trigger TriggerConfig `yaml:"trigger"`
	HTTP    HTTPConfig    `yaml:"http"`
	Log     logger.Config `yaml:"log"`
}

// TriggerConfig describes what is called and when.
type TriggerConfig struct {
	BaseURL    string        `env:"TRIGGER_BASE_URL"     yaml:"base_url"`
	Schedule   string        `env:"TRIGGER_SCHEDULE"     yaml:"schedule"`
	Timezone   string        `env:"TRIGGER_TIMEZONE"     yaml:"timezone"`
	UserAgent  string        `env:"TRIGGER_USER_AGENT"   yaml:"user_agent"`
	Endpoints  []string      `env:"TRIGGER_ENDPOINTS"    envSeparator:"," yaml:"endpoints"`
	Timeout    time.Duration `env:"TRIGGER_TIMEOUT"      yaml:"timeout"`
	RunOnStart bool          `env:"TRIGGER_RUN_ON_START" yaml:"run_on_start"`
}

// HTTPConfig configures the probe, metrics and manual trigger server.
type HTTPConfig struct {
	Address         string        `env:"HTTP_ADDR"                 yaml:"address"`
	ManualPath      string        `env:"HTTP_MANUAL_PATH"          yaml:"manual_path"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT"     yaml:"shutdown_timeout"`
	ManualPerMinute float64       `env:"HTTP_MANUAL_RATE_PER_MIN"  yaml:"manual_rate_per_minute"`
	ManualBurst     int           `env:"HTTP_MANUAL_BURST"         yaml:"manual_burst"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Trigger: TriggerConfig{
			BaseURL:   DefaultBaseURL,
			Schedule:  DefaultSchedule,
			Timezone:  "UTC",
			UserAgent: DefaultUserAgent,
			Endpoints: []string{trigger.UpdateChunksPath, trigger.RefreshLeaderboardPath},
		},
		HTTP: HTTPConfig{
			Address:         DefaultAddress,
			ManualPath:      DefaultManualPath,
			ShutdownTimeout: DefaultShutdownTimeout,
			ManualPerMinute: DefaultManualPerMinute,
			ManualBurst:     DefaultManualBurst,
		},
		Log: logger.Config{
			Level:  "info",
			Format: logger.FormatJSON,
		},
	}
}

// Load builds the configuration. path may be empty to skip the file layer.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the dispatcher and scheduler can be built from c.
func (c *Config) Validate() error {
	var errs []error

	if _, err := trigger.New(c.Trigger.BaseURL, trigger.WithEndpoints(c.TriggerEndpoints()...)); err != nil {
		errs = append(errs, err)
	}
	if _, err := job.ParseSchedule(c.Trigger.Schedule); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	if c.Trigger.Timeout < 0 {
		errs = append(errs, fmt.Errorf("trigger timeout must not be negative, got %s", c.Trigger.Timeout))
	}
	if c.HTTP.ManualPath != "" && c.HTTP.ManualPath[0] != '/' {
		errs = append(errs, fmt.Errorf("manual path must start with /, got %q", c.HTTP.ManualPath))
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}
	return nil
}

// TriggerEndpoints converts the configured paths to dispatcher endpoints.
func (c *Config) TriggerEndpoints() []trigger.Endpoint {
	return trigger.EndpointsFromPaths(c.Trigger.Endpoints)
}

// Location resolves the schedule time zone. Empty means UTC.
func (c *Config) Location() (*time.Location, error) {
	if c.Trigger.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Trigger.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Trigger.Timezone, err)
	}
	return loc, nil
}
