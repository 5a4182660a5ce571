package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from a YAML file, applies defaults and
// environment overrides, and validates the result. Environment variables
// follow the naming convention GROUNDCOVER_SECTION_FIELD and always take
// precedence over file values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration file %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration file %q: %w", path, err)
	}

	ApplyDefaults(&cfg)
	applyEnvOverrides(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies GROUNDCOVER_* environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if val := os.Getenv("GROUNDCOVER_RULES_CUSTOM_RULES_PATH"); val != "" {
		cfg.Rules.CustomRulesPath = val
	}
	if val := os.Getenv("GROUNDCOVER_RULES_WATCH"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Rules.Watch = b
		}
	}
	if val := os.Getenv("GROUNDCOVER_RULES_WATCH_DEBOUNCE"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Rules.WatchDebounce = d
		}
	}

	if val := os.Getenv("GROUNDCOVER_HISTORY_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.History.Enabled = b
		}
	}
	if val := os.Getenv("GROUNDCOVER_HISTORY_BACKEND"); val != "" {
		cfg.History.Backend = val
	}
	if val := os.Getenv("GROUNDCOVER_HISTORY_SQLITE_PATH"); val != "" {
		cfg.History.SQLitePath = val
	}
	if val := os.Getenv("GROUNDCOVER_HISTORY_RETENTION_DAYS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			cfg.History.RetentionDays = i
		}
	}
	if val := os.Getenv("GROUNDCOVER_HISTORY_PRUNE_SCHEDULE"); val != "" {
		cfg.History.PruneSchedule = val
	}

	if val := os.Getenv("GROUNDCOVER_ENHANCEMENT_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Enhancement.Enabled = b
		}
	}
	if val := os.Getenv("GROUNDCOVER_ENHANCEMENT_BASE_URL"); val != "" {
		cfg.Enhancement.BaseURL = val
	}
	if val := os.Getenv("GROUNDCOVER_ENHANCEMENT_API_KEY"); val != "" {
		cfg.Enhancement.APIKey = val
	}
	if val := os.Getenv("GROUNDCOVER_ENHANCEMENT_MODEL"); val != "" {
		cfg.Enhancement.Model = val
	}
	if val := os.Getenv("GROUNDCOVER_ENHANCEMENT_TIMEOUT"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Enhancement.Timeout = d
		}
	}

	if val := os.Getenv("GROUNDCOVER_TELEMETRY_LOG_LEVEL"); val != "" {
		cfg.Telemetry.LogLevel = val
	}
	if val := os.Getenv("GROUNDCOVER_TELEMETRY_LOG_FORMAT"); val != "" {
		cfg.Telemetry.LogFormat = val
	}
	if val := os.Getenv("GROUNDCOVER_TELEMETRY_METRICS_ENABLED"); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			cfg.Telemetry.MetricsEnabled = b
		}
	}
}
