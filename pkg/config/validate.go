package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validHistoryBackends = map[string]bool{
	"sqlite": true,
	"memory": true,
}

// Validate checks the configuration for invalid values. It is called
// automatically by LoadConfig after defaults and overrides are applied.
func Validate(cfg *Config) error {
	if cfg.Rules.WatchDebounce < 0 {
		return fmt.Errorf("rules.watch_debounce must not be negative")
	}

	if !validHistoryBackends[cfg.History.Backend] {
		return fmt.Errorf("history.backend %q is not supported (use sqlite or memory)", cfg.History.Backend)
	}
	if cfg.History.RetentionDays < 0 {
		return fmt.Errorf("history.retention_days must not be negative")
	}
	if cfg.History.PruneSchedule != "" {
		if _, err := cron.ParseStandard(cfg.History.PruneSchedule); err != nil {
			return fmt.Errorf("history.prune_schedule %q is not a valid cron expression: %w",
				cfg.History.PruneSchedule, err)
		}
	}

	if cfg.Enhancement.Enabled && cfg.Enhancement.APIKey == "" {
		return fmt.Errorf("enhancement.api_key is required when enhancement is enabled")
	}
	if cfg.Enhancement.Timeout < 0 {
		return fmt.Errorf("enhancement.timeout must not be negative")
	}

	if !validLogLevels[cfg.Telemetry.LogLevel] {
		return fmt.Errorf("telemetry.log_level %q is not valid (use debug, info, warn, or error)",
			cfg.Telemetry.LogLevel)
	}
	if cfg.Telemetry.LogFormat != "text" && cfg.Telemetry.LogFormat != "json" {
		return fmt.Errorf("telemetry.log_format %q is not valid (use text or json)", cfg.Telemetry.LogFormat)
	}

	return nil
}
