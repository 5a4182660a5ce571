package config

import "time"

// ApplyDefaults fills in default values for any unset configuration
// fields. It is called automatically by LoadConfig.
func ApplyDefaults(cfg *Config) {
	if cfg.Rules.WatchDebounce <= 0 {
		cfg.Rules.WatchDebounce = 200 * time.Millisecond
	}

	if cfg.History.Backend == "" {
		cfg.History.Backend = "sqlite"
	}
	if cfg.History.SQLitePath == "" {
		cfg.History.SQLitePath = "data/history.db"
	}
	if cfg.History.RetentionDays == 0 {
		cfg.History.RetentionDays = 90
	}
	if cfg.History.PruneSchedule == "" {
		cfg.History.PruneSchedule = "0 3 * * *"
	}

	if cfg.Enhancement.BaseURL == "" {
		cfg.Enhancement.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Enhancement.Model == "" {
		cfg.Enhancement.Model = "gpt-4o-mini"
	}
	if cfg.Enhancement.Timeout <= 0 {
		cfg.Enhancement.Timeout = 30 * time.Second
	}

	if cfg.Telemetry.LogLevel == "" {
		cfg.Telemetry.LogLevel = "info"
	}
	if cfg.Telemetry.LogFormat == "" {
		cfg.Telemetry.LogFormat = "text"
	}
	if cfg.Telemetry.MetricsNamespace == "" {
		cfg.Telemetry.MetricsNamespace = "groundcover"
	}
}

// DefaultConfig returns a configuration with all defaults applied.
func DefaultConfig() *Config {
	cfg := &Config{History: HistoryConfig{Enabled: true}}
	ApplyDefaults(cfg)
	return cfg
}
