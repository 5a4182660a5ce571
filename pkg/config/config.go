// Package config defines the application configuration: rule sources,
// history storage, enhancement, and telemetry. Configuration loads from a
// YAML file, gets defaults applied, then environment overrides, then
// validation.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	// Rules contains rule-set configuration: the custom rule file to
	// layer over the built-in catalogue and watch-mode settings.
	Rules RulesConfig `yaml:"rules"`

	// History contains evaluation-history storage and retention
	// configuration.
	History HistoryConfig `yaml:"history"`

	// Enhancement contains optional LLM enhancement configuration.
	Enhancement EnhancementConfig `yaml:"enhancement"`

	// Telemetry contains logging and metrics configuration.
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// RulesConfig contains rule-set configuration.
type RulesConfig struct {
	// CustomRulesPath is a YAML rule file merged over the built-in
	// catalogue. Empty means defaults only.
	CustomRulesPath string `yaml:"custom_rules_path"`

	// Watch reloads the custom rule file when it changes.
	// Default: false
	Watch bool `yaml:"watch"`

	// WatchDebounce is the quiet period before a reload fires.
	// Default: 200ms
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// HistoryConfig contains evaluation-history configuration.
type HistoryConfig struct {
	// Enabled controls whether runs are persisted.
	// Default: true
	Enabled bool `yaml:"enabled"`

	// Backend selects the storage backend: "sqlite" or "memory".
	// Default: "sqlite"
	Backend string `yaml:"backend"`

	// SQLitePath is the history database file path.
	// Default: "data/history.db"
	SQLitePath string `yaml:"sqlite_path"`

	// RetentionDays is how long records are kept. Zero keeps forever.
	// Default: 90
	RetentionDays int `yaml:"retention_days"`

	// PruneSchedule is a cron expression for scheduled pruning.
	// Default: "0 3 * * *" (daily at 3 AM)
	PruneSchedule string `yaml:"prune_schedule"`
}

// EnhancementConfig contains optional LLM enhancement configuration.
type EnhancementConfig struct {
	// Enabled controls whether outputs are enhanced.
	// Default: false
	Enabled bool `yaml:"enabled"`

	// BaseURL is the chat-completions API base URL.
	// Default: "https://api.openai.com/v1"
	BaseURL string `yaml:"base_url"`

	// APIKey authenticates requests. Usually set via
	// GROUNDCOVER_ENHANCEMENT_API_KEY rather than the file.
	APIKey string `yaml:"api_key"`

	// Model is the chat model to use.
	// Default: "gpt-4o-mini"
	Model string `yaml:"model"`

	// Timeout bounds each enhancement request.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// TelemetryConfig contains logging and metrics configuration.
type TelemetryConfig struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// MetricsEnabled registers Prometheus engine metrics.
	// Default: false
	MetricsEnabled bool `yaml:"metrics_enabled"`

	// MetricsNamespace prefixes metric names.
	// Default: "groundcover"
	MetricsNamespace string `yaml:"metrics_namespace"`
}
