package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ecworks/groundcover/pkg/config"
	"ecworks/groundcover/pkg/engine"
	"ecworks/groundcover/pkg/enhance"
	"ecworks/groundcover/pkg/history"
	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/report"
	"ecworks/groundcover/pkg/rules"
	"ecworks/groundcover/pkg/rules/ast"
	"ecworks/groundcover/pkg/rules/source"
	"ecworks/groundcover/pkg/telemetry/metrics"
)

var (
	processInput  string
	processOutput string
	processFormat string
	processRules  string
	processNoSave bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Evaluate a project against the rule set",
	Long: `Evaluate a project description against the effective rule set and
produce the erosion-control plan.

The project file may be YAML or JSON. Output formats:
  yaml      Machine-readable plan (default)
  json      Machine-readable plan
  markdown  Human-readable report

Examples:
  groundcover process --input project.yaml
  groundcover process --input project.yaml --rules county.yaml --format markdown -o plan.md`,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&processInput, "input", "i", "", "project input file (YAML or JSON)")
	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "output file (default: stdout)")
	processCmd.Flags().StringVarP(&processFormat, "format", "f", "yaml", "output format: yaml, json, or markdown")
	processCmd.Flags().StringVarP(&processRules, "rules", "r", "", "custom rule file merged over the built-in catalogue")
	processCmd.Flags().BoolVar(&processNoSave, "no-history", false, "do not record this run in history")
	processCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	project, err := model.LoadProjectInput(processInput)
	if err != nil {
		return fmt.Errorf("loading project: %w", err)
	}

	repo, err := buildRepository(cfg)
	if err != nil {
		return err
	}

	eng := engine.New(repo, engine.Config{
		Logger:   logger,
		Metrics:  buildMetrics(cfg),
		Enhancer: buildEnhancer(cfg, logger),
	})

	output, err := eng.Process(cmd.Context(), project)
	if err != nil {
		return err
	}

	if cfg.History.Enabled && !processNoSave {
		if err := saveHistory(cmd.Context(), cfg, logger, project, output, repo.Len()); err != nil {
			// History is bookkeeping; a full plan on stdout beats aborting.
			logger.Warn("recording run history failed", "error", err)
		}
	}

	return writeOutput(output)
}

// buildRepository merges the custom rule file (flag beats config) over
// the built-in catalogue.
func buildRepository(cfg *config.Config) (*rules.Repository, error) {
	path := processRules
	if path == "" {
		path = cfg.Rules.CustomRulesPath
	}

	var custom []*ast.RuleSpec
	if path != "" {
		loaded, err := source.NewFileSource(path).Load()
		if err != nil {
			return nil, err
		}
		custom = loaded
	}
	return rules.NewRepository(custom)
}

func buildMetrics(cfg *config.Config) *metrics.EngineMetrics {
	if !cfg.Telemetry.MetricsEnabled {
		return nil
	}
	return metrics.NewEngineMetrics(cfg.Telemetry.MetricsNamespace, prometheus.NewRegistry())
}

func buildEnhancer(cfg *config.Config, logger *slog.Logger) enhance.Enhancer {
	if !cfg.Enhancement.Enabled {
		return nil
	}
	return enhance.NewOpenAIEnhancer(enhance.OpenAIConfig{
		BaseURL: cfg.Enhancement.BaseURL,
		APIKey:  cfg.Enhancement.APIKey,
		Model:   cfg.Enhancement.Model,
		Timeout: cfg.Enhancement.Timeout,
	}, logger)
}

func openHistoryStore(cfg *config.Config, logger *slog.Logger) (history.Store, error) {
	if cfg.History.Backend == "memory" {
		return history.NewMemoryStore(), nil
	}
	sqliteCfg := history.DefaultSQLiteConfig()
	sqliteCfg.Path = cfg.History.SQLitePath
	return history.NewSQLiteStore(sqliteCfg, logger)
}

func saveHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger, project *model.ProjectInput, output *model.ProjectOutput, ruleCount int) error {
	store, err := openHistoryStore(cfg, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	outputJSON, err := json.Marshal(output)
	if err != nil {
		return err
	}

	return store.Save(ctx, &history.EvaluationRecord{
		ID:                 uuid.NewString(),
		ProjectName:        project.ProjectName,
		Jurisdiction:       project.Jurisdiction,
		EvaluatedAt:        output.Timestamp,
		RuleCount:          ruleCount,
		PracticeCount:      output.Summary.TotalTemporaryPractices + output.Summary.TotalPermanentPractices,
		TotalEstimatedCost: output.Summary.TotalEstimatedCost,
		OutputJSON:         string(outputJSON),
	})
}

func writeOutput(output *model.ProjectOutput) error {
	var data []byte
	var err error

	switch processFormat {
	case "yaml":
		data, err = yaml.Marshal(output)
	case "json":
		data, err = json.MarshalIndent(output, "", "  ")
	case "markdown":
		data = []byte(report.Markdown(output))
	default:
		return fmt.Errorf("unknown output format %q (use yaml, json, or markdown)", processFormat)
	}
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}

	if processOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(processOutput, data, 0o644)
}
