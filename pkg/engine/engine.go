package engine

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"ecworks/groundcover/pkg/enhance"
	"ecworks/groundcover/pkg/formula"
	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules"
	"ecworks/groundcover/pkg/telemetry/metrics"
)

// Config configures a rule engine. The zero value is usable: no metrics,
// no enhancer, default logger, wall-clock timestamps.
type Config struct {
	// Logger receives evaluation logs. Nil means slog.Default().
	Logger *slog.Logger

	// Metrics receives evaluation counters and timings. Optional.
	Metrics *metrics.EngineMetrics

	// Enhancer produces optional narrative after the deterministic
	// result. Optional; failures never fail the run.
	Enhancer enhance.Enhancer

	// Now supplies output timestamps. Nil means time.Now. Tests inject a
	// fixed clock here to get byte-identical outputs.
	Now func() time.Time
}

// Engine evaluates a validated rule set against projects. An engine is
// safe for concurrent use: evaluation reads the repository and project
// and mutates neither.
type Engine struct {
	repo     *rules.Repository
	logger   *slog.Logger
	metrics  *metrics.EngineMetrics
	enhancer enhance.Enhancer
	now      func() time.Time
}

// New creates an engine over the given repository.
func New(repo *rules.Repository, cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Engine{
		repo:     repo,
		logger:   logger.With("component", "engine"),
		metrics:  cfg.Metrics,
		enhancer: cfg.Enhancer,
		now:      now,
	}
}

// Process evaluates every rule against the project and assembles the
// erosion-control plan. All matching rules apply, in ascending priority
// order. Any condition or formula error aborts the run; the returned
// error names the rule via RuleEvaluationError.
func (e *Engine) Process(ctx context.Context, project *model.ProjectInput) (*model.ProjectOutput, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	start := time.Now()
	env := formulaEnv(project)

	logger := e.logger.With("run_id", runID, "project", project.ProjectName)
	logger.Info("processing project",
		"rules", e.repo.Len(),
		"disturbed_acres", project.TotalDisturbedAcres,
	)

	var applied []appliedRule
	for _, rule := range e.repo.Rules() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		matched, err := ruleMatches(rule, project)
		if err != nil {
			e.metrics.RecordFailure(rule.ID)
			logger.Error("condition evaluation failed", "rule_id", rule.ID, "error", err)
			return nil, &RuleEvaluationError{RuleID: rule.ID, Stage: "condition", Err: err}
		}
		if !matched {
			e.metrics.RecordMiss(rule.ID)
			continue
		}
		e.metrics.RecordHit(rule.ID)

		quantity, err := e.evaluateQuantity(rule.Action.QuantityFormula, env)
		if err != nil {
			e.metrics.RecordFailure(rule.ID)
			logger.Error("formula evaluation failed", "rule_id", rule.ID, "error", err)
			return nil, &RuleEvaluationError{RuleID: rule.ID, Stage: "formula", Err: err}
		}

		logger.Debug("rule applied",
			"rule_id", rule.ID,
			"practice", rule.Action.PracticeType,
			"quantity", quantity,
			"unit", rule.Action.Unit,
		)
		applied = append(applied, appliedRule{rule: rule, quantity: quantity})
	}

	output := assembleOutput(project, applied, e.now())
	e.enhanceOutput(ctx, project, output, logger)

	e.metrics.RecordProject(time.Since(start))
	logger.Info("project processed",
		"practices", output.Summary.TotalTemporaryPractices+output.Summary.TotalPermanentPractices,
		"total_cost", output.Summary.TotalEstimatedCost,
	)
	return output, nil
}

func (e *Engine) evaluateQuantity(src string, env formula.Env) (float64, error) {
	f, err := formula.Parse(src)
	if err != nil {
		return 0, err
	}
	return f.Eval(env)
}

// enhanceOutput runs the optional enhancer. An unavailable or failing
// enhancer leaves the deterministic output untouched.
func (e *Engine) enhanceOutput(ctx context.Context, project *model.ProjectInput, output *model.ProjectOutput, logger *slog.Logger) {
	if e.enhancer == nil {
		return
	}

	text, err := e.enhancer.Enhance(ctx, project, output)
	if err != nil {
		if errors.Is(err, enhance.ErrUnavailable) {
			logger.Warn("enhancement unavailable, continuing without it")
		} else {
			logger.Warn("enhancement failed, continuing without it", "error", err)
		}
		return
	}
	output.Enhancement = text
}
