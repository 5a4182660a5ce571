// Package metrics provides Prometheus instrumentation for rule
// evaluation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EngineMetrics tracks rule engine evaluation activity.
//
// Metrics:
//   - groundcover_rule_evaluations_total: Rule evaluations by rule and outcome
//   - groundcover_rule_hits_total: Number of times a rule matched
//   - groundcover_rule_misses_total: Number of times a rule did not match
//   - groundcover_project_duration_seconds: Whole-project processing duration
//   - groundcover_project_failures_total: Projects aborted by an evaluation error
type EngineMetrics struct {
	evaluationsTotal *prometheus.CounterVec
	hitsTotal        *prometheus.CounterVec
	missesTotal      *prometheus.CounterVec
	projectDuration  prometheus.Histogram
	projectFailures  *prometheus.CounterVec
}

// NewEngineMetrics creates and registers engine metrics with the provided
// registry.
func NewEngineMetrics(namespace string, registry *prometheus.Registry) *EngineMetrics {
	em := &EngineMetrics{
		evaluationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rule_evaluations_total",
				Help:      "Total number of rule evaluations",
			},
			[]string{"rule_id", "outcome"},
		),

		hitsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rule_hits_total",
				Help:      "Total number of rule matches",
			},
			[]string{"rule_id"},
		),

		missesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rule_misses_total",
				Help:      "Total number of rule misses",
			},
			[]string{"rule_id"},
		),

		projectDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "project_duration_seconds",
				Help:      "Duration of whole-project rule processing in seconds",
				// Evaluation is in-memory arithmetic; it should be fast.
				Buckets: prometheus.ExponentialBuckets(0.000001, 2, 15), // 1µs to 16ms
			},
		),

		projectFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "project_failures_total",
				Help:      "Total number of projects aborted by an evaluation error",
			},
			[]string{"rule_id"},
		),
	}

	registry.MustRegister(
		em.evaluationsTotal,
		em.hitsTotal,
		em.missesTotal,
		em.projectDuration,
		em.projectFailures,
	)

	return em
}

// RecordHit records a rule whose conditions were satisfied. All recorders
// are nil-safe so the engine can run unmetered.
func (em *EngineMetrics) RecordHit(ruleID string) {
	if em == nil {
		return
	}
	em.evaluationsTotal.WithLabelValues(ruleID, "hit").Inc()
	em.hitsTotal.WithLabelValues(ruleID).Inc()
}

// RecordMiss records a rule whose conditions were not satisfied.
func (em *EngineMetrics) RecordMiss(ruleID string) {
	if em == nil {
		return
	}
	em.evaluationsTotal.WithLabelValues(ruleID, "miss").Inc()
	em.missesTotal.WithLabelValues(ruleID).Inc()
}

// RecordProject records the duration of one complete project evaluation.
func (em *EngineMetrics) RecordProject(duration time.Duration) {
	if em == nil {
		return
	}
	em.projectDuration.Observe(duration.Seconds())
}

// RecordFailure records a project aborted by an error in the given rule.
func (em *EngineMetrics) RecordFailure(ruleID string) {
	if em == nil {
		return
	}
	em.evaluationsTotal.WithLabelValues(ruleID, "error").Inc()
	em.projectFailures.WithLabelValues(ruleID).Inc()
}
