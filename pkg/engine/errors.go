package engine

import "fmt"

// TypeMismatchError indicates a condition compared values of
// incompatible types, e.g. an ordered operator against a string field.
type TypeMismatchError struct {
	Field    string
	Operator string
	Message  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("condition on %q with operator %q: %s", e.Field, e.Operator, e.Message)
}

// RuleEvaluationError wraps an error raised while evaluating one rule,
// naming the rule and the stage that failed.
type RuleEvaluationError struct {
	RuleID string
	Stage  string // "condition" or "formula"
	Err    error
}

func (e *RuleEvaluationError) Error() string {
	return fmt.Sprintf("rule %q: %s evaluation failed: %v", e.RuleID, e.Stage, e.Err)
}

func (e *RuleEvaluationError) Unwrap() error {
	return e.Err
}
