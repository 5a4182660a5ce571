package formula

import (
	"fmt"
	"sort"
)

// Env binds field identifiers to numeric values for evaluation.
type Env map[string]float64

// expr is a node in the parsed expression tree.
type expr interface {
	// eval computes the node's value against the environment.
	// src is the original formula text, carried for error reporting.
	eval(env Env, src string) (float64, error)

	// collectFields appends the identifiers referenced by this subtree.
	collectFields(set map[string]struct{})
}

// literal is a numeric constant.
type literal struct {
	value float64
}

func (n *literal) eval(env Env, src string) (float64, error) {
	return n.value, nil
}

func (n *literal) collectFields(set map[string]struct{}) {}

// fieldRef references a numeric project field by name.
type fieldRef struct {
	name string
}

func (n *fieldRef) eval(env Env, src string) (float64, error) {
	v, ok := env[n.name]
	if !ok {
		return 0, &FieldError{Formula: src, Name: n.name}
	}
	return v, nil
}

func (n *fieldRef) collectFields(set map[string]struct{}) {
	set[n.name] = struct{}{}
}

// binary applies one of + - * / to two operands.
type binary struct {
	op    tokenKind
	left  expr
	right expr
}

func (n *binary) eval(env Env, src string) (float64, error) {
	l, err := n.left.eval(env, src)
	if err != nil {
		return 0, err
	}
	r, err := n.right.eval(env, src)
	if err != nil {
		return 0, err
	}

	switch n.op {
	case tokenPlus:
		return l + r, nil
	case tokenMinus:
		return l - r, nil
	case tokenStar:
		return l * r, nil
	case tokenSlash:
		if r == 0 {
			return 0, &EvalError{Formula: src, Message: "division by zero"}
		}
		return l / r, nil
	default:
		// Unreachable: the parser only builds the four operators.
		return 0, &EvalError{Formula: src, Message: fmt.Sprintf("unknown operator %d", n.op)}
	}
}

func (n *binary) collectFields(set map[string]struct{}) {
	n.left.collectFields(set)
	n.right.collectFields(set)
}

// unary negates its operand.
type unary struct {
	operand expr
}

func (n *unary) eval(env Env, src string) (float64, error) {
	v, err := n.operand.eval(env, src)
	if err != nil {
		return 0, err
	}
	return -v, nil
}

func (n *unary) collectFields(set map[string]struct{}) {
	n.operand.collectFields(set)
}

// Formula is a parsed, immutable quantity formula ready for evaluation.
type Formula struct {
	src  string
	root expr
}

// Source returns the original formula text.
func (f *Formula) Source() string {
	return f.src
}

// Eval evaluates the formula against the environment. Identical formula
// and environment always yield the identical result: evaluation is a pure
// tree walk with no randomness and no access outside env.
func (f *Formula) Eval(env Env) (float64, error) {
	return f.root.eval(env, f.src)
}

// Fields returns the sorted set of field identifiers the formula
// references. Used by rule validation to reject unknown fields at load
// time without evaluating the formula.
func (f *Formula) Fields() []string {
	set := make(map[string]struct{})
	f.root.collectFields(set)

	fields := make([]string, 0, len(set))
	for name := range set {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}
