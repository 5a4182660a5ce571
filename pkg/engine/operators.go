package engine

import (
	"fmt"
	"strings"

	"ecworks/groundcover/pkg/rules/ast"
)

// evaluateOperator evaluates an operator comparison between the actual
// project value and the expected rule value.
func evaluateOperator(field string, op ast.Operator, actual, expected any) (bool, error) {
	switch op {
	case ast.OperatorEqual:
		return evaluateEqual(actual, expected), nil

	case ast.OperatorNotEqual:
		return !evaluateEqual(actual, expected), nil

	case ast.OperatorGreaterThan:
		a, b, err := toNumeric(field, op, actual, expected)
		if err != nil {
			return false, err
		}
		return a > b, nil

	case ast.OperatorGreaterEqual:
		a, b, err := toNumeric(field, op, actual, expected)
		if err != nil {
			return false, err
		}
		return a >= b, nil

	case ast.OperatorLessThan:
		a, b, err := toNumeric(field, op, actual, expected)
		if err != nil {
			return false, err
		}
		return a < b, nil

	case ast.OperatorLessEqual:
		a, b, err := toNumeric(field, op, actual, expected)
		if err != nil {
			return false, err
		}
		return a <= b, nil

	case ast.OperatorIn:
		return evaluateIn(field, actual, expected)

	case ast.OperatorContains:
		return evaluateContains(actual, expected), nil

	default:
		return false, fmt.Errorf("unknown operator %q", op)
	}
}

// evaluateEqual checks equality with numeric normalization, so a YAML 5
// equals a project 5.0.
func evaluateEqual(actual, expected any) bool {
	if actual == nil && expected == nil {
		return true
	}
	if actual == nil || expected == nil {
		return false
	}

	actualNum, actualOK := asFloat64(actual)
	expectedNum, expectedOK := asFloat64(expected)
	if actualOK && expectedOK {
		return actualNum == expectedNum
	}

	return actual == expected
}

// evaluateIn checks membership of actual in the expected list, using the
// same loose equality as eq.
func evaluateIn(field string, actual, expected any) (bool, error) {
	list, ok := expected.([]any)
	if !ok {
		return false, &TypeMismatchError{
			Field:    field,
			Operator: string(ast.OperatorIn),
			Message:  fmt.Sprintf("expected a list, got %T", expected),
		}
	}

	for _, elem := range list {
		if evaluateEqual(actual, elem) {
			return true, nil
		}
	}
	return false, nil
}

// evaluateContains checks substring containment after coercing both
// sides to strings.
func evaluateContains(actual, expected any) bool {
	return strings.Contains(coerceString(actual), coerceString(expected))
}

// toNumeric converts both operands for an ordered comparison. Non-numeric
// operands are a type mismatch: ordered operators have no meaning for
// strings or booleans here.
func toNumeric(field string, op ast.Operator, actual, expected any) (float64, float64, error) {
	a, ok := asFloat64(actual)
	if !ok {
		return 0, 0, &TypeMismatchError{
			Field:    field,
			Operator: string(op),
			Message:  fmt.Sprintf("project value %v (%T) is not numeric", actual, actual),
		}
	}

	b, ok := asFloat64(expected)
	if !ok {
		return 0, 0, &TypeMismatchError{
			Field:    field,
			Operator: string(op),
			Message:  fmt.Sprintf("rule value %v (%T) is not numeric", expected, expected),
		}
	}

	return a, b, nil
}

func asFloat64(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}

func coerceString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
