package ast

// Operator is a comparison operator in a rule condition.
type Operator string

const (
	OperatorEqual        Operator = "eq"
	OperatorNotEqual     Operator = "ne"
	OperatorGreaterThan  Operator = "gt"
	OperatorGreaterEqual Operator = "gte"
	OperatorLessThan     Operator = "lt"
	OperatorLessEqual    Operator = "lte"
	OperatorIn           Operator = "in"
	OperatorContains     Operator = "contains"
)

// KnownOperator reports whether op is one of the recognized operators.
func KnownOperator(op Operator) bool {
	switch op {
	case OperatorEqual, OperatorNotEqual,
		OperatorGreaterThan, OperatorGreaterEqual,
		OperatorLessThan, OperatorLessEqual,
		OperatorIn, OperatorContains:
		return true
	default:
		return false
	}
}

// Condition is a single field/operator/value test. A rule's conditions are
// ANDed: every condition must hold for the rule to fire. Conditions are
// stateless value objects; evaluation never mutates them.
type Condition struct {
	// Field names the project field to test. Direct project attributes
	// plus the derived fields has_drainage_features and
	// drainage_feature_count are allowed; anything else is rejected at
	// rule-load time.
	Field string

	// Operator is the comparison operator.
	Operator Operator

	// Value is the comparison operand: a scalar for most operators, a
	// list for "in". Numbers are normalized to float64 by the parser.
	Value any
}
