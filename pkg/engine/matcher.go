package engine

import (
	"fmt"

	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules/ast"
)

// ruleMatches reports whether every condition of the rule holds for the
// project. Conditions are ANDed and an empty condition list always
// matches. Evaluation stops at the first failing or erroring condition.
func ruleMatches(rule *ast.RuleSpec, project *model.ProjectInput) (bool, error) {
	for i, cond := range rule.Conditions {
		actual, err := resolveField(project, cond.Field)
		if err != nil {
			return false, fmt.Errorf("condition %d: %w", i, err)
		}

		ok, err := evaluateOperator(cond.Field, cond.Operator, actual, cond.Value)
		if err != nil {
			return false, fmt.Errorf("condition %d: %w", i, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
