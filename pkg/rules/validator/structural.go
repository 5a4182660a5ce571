package validator

import (
	"fmt"

	"ecworks/groundcover/pkg/rules/ast"
	rulesErrors "ecworks/groundcover/pkg/rules/errors"
)

// validateStructure checks that every rule carries the fields it must
// carry. It records defects on the validator's error list.
func (v *Validator) validateStructure(rules []*ast.RuleSpec) {
	seen := make(map[string]bool, len(rules))

	for _, rule := range rules {
		if rule.ID == "" {
			v.errors.AddErrorWithSuggestion(
				rulesErrors.ErrorTypeStructural,
				"",
				"rule is missing an id",
				"add a unique 'id' field to every rule",
			)
			continue
		}

		if seen[rule.ID] {
			v.errors.AddErrorWithSuggestion(
				rulesErrors.ErrorTypeStructural,
				rule.ID,
				"duplicate rule id",
				"rule ids must be unique within a rule set",
			)
		}
		seen[rule.ID] = true

		v.validateConditionsStructure(rule)
		v.validateActionStructure(rule)
	}
}

func (v *Validator) validateConditionsStructure(rule *ast.RuleSpec) {
	for i, cond := range rule.Conditions {
		if cond.Field == "" {
			v.errors.AddError(
				rulesErrors.ErrorTypeStructural,
				rule.ID,
				fmt.Sprintf("condition %d has no field", i),
			)
		}

		if !ast.KnownOperator(cond.Operator) {
			v.errors.AddErrorWithSuggestion(
				rulesErrors.ErrorTypeStructural,
				rule.ID,
				fmt.Sprintf("condition %d has unrecognized operator %q", i, cond.Operator),
				"use one of: eq, ne, gt, gte, lt, lte, in, contains",
			)
		}

		// The in operator needs a list to test membership against.
		if cond.Operator == ast.OperatorIn {
			if _, ok := cond.Value.([]any); !ok {
				v.errors.AddErrorWithSuggestion(
					rulesErrors.ErrorTypeStructural,
					rule.ID,
					fmt.Sprintf("condition %d uses 'in' with a non-list value", i),
					"give 'in' conditions a YAML list value, e.g. [steep, very_steep]",
				)
			}
		}
	}
}

func (v *Validator) validateActionStructure(rule *ast.RuleSpec) {
	action := rule.Action

	if action.PracticeType == "" {
		v.errors.AddError(rulesErrors.ErrorTypeStructural, rule.ID, "action is missing practice_type")
	}
	if action.QuantityFormula == "" {
		v.errors.AddError(rulesErrors.ErrorTypeStructural, rule.ID, "action is missing quantity_formula")
	}
	if action.Unit == "" {
		v.errors.AddError(rulesErrors.ErrorTypeStructural, rule.ID, "action is missing unit")
	}
	if action.EstimatedUnitCost < 0 {
		v.errors.AddError(
			rulesErrors.ErrorTypeStructural,
			rule.ID,
			fmt.Sprintf("estimated_unit_cost %.2f is negative", action.EstimatedUnitCost),
		)
	}
}
