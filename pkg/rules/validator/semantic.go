package validator

import (
	"fmt"
	"strings"

	"ecworks/groundcover/pkg/formula"
	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules/ast"
	rulesErrors "ecworks/groundcover/pkg/rules/errors"
)

// validateSemantics checks that rules mean something against the project
// data model: condition fields must exist and quantity formulas must
// parse and reference only numeric fields.
func (v *Validator) validateSemantics(rules []*ast.RuleSpec) {
	for _, rule := range rules {
		if rule.ID == "" {
			continue // Already reported structurally
		}
		v.validateConditionFields(rule)
		v.validateFormula(rule)
	}
}

func (v *Validator) validateConditionFields(rule *ast.RuleSpec) {
	for i, cond := range rule.Conditions {
		if cond.Field == "" {
			continue
		}
		if !model.KnownConditionField(cond.Field) {
			v.errors.AddErrorWithSuggestion(
				rulesErrors.ErrorTypeSemantic,
				rule.ID,
				fmt.Sprintf("condition %d references unknown field %q", i, cond.Field),
				fmt.Sprintf("known fields: %s", strings.Join(model.ConditionFieldNames(), ", ")),
			)
		}
	}
}

func (v *Validator) validateFormula(rule *ast.RuleSpec) {
	src := rule.Action.QuantityFormula
	if src == "" {
		return // Already reported structurally
	}

	f, err := formula.Parse(src)
	if err != nil {
		v.errors.AddErrorWithSuggestion(
			rulesErrors.ErrorTypeFormula,
			rule.ID,
			fmt.Sprintf("quantity formula does not parse: %v", err),
			"formulas allow numbers, field names, + - * /, and parentheses",
		)
		return
	}

	for _, field := range f.Fields() {
		if !model.KnownFormulaField(field) {
			v.errors.AddErrorWithSuggestion(
				rulesErrors.ErrorTypeFormula,
				rule.ID,
				fmt.Sprintf("quantity formula references unknown field %q", field),
				fmt.Sprintf("known numeric fields: %s", strings.Join(model.FormulaFieldNames(), ", ")),
			)
		}
	}
}
