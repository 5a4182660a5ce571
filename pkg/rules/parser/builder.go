package parser

import (
	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules/ast"
	rulesErrors "ecworks/groundcover/pkg/rules/errors"
)

// builder transforms intermediate YAML structures into rule specifications.
// It accumulates errors so a single pass reports every defective rule.
type builder struct {
	errors *rulesErrors.ErrorList
}

func newBuilder() *builder {
	return &builder{
		errors: rulesErrors.NewErrorList(),
	}
}

// buildRules transforms a parsed rule file into rule specifications.
func (b *builder) buildRules(file *yamlRuleFile) ([]*ast.RuleSpec, error) {
	rules := make([]*ast.RuleSpec, 0, len(file.Rules))
	for i := range file.Rules {
		rule := b.buildRule(&file.Rules[i])
		if rule != nil {
			rules = append(rules, rule)
		}
	}

	if b.errors.HasErrors() {
		return nil, b.errors
	}
	return rules, nil
}

// buildRule transforms one intermediate rule. Returns nil when the rule is
// too broken to represent; the defect is recorded on the error list.
func (b *builder) buildRule(yr *yamlRule) *ast.RuleSpec {
	if yr.ID == "" {
		b.errors.AddErrorWithSuggestion(
			rulesErrors.ErrorTypeStructural,
			"",
			"rule is missing an id",
			"add a unique 'id' field to every rule",
		)
		return nil
	}

	rule := &ast.RuleSpec{
		ID:       yr.ID,
		Name:     yr.Name,
		Source:   yr.Source,
		Priority: yr.Priority,
		Notes:    yr.Notes,
	}

	rule.Conditions = make([]ast.Condition, 0, len(yr.Conditions))
	for _, yc := range yr.Conditions {
		rule.Conditions = append(rule.Conditions, ast.Condition{
			Field:    yc.Field,
			Operator: ast.Operator(yc.Operator),
			Value:    normalizeValue(yc.Value),
		})
	}

	rule.Action = b.buildAction(yr)
	return rule
}

func (b *builder) buildAction(yr *yamlRule) ast.RuleAction {
	// Practices are temporary unless the rule says otherwise.
	isTemporary := true
	if yr.Action.IsTemporary != nil {
		isTemporary = *yr.Action.IsTemporary
	}

	return ast.RuleAction{
		PracticeType:       model.PracticeType(yr.Action.PracticeType),
		IsTemporary:        isTemporary,
		QuantityFormula:    yr.Action.QuantityFormula,
		Unit:               yr.Action.Unit,
		LocationTemplate:   yr.Action.LocationTemplate,
		Justification:      yr.Action.Justification,
		PayItemNumber:      yr.Action.PayItemNumber,
		PayItemDescription: yr.Action.PayItemDescription,
		EstimatedUnitCost:  yr.Action.EstimatedUnitCost,
	}
}

// normalizeValue converts YAML-decoded numbers to float64 so condition
// evaluation compares a single numeric representation. Lists are
// normalized element-wise.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalizeValue(item)
		}
		return out
	default:
		return v
	}
}
