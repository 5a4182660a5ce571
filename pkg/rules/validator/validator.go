package validator

import (
	"ecworks/groundcover/pkg/rules/ast"
	rulesErrors "ecworks/groundcover/pkg/rules/errors"
)

// Validator checks rule specifications for structural and semantic
// defects. A zero-defect rule set is safe to hand to the engine: every
// formula parses and every condition names a real field.
type Validator struct {
	errors *rulesErrors.ErrorList
}

// New creates a validator.
func New() *Validator {
	return &Validator{
		errors: rulesErrors.NewErrorList(),
	}
}

// Validate checks the rule set and returns nil when it is clean, or an
// *errors.ErrorList naming every defect found. A validator is single-use;
// create a new one per rule set.
func (v *Validator) Validate(rules []*ast.RuleSpec) error {
	v.validateStructure(rules)
	v.validateSemantics(rules)
	return v.errors.ToError()
}
