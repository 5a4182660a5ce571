package ast

import "ecworks/groundcover/pkg/model"

// RuleAction describes what a rule produces when its conditions hold: one
// erosion-control practice and its matching pay item.
type RuleAction struct {
	// PracticeType identifies the practice to recommend.
	PracticeType model.PracticeType

	// IsTemporary routes the practice to the temporary or permanent list.
	IsTemporary bool

	// QuantityFormula is a restricted arithmetic expression over project
	// numeric fields (see pkg/formula). It must parse at load time.
	QuantityFormula string

	// Unit is the unit of measure for the computed quantity.
	Unit string

	// LocationTemplate describes where the practice applies. Copied
	// verbatim into the output; the engine performs no interpolation.
	LocationTemplate string

	// Justification explains why the practice is required.
	Justification string

	// PayItemNumber is the construction pay item code.
	PayItemNumber string

	// PayItemDescription is the pay item description.
	PayItemDescription string

	// EstimatedUnitCost is the estimated cost per unit. Must be >= 0.
	EstimatedUnitCost float64
}

// RuleSpec is one declarative rule: a condition set plus an action.
// Rule ids are unique across the merged rule set; a custom rule whose id
// matches an existing rule replaces it entirely.
type RuleSpec struct {
	// ID uniquely identifies the rule. Required, non-empty.
	ID string

	// Name is the human-readable rule name.
	Name string

	// Source is the source document or standard the rule encodes
	// (e.g., "EPA NPDES CGP", "State DOT Standard Specifications").
	Source string

	// Priority orders evaluation and output: lower evaluates first.
	// Ties keep insertion order (defaults before appended customs).
	Priority int

	// Conditions are ANDed; an empty list always matches.
	Conditions []Condition

	// Action describes the practice and pay item to produce on match.
	Action RuleAction

	// Notes carries optional free-form notes, copied to the practice.
	Notes string
}
