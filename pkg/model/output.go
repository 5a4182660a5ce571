package model

import "time"

// PracticeType identifies an erosion-control practice. The set below covers
// the built-in catalogue; custom rules may introduce new practice types, so
// unlike soil and slope this is an open enumeration.
type PracticeType string

const (
	// Temporary practices
	PracticeSiltFence            PracticeType = "silt_fence"
	PracticeInletProtection      PracticeType = "inlet_protection"
	PracticeSedimentTrap         PracticeType = "sediment_trap"
	PracticeTemporarySeeding     PracticeType = "temporary_seeding"
	PracticeMulch                PracticeType = "mulch"
	PracticeErosionBlanket       PracticeType = "erosion_control_blanket"
	PracticeConstructionEntrance PracticeType = "construction_entrance"
	PracticeDustControl          PracticeType = "dust_control"

	// Permanent practices
	PracticePermanentSeeding PracticeType = "permanent_seeding"
	PracticeSodding          PracticeType = "sodding"
	PracticeRiprap           PracticeType = "riprap"
	PracticeRetainingWall    PracticeType = "retaining_wall"
	PracticeBioswale         PracticeType = "bioswale"
	PracticeDetentionBasin   PracticeType = "detention_basin"
)

// ECPractice is one recommended erosion-control practice, with full
// traceability back to the rule that produced it.
type ECPractice struct {
	// PracticeType identifies the practice.
	PracticeType PracticeType `yaml:"practice_type" json:"practice_type"`

	// IsTemporary indicates a temporary (construction-phase) practice.
	IsTemporary bool `yaml:"is_temporary" json:"is_temporary"`

	// Quantity is the computed quantity in Unit.
	Quantity float64 `yaml:"quantity" json:"quantity"`

	// Unit is the unit of measure (LF, SY, EA, AC, ...).
	Unit string `yaml:"unit" json:"unit"`

	// Location describes where the practice applies. Copied verbatim from
	// the rule's location template.
	Location string `yaml:"location" json:"location"`

	// RuleID is the id of the rule that produced this practice.
	RuleID string `yaml:"rule_id" json:"rule_id"`

	// RuleSource is the source document or standard behind the rule.
	RuleSource string `yaml:"rule_source" json:"rule_source"`

	// Justification explains why the practice is required.
	Justification string `yaml:"justification" json:"justification"`

	// Notes carries additional notes from the rule.
	Notes string `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// PayItem is one construction billing line, one-to-one with the practice
// that generated it.
type PayItem struct {
	// ItemNumber is the pay item number or code.
	ItemNumber string `yaml:"item_number" json:"item_number"`

	// Description is the pay item description.
	Description string `yaml:"description" json:"description"`

	// Quantity matches the generating practice's quantity.
	Quantity float64 `yaml:"quantity" json:"quantity"`

	// Unit is the unit of measure.
	Unit string `yaml:"unit" json:"unit"`

	// EstimatedUnitCost is the estimated cost per unit.
	EstimatedUnitCost float64 `yaml:"estimated_unit_cost" json:"estimated_unit_cost"`

	// ECPracticeRef links back to the practice that generated this item,
	// as "<practice_type>_<rule_id>" so refs stay unique when several
	// rules recommend the same practice type.
	ECPracticeRef string `yaml:"ec_practice_ref" json:"ec_practice_ref"`

	// RuleID is the id of the rule that produced this item.
	RuleID string `yaml:"rule_id" json:"rule_id"`

	// RuleSource is the source document or standard behind the rule.
	RuleSource string `yaml:"rule_source" json:"rule_source"`
}

// Summary aggregates counts and cost over a run's output.
type Summary struct {
	TotalTemporaryPractices int     `yaml:"total_temporary_practices" json:"total_temporary_practices"`
	TotalPermanentPractices int     `yaml:"total_permanent_practices" json:"total_permanent_practices"`
	TotalPayItems           int     `yaml:"total_pay_items" json:"total_pay_items"`
	TotalEstimatedCost      float64 `yaml:"total_estimated_cost" json:"total_estimated_cost"`
}

// ProjectOutput is the full result of one engine run. It is assembled once
// and never mutated afterwards; re-running an unchanged project against an
// unchanged rule set yields an identical output apart from Timestamp.
type ProjectOutput struct {
	// ProjectName echoes the input project name.
	ProjectName string `yaml:"project_name" json:"project_name"`

	// Timestamp records when the output was generated.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`

	// TemporaryPractices lists temporary practices in rule order.
	TemporaryPractices []ECPractice `yaml:"temporary_practices" json:"temporary_practices"`

	// PermanentPractices lists permanent practices in rule order.
	PermanentPractices []ECPractice `yaml:"permanent_practices" json:"permanent_practices"`

	// PayItems lists pay items in rule order.
	PayItems []PayItem `yaml:"pay_items" json:"pay_items"`

	// Summary aggregates counts and total estimated cost.
	Summary Summary `yaml:"summary" json:"summary"`

	// Enhancement carries optional supplementary text produced after the
	// deterministic result. Empty when no enhancer ran or the enhancer was
	// unavailable; it never alters the fields above.
	Enhancement string `yaml:"enhancement,omitempty" json:"enhancement,omitempty"`
}
