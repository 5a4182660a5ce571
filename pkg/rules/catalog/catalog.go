// Package catalog holds the built-in erosion-control rule set.
//
// The defaults encode baseline practice drawn from the EPA NPDES
// Construction General Permit, state DOT standard specifications, and
// local stormwater ordinances: perimeter sediment control, inlet
// protection, steep-slope blanketing, a stabilized construction
// entrance, and permanent seeding.
// Jurisdictions layer their own rules on top via custom rule files; a
// custom rule with a default's id replaces that default entirely.
package catalog

import (
	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules/ast"
)

// Defaults returns a fresh copy of the built-in rule set, ordered by
// priority. Callers own the returned slice.
func Defaults() []*ast.RuleSpec {
	return []*ast.RuleSpec{
		{
			ID:       "SILT_FENCE_001",
			Name:     "Perimeter Silt Fence",
			Source:   "EPA NPDES CGP",
			Priority: 10,
			Conditions: []ast.Condition{
				{Field: "total_disturbed_acres", Operator: ast.OperatorGreaterThan, Value: float64(0)},
			},
			Action: ast.RuleAction{
				PracticeType:       model.PracticeSiltFence,
				IsTemporary:        true,
				QuantityFormula:    "total_disturbed_acres * 200",
				Unit:               "LF",
				LocationTemplate:   "Perimeter of disturbed area",
				Justification:      "Sediment barrier required at the downslope perimeter of all disturbed areas",
				PayItemNumber:      "EC-001",
				PayItemDescription: "Temporary silt fence, installed and maintained",
				EstimatedUnitCost:  3.50,
			},
		},
		{
			ID:       "INLET_PROT_001",
			Name:     "Storm Drain Inlet Protection",
			Source:   "Local Stormwater Ordinance",
			Priority: 20,
			Conditions: []ast.Condition{
				{Field: "has_drainage_features", Operator: ast.OperatorEqual, Value: true},
			},
			Action: ast.RuleAction{
				PracticeType:       model.PracticeInletProtection,
				IsTemporary:        true,
				QuantityFormula:    "drainage_feature_count",
				Unit:               "EA",
				LocationTemplate:   "At each storm drain inlet",
				Justification:      "Inlet protection required at every storm drain receiving runoff from disturbed areas",
				PayItemNumber:      "EC-002",
				PayItemDescription: "Inlet protection device, installed and maintained",
				EstimatedUnitCost:  250.00,
			},
		},
		{
			ID:       "STEEP_SLOPE_001",
			Name:     "Steep Slope Erosion Control Blanket",
			Source:   "State DOT Standard Specifications",
			Priority: 30,
			Conditions: []ast.Condition{
				{Field: "predominant_slope", Operator: ast.OperatorIn, Value: []any{"steep", "very_steep"}},
			},
			Action: ast.RuleAction{
				PracticeType:       model.PracticeErosionBlanket,
				IsTemporary:        false,
				QuantityFormula:    "total_disturbed_acres * 43560 / 9",
				Unit:               "SY",
				LocationTemplate:   "All slopes steeper than 3:1",
				Justification:      "Rolled erosion control product required on steep slopes to prevent rill formation",
				PayItemNumber:      "EC-005",
				PayItemDescription: "Erosion control blanket, Type 2, installed",
				EstimatedUnitCost:  2.75,
			},
		},
		{
			ID:       "CONSTRUCTION_ENT_001",
			Name:     "Stabilized Construction Entrance",
			Source:   "EPA NPDES CGP",
			Priority: 40,
			Conditions: []ast.Condition{
				{Field: "total_disturbed_acres", Operator: ast.OperatorGreaterEqual, Value: float64(1.0)},
			},
			Action: ast.RuleAction{
				PracticeType:       model.PracticeConstructionEntrance,
				IsTemporary:        true,
				QuantityFormula:    "1",
				Unit:               "EA",
				LocationTemplate:   "At primary site access point",
				Justification:      "Stabilized entrance required to prevent sediment tracking onto public roads",
				PayItemNumber:      "EC-003",
				PayItemDescription: "Stabilized construction entrance, aggregate",
				EstimatedUnitCost:  1500.00,
			},
		},
		{
			ID:       "PERM_SEED_001",
			Name:     "Permanent Seeding",
			Source:   "State DOT Standard Specifications",
			Priority: 50,
			Conditions: []ast.Condition{
				{Field: "total_disturbed_acres", Operator: ast.OperatorGreaterThan, Value: float64(0)},
			},
			Action: ast.RuleAction{
				PracticeType:       model.PracticePermanentSeeding,
				IsTemporary:        false,
				QuantityFormula:    "total_disturbed_acres",
				Unit:               "AC",
				LocationTemplate:   "All disturbed areas at final grade",
				Justification:      "Permanent vegetative stabilization required on all disturbed areas",
				PayItemNumber:      "EC-010",
				PayItemDescription: "Permanent seeding, including soil preparation and mulch",
				EstimatedUnitCost:  500.00,
			},
		},
	}
}
