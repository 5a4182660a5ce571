package engine

import (
	"math"
	"time"

	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules/ast"
)

// appliedRule is one matched rule with its computed quantity.
type appliedRule struct {
	rule     *ast.RuleSpec
	quantity float64
}

// assembleOutput builds the final project output from the applied rules,
// in the order they were applied. Practices split into temporary and
// permanent lists; each applied rule also yields one pay item linked back
// to its practice.
func assembleOutput(project *model.ProjectInput, applied []appliedRule, timestamp time.Time) *model.ProjectOutput {
	out := &model.ProjectOutput{
		ProjectName:        project.ProjectName,
		Timestamp:          timestamp,
		TemporaryPractices: make([]model.ECPractice, 0),
		PermanentPractices: make([]model.ECPractice, 0),
		PayItems:           make([]model.PayItem, 0, len(applied)),
	}

	var totalCost float64
	for _, ar := range applied {
		action := ar.rule.Action
		quantity := roundTo(ar.quantity, 2)

		practice := model.ECPractice{
			PracticeType:  action.PracticeType,
			IsTemporary:   action.IsTemporary,
			Quantity:      quantity,
			Unit:          action.Unit,
			Location:      action.LocationTemplate,
			RuleID:        ar.rule.ID,
			RuleSource:    ar.rule.Source,
			Justification: action.Justification,
			Notes:         ar.rule.Notes,
		}

		if practice.IsTemporary {
			out.TemporaryPractices = append(out.TemporaryPractices, practice)
		} else {
			out.PermanentPractices = append(out.PermanentPractices, practice)
		}

		item := model.PayItem{
			ItemNumber:        action.PayItemNumber,
			Description:       action.PayItemDescription,
			Quantity:          quantity,
			Unit:              action.Unit,
			EstimatedUnitCost: action.EstimatedUnitCost,
			ECPracticeRef:     string(action.PracticeType) + "_" + ar.rule.ID,
			RuleID:            ar.rule.ID,
			RuleSource:        ar.rule.Source,
		}
		out.PayItems = append(out.PayItems, item)

		totalCost += quantity * action.EstimatedUnitCost
	}

	out.Summary = model.Summary{
		TotalTemporaryPractices: len(out.TemporaryPractices),
		TotalPermanentPractices: len(out.PermanentPractices),
		TotalPayItems:           len(out.PayItems),
		TotalEstimatedCost:      roundTo(totalCost, 2),
	}

	return out
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
