package engine

import (
	"fmt"

	"ecworks/groundcover/pkg/formula"
	"ecworks/groundcover/pkg/model"
)

// resolveField extracts a condition field's value from the project.
// Numbers come back as float64 so operators compare one numeric type.
// Unknown names are unreachable for validated rule sets but still return
// an error rather than a zero value.
func resolveField(p *model.ProjectInput, name string) (any, error) {
	switch name {
	case "project_name":
		return p.ProjectName, nil
	case "jurisdiction":
		return p.Jurisdiction, nil
	case "total_disturbed_acres":
		return p.TotalDisturbedAcres, nil
	case "predominant_soil":
		return string(p.PredominantSoil), nil
	case "predominant_slope":
		return string(p.PredominantSlope), nil
	case "average_slope_percent":
		return p.AverageSlopePercent, nil
	case "has_drainage_features":
		return p.HasDrainageFeatures(), nil
	case "drainage_feature_count":
		return float64(p.DrainageFeatureCount()), nil
	case "phase_count":
		return float64(p.PhaseCount()), nil
	default:
		return nil, fmt.Errorf("unknown condition field %q", name)
	}
}

// formulaEnv builds the numeric environment quantity formulas evaluate
// against.
func formulaEnv(p *model.ProjectInput) formula.Env {
	return formula.Env{
		"total_disturbed_acres":  p.TotalDisturbedAcres,
		"average_slope_percent":  p.AverageSlopePercent,
		"drainage_feature_count": float64(p.DrainageFeatureCount()),
		"phase_count":            float64(p.PhaseCount()),
	}
}
