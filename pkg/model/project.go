package model

import "fmt"

// SoilType classifies the predominant soil of a project site.
type SoilType string

const (
	SoilClay    SoilType = "clay"
	SoilSilt    SoilType = "silt"
	SoilSand    SoilType = "sand"
	SoilGravel  SoilType = "gravel"
	SoilLoam    SoilType = "loam"
	SoilBedrock SoilType = "bedrock"
)

// ParseSoilType converts a string to a SoilType, rejecting values outside
// the closed enumeration.
func ParseSoilType(s string) (SoilType, error) {
	switch SoilType(s) {
	case SoilClay, SoilSilt, SoilSand, SoilGravel, SoilLoam, SoilBedrock:
		return SoilType(s), nil
	default:
		return "", fmt.Errorf("unrecognized soil type %q (known: clay, silt, sand, gravel, loam, bedrock)", s)
	}
}

// SlopeType classifies the predominant slope steepness of a project site.
type SlopeType string

const (
	SlopeFlat      SlopeType = "flat"       // 0-5%
	SlopeGentle    SlopeType = "gentle"     // 5-15%
	SlopeModerate  SlopeType = "moderate"   // 15-25%
	SlopeSteep     SlopeType = "steep"      // 25-50%
	SlopeVerySteep SlopeType = "very_steep" // >50%
)

// ParseSlopeType converts a string to a SlopeType, rejecting values
// outside the closed enumeration.
func ParseSlopeType(s string) (SlopeType, error) {
	switch SlopeType(s) {
	case SlopeFlat, SlopeGentle, SlopeModerate, SlopeSteep, SlopeVerySteep:
		return SlopeType(s), nil
	default:
		return "", fmt.Errorf("unrecognized slope type %q (known: flat, gentle, moderate, steep, very_steep)", s)
	}
}

// DrainageFeature describes an inlet, outfall, culvert, or similar feature
// within the project limits.
type DrainageFeature struct {
	// ID uniquely identifies the feature within the project.
	ID string `yaml:"id" json:"id"`

	// Type is the feature kind (inlet, outfall, culvert, etc.).
	Type string `yaml:"type" json:"type"`

	// Location is a free-form location description.
	Location string `yaml:"location" json:"location"`

	// DrainageAreaAcres is the contributing drainage area in acres.
	DrainageAreaAcres float64 `yaml:"drainage_area_acres" json:"drainage_area_acres"`
}

// ProjectPhase describes one phase of a phased construction project.
type ProjectPhase struct {
	// PhaseID uniquely identifies the phase within the project.
	PhaseID string `yaml:"phase_id" json:"phase_id"`

	// Name is the phase name.
	Name string `yaml:"name" json:"name"`

	// DurationDays is the estimated phase duration in days.
	DurationDays int `yaml:"duration_days" json:"duration_days"`

	// DisturbedAcres is the area disturbed during this phase.
	DisturbedAcres float64 `yaml:"disturbed_acres" json:"disturbed_acres"`
}

// ProjectInput is the caller-supplied description of a roadway project.
// It is treated as read-only by the engine.
type ProjectInput struct {
	// ProjectName is the project name. Required.
	ProjectName string `yaml:"project_name" json:"project_name"`

	// Jurisdiction is the governing jurisdiction (state, county, city).
	// Required.
	Jurisdiction string `yaml:"jurisdiction" json:"jurisdiction"`

	// TotalDisturbedAcres is the total disturbed area in acres.
	// Required, must be > 0.
	TotalDisturbedAcres float64 `yaml:"total_disturbed_acres" json:"total_disturbed_acres"`

	// PredominantSoil is the predominant soil classification. Required.
	PredominantSoil SoilType `yaml:"predominant_soil" json:"predominant_soil"`

	// PredominantSlope is the predominant slope classification. Required.
	PredominantSlope SlopeType `yaml:"predominant_slope" json:"predominant_slope"`

	// AverageSlopePercent is the average slope percentage.
	// Required, must be >= 0.
	AverageSlopePercent float64 `yaml:"average_slope_percent" json:"average_slope_percent"`

	// DrainageFeatures lists drainage features in the project limits.
	DrainageFeatures []DrainageFeature `yaml:"drainage_features,omitempty" json:"drainage_features,omitempty"`

	// Phases lists construction phases (empty if unphased).
	Phases []ProjectPhase `yaml:"phases,omitempty" json:"phases,omitempty"`

	// Metadata carries additional project-specific data. The engine does
	// not interpret it.
	Metadata map[string]any `yaml:"metadata,omitempty" json:"metadata,omitempty"`
}

// Validate checks required fields, value ranges, and the closed soil and
// slope enumerations. It is the input-boundary owner of unrecognized enum
// values: the engine never sees a project that fails validation.
func (p *ProjectInput) Validate() error {
	if p.ProjectName == "" {
		return fmt.Errorf("project_name is required")
	}
	if p.Jurisdiction == "" {
		return fmt.Errorf("jurisdiction is required")
	}
	if p.TotalDisturbedAcres <= 0 {
		return fmt.Errorf("total_disturbed_acres must be > 0, got %v", p.TotalDisturbedAcres)
	}
	if _, err := ParseSoilType(string(p.PredominantSoil)); err != nil {
		return err
	}
	if _, err := ParseSlopeType(string(p.PredominantSlope)); err != nil {
		return err
	}
	if p.AverageSlopePercent < 0 {
		return fmt.Errorf("average_slope_percent must be >= 0, got %v", p.AverageSlopePercent)
	}

	for i, f := range p.DrainageFeatures {
		if f.ID == "" {
			return fmt.Errorf("drainage_features[%d]: id is required", i)
		}
		if f.DrainageAreaAcres <= 0 {
			return fmt.Errorf("drainage_features[%d]: drainage_area_acres must be > 0, got %v", i, f.DrainageAreaAcres)
		}
	}

	for i, ph := range p.Phases {
		if ph.PhaseID == "" {
			return fmt.Errorf("phases[%d]: phase_id is required", i)
		}
		if ph.DurationDays <= 0 {
			return fmt.Errorf("phases[%d]: duration_days must be > 0, got %d", i, ph.DurationDays)
		}
		if ph.DisturbedAcres < 0 {
			return fmt.Errorf("phases[%d]: disturbed_acres must be >= 0, got %v", i, ph.DisturbedAcres)
		}
	}

	return nil
}
