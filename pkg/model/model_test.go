package model

import (
	"strings"
	"testing"
)

func validProject() *ProjectInput {
	return &ProjectInput{
		ProjectName:         "SR-42 Widening",
		Jurisdiction:        "INDOT",
		TotalDisturbedAcres: 5.2,
		PredominantSoil:     SoilClay,
		PredominantSlope:    SlopeModerate,
		AverageSlopePercent: 18.5,
	}
}

// TestProjectInput_Validate tests field requirements and enum closure.
func TestProjectInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *ProjectInput)
		wantErr string
	}{
		{
			name:   "valid project",
			mutate: func(p *ProjectInput) {},
		},
		{
			name:    "missing project name",
			mutate:  func(p *ProjectInput) { p.ProjectName = "" },
			wantErr: "project_name",
		},
		{
			name:    "missing jurisdiction",
			mutate:  func(p *ProjectInput) { p.Jurisdiction = "" },
			wantErr: "jurisdiction",
		},
		{
			name:    "zero disturbed acres",
			mutate:  func(p *ProjectInput) { p.TotalDisturbedAcres = 0 },
			wantErr: "total_disturbed_acres",
		},
		{
			name:    "unrecognized soil",
			mutate:  func(p *ProjectInput) { p.PredominantSoil = "mud" },
			wantErr: "unrecognized soil type",
		},
		{
			name:    "unrecognized slope",
			mutate:  func(p *ProjectInput) { p.PredominantSlope = "vertical" },
			wantErr: "unrecognized slope type",
		},
		{
			name:    "negative slope percent",
			mutate:  func(p *ProjectInput) { p.AverageSlopePercent = -1 },
			wantErr: "average_slope_percent",
		},
		{
			name: "drainage feature without id",
			mutate: func(p *ProjectInput) {
				p.DrainageFeatures = []DrainageFeature{{Type: "inlet", DrainageAreaAcres: 1}}
			},
			wantErr: "drainage_features[0]",
		},
		{
			name: "phase with zero duration",
			mutate: func(p *ProjectInput) {
				p.Phases = []ProjectPhase{{PhaseID: "P1", Name: "Clearing", DurationDays: 0}}
			},
			wantErr: "phases[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProject()
			tt.mutate(p)

			err := p.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

// TestParseProjectInput tests YAML and JSON auto-detection.
func TestParseProjectInput(t *testing.T) {
	yamlInput := `
project_name: SR-42 Widening
jurisdiction: INDOT
total_disturbed_acres: 5.2
predominant_soil: clay
predominant_slope: moderate
average_slope_percent: 18.5
drainage_features:
  - id: DF-1
    type: inlet
    location: STA 10+50
    drainage_area_acres: 2.0
`

	jsonInput := `{
  "project_name": "SR-42 Widening",
  "jurisdiction": "INDOT",
  "total_disturbed_acres": 5.2,
  "predominant_soil": "clay",
  "predominant_slope": "moderate",
  "average_slope_percent": 18.5
}`

	t.Run("yaml", func(t *testing.T) {
		p, err := ParseProjectInput([]byte(yamlInput))
		if err != nil {
			t.Fatalf("ParseProjectInput() error = %v", err)
		}
		if p.ProjectName != "SR-42 Widening" {
			t.Errorf("ProjectName = %q", p.ProjectName)
		}
		if len(p.DrainageFeatures) != 1 || p.DrainageFeatures[0].ID != "DF-1" {
			t.Errorf("DrainageFeatures = %+v", p.DrainageFeatures)
		}
	})

	t.Run("json", func(t *testing.T) {
		p, err := ParseProjectInput([]byte(jsonInput))
		if err != nil {
			t.Fatalf("ParseProjectInput() error = %v", err)
		}
		if p.PredominantSoil != SoilClay {
			t.Errorf("PredominantSoil = %q", p.PredominantSoil)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := ParseProjectInput([]byte("  \n")); err == nil {
			t.Error("ParseProjectInput() = nil, want error for empty input")
		}
	})

	t.Run("invalid enum rejected at boundary", func(t *testing.T) {
		bad := strings.Replace(yamlInput, "clay", "mud", 1)
		if _, err := ParseProjectInput([]byte(bad)); err == nil {
			t.Error("ParseProjectInput() = nil, want error for unrecognized soil")
		}
	})
}
