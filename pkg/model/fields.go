package model

import "sort"

// conditionFields lists every project field a rule condition may test,
// including the derived drainage fields. Rules naming anything else are
// rejected at load time.
var conditionFields = map[string]bool{
	"project_name":           true,
	"jurisdiction":           true,
	"total_disturbed_acres":  true,
	"predominant_soil":       true,
	"predominant_slope":      true,
	"average_slope_percent":  true,
	"has_drainage_features":  true,
	"drainage_feature_count": true,
	"phase_count":            true,
}

// formulaFields lists every numeric field a quantity formula may
// reference.
var formulaFields = map[string]bool{
	"total_disturbed_acres":  true,
	"average_slope_percent":  true,
	"drainage_feature_count": true,
	"phase_count":            true,
}

// KnownConditionField reports whether name may appear in a rule condition.
func KnownConditionField(name string) bool {
	return conditionFields[name]
}

// KnownFormulaField reports whether name may appear in a quantity formula.
func KnownFormulaField(name string) bool {
	return formulaFields[name]
}

// ConditionFieldNames returns the sorted list of allowed condition fields,
// for error messages.
func ConditionFieldNames() []string {
	return sortedKeys(conditionFields)
}

// FormulaFieldNames returns the sorted list of allowed formula fields,
// for error messages.
func FormulaFieldNames() []string {
	return sortedKeys(formulaFields)
}

func sortedKeys(m map[string]bool) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DrainageFeatureCount is the number of drainage features on the project.
func (p *ProjectInput) DrainageFeatureCount() int {
	return len(p.DrainageFeatures)
}

// HasDrainageFeatures reports whether the project has any drainage
// features.
func (p *ProjectInput) HasDrainageFeatures() bool {
	return len(p.DrainageFeatures) > 0
}

// PhaseCount is the number of construction phases on the project.
func (p *ProjectInput) PhaseCount() int {
	return len(p.Phases)
}
