package parser

import (
	"os"

	"gopkg.in/yaml.v3"
)

// yamlRuleFile represents the intermediate structure for parsing a YAML
// rule file. It matches the file layout before transformation to RuleSpec.
type yamlRuleFile struct {
	Rules []yamlRule `yaml:"rules"`
}

// yamlRule represents an intermediate rule structure.
type yamlRule struct {
	ID         string          `yaml:"id"`
	Name       string          `yaml:"name"`
	Source     string          `yaml:"source"`
	Priority   int             `yaml:"priority"`
	Conditions []yamlCondition `yaml:"conditions"`
	Action     yamlAction      `yaml:"action"`
	Notes      string          `yaml:"notes"`
}

// yamlCondition represents an intermediate condition structure. Value is
// kept untyped here; the builder normalizes numbers to float64.
type yamlCondition struct {
	Field    string `yaml:"field"`
	Operator string `yaml:"operator"`
	Value    any    `yaml:"value"`
}

// yamlAction represents an intermediate action structure.
type yamlAction struct {
	PracticeType       string  `yaml:"practice_type"`
	IsTemporary        *bool   `yaml:"is_temporary"` // Pointer to distinguish unset vs false
	QuantityFormula    string  `yaml:"quantity_formula"`
	Unit               string  `yaml:"unit"`
	LocationTemplate   string  `yaml:"location_template"`
	Justification      string  `yaml:"justification"`
	PayItemNumber      string  `yaml:"pay_item_number"`
	PayItemDescription string  `yaml:"pay_item_description"`
	EstimatedUnitCost  float64 `yaml:"estimated_unit_cost"`
}

// parseYAMLFile reads and parses a YAML rule file into the intermediate
// structure.
func parseYAMLFile(path string) (*yamlRuleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseYAMLBytes(data)
}

// parseYAMLBytes parses YAML bytes into the intermediate structure.
func parseYAMLBytes(data []byte) (*yamlRuleFile, error) {
	var file yamlRuleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return &file, nil
}
