package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseProjectInput parses project YAML or JSON into a validated
// ProjectInput. The format is auto-detected: YAML is tried first (JSON is
// a YAML subset, so explicit JSON also parses), falling back to the JSON
// decoder for a clearer error when both fail.
func ParseProjectInput(data []byte) (*ProjectInput, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("project input is empty")
	}

	var project ProjectInput
	if yamlErr := yaml.Unmarshal(data, &project); yamlErr != nil {
		if jsonErr := json.Unmarshal(data, &project); jsonErr != nil {
			return nil, fmt.Errorf("project input is neither valid YAML nor valid JSON: %w", yamlErr)
		}
	}

	if err := project.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project input: %w", err)
	}

	return &project, nil
}

// LoadProjectInput reads and parses a project file.
func LoadProjectInput(path string) (*ProjectInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file %q: %w", path, err)
	}

	project, err := ParseProjectInput(data)
	if err != nil {
		return nil, fmt.Errorf("project file %q: %w", path, err)
	}

	return project, nil
}
