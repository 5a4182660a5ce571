package source

import (
	"os"
	"path/filepath"
	"testing"

	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules/ast"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "county.yaml")
	content := `
rules:
  - id: COUNTY_001
    name: County mulch
    priority: 35
    action:
      practice_type: mulch
      quantity_formula: total_disturbed_acres
      unit: AC
      estimated_unit_cost: 100
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(path)
	rules, err := src.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(rules) != 1 || rules[0].ID != "COUNTY_001" {
		t.Errorf("rules = %+v", rules)
	}
	if src.Describe() != "file:"+path {
		t.Errorf("Describe() = %q", src.Describe())
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	src := NewFileSource(filepath.Join(t.TempDir(), "absent.yaml"))
	if _, err := src.Load(); err == nil {
		t.Error("Load() = nil, want error for missing file")
	}
}

func TestMemorySource(t *testing.T) {
	rules := []*ast.RuleSpec{{
		ID: "MEM_001",
		Action: ast.RuleAction{
			PracticeType:    model.PracticeMulch,
			QuantityFormula: "1",
			Unit:            "EA",
		},
	}}

	src := NewMemorySource(rules)
	got, err := src.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "MEM_001" {
		t.Errorf("rules = %+v", got)
	}

	// Load returns a copy of the slice.
	got[0] = nil
	again, _ := src.Load()
	if again[0] == nil {
		t.Error("Load() shares its backing slice with callers")
	}
}
