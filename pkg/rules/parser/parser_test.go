package parser

import (
	"errors"
	"strings"
	"testing"

	"ecworks/groundcover/pkg/rules/ast"
	rulesErrors "ecworks/groundcover/pkg/rules/errors"
)

const sampleRules = `
rules:
  - id: CUSTOM_FENCE_001
    name: County silt fence
    source: County SWPPP Manual
    priority: 15
    conditions:
      - field: total_disturbed_acres
        operator: gt
        value: 2
      - field: predominant_slope
        operator: in
        value: [steep, very_steep]
    action:
      practice_type: silt_fence
      is_temporary: true
      quantity_formula: total_disturbed_acres * 250
      unit: LF
      location_template: Perimeter of disturbed area
      justification: County requires reinforced perimeter control
      pay_item_number: EC-001
      pay_item_description: Silt fence, reinforced
      estimated_unit_cost: 4.25
`

func TestParseBytes(t *testing.T) {
	rules, err := NewParser().ParseBytes([]byte(sampleRules))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if len(rules) != 1 {
		t.Fatalf("len(rules) = %d, want 1", len(rules))
	}

	r := rules[0]
	if r.ID != "CUSTOM_FENCE_001" {
		t.Errorf("ID = %q", r.ID)
	}
	if r.Priority != 15 {
		t.Errorf("Priority = %d, want 15", r.Priority)
	}
	if len(r.Conditions) != 2 {
		t.Fatalf("len(Conditions) = %d, want 2", len(r.Conditions))
	}

	// YAML integers become float64 so the engine compares one numeric type.
	if v, ok := r.Conditions[0].Value.(float64); !ok || v != 2 {
		t.Errorf("Conditions[0].Value = %v (%T), want float64 2", r.Conditions[0].Value, r.Conditions[0].Value)
	}
	if r.Conditions[1].Operator != ast.OperatorIn {
		t.Errorf("Conditions[1].Operator = %q", r.Conditions[1].Operator)
	}
	list, ok := r.Conditions[1].Value.([]any)
	if !ok || len(list) != 2 || list[0] != "steep" {
		t.Errorf("Conditions[1].Value = %v", r.Conditions[1].Value)
	}

	if r.Action.Unit != "LF" || r.Action.EstimatedUnitCost != 4.25 {
		t.Errorf("Action = %+v", r.Action)
	}
	if r.Action.LocationTemplate != "Perimeter of disturbed area" {
		t.Errorf("LocationTemplate = %q, want %q", r.Action.LocationTemplate, "Perimeter of disturbed area")
	}
	if !r.Action.IsTemporary {
		t.Error("IsTemporary = false, want true")
	}
}

func TestParseBytes_TemporaryDefaultsTrue(t *testing.T) {
	input := `
rules:
  - id: R1
    action:
      practice_type: mulching
      quantity_formula: total_disturbed_acres
      unit: AC
`
	rules, err := NewParser().ParseBytes([]byte(input))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	if !rules[0].Action.IsTemporary {
		t.Error("IsTemporary should default to true when omitted")
	}
}

func TestParseBytes_MissingID(t *testing.T) {
	input := `
rules:
  - name: no id here
    action:
      practice_type: mulching
`
	_, err := NewParser().ParseBytes([]byte(input))
	if err == nil {
		t.Fatal("ParseBytes() = nil, want error for missing id")
	}

	var list *rulesErrors.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("error type = %T, want *ErrorList", err)
	}
	if got := list.ByType(rulesErrors.ErrorTypeStructural); len(got) != 1 {
		t.Errorf("structural errors = %d, want 1", len(got))
	}
}

func TestParseBytes_InvalidYAML(t *testing.T) {
	_, err := NewParser().ParseBytes([]byte("rules:\n  - id: [unclosed"))
	if err == nil {
		t.Fatal("ParseBytes() = nil, want syntax error")
	}
	if !strings.Contains(err.Error(), "YAML") {
		t.Errorf("error = %v, want YAML syntax error", err)
	}
}

func TestParseBytes_SizeLimit(t *testing.T) {
	p := NewParser().WithMaxFileSize(8)
	_, err := p.ParseBytes([]byte(sampleRules))
	if err == nil {
		t.Fatal("ParseBytes() = nil, want size limit error")
	}
}
