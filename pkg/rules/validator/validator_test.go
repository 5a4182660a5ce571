package validator

import (
	"errors"
	"strings"
	"testing"

	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules/ast"
	rulesErrors "ecworks/groundcover/pkg/rules/errors"
)

func validRule(id string) *ast.RuleSpec {
	return &ast.RuleSpec{
		ID:       id,
		Name:     "Test rule",
		Priority: 10,
		Conditions: []ast.Condition{
			{Field: "total_disturbed_acres", Operator: ast.OperatorGreaterThan, Value: float64(0)},
		},
		Action: ast.RuleAction{
			PracticeType:      model.PracticeSiltFence,
			IsTemporary:       true,
			QuantityFormula:   "total_disturbed_acres * 200",
			Unit:              "LF",
			EstimatedUnitCost: 3.50,
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *ast.RuleSpec)
		wantType rulesErrors.ErrorType
		wantMsg  string
	}{
		{
			name:   "valid rule",
			mutate: func(r *ast.RuleSpec) {},
		},
		{
			name:     "missing practice type",
			mutate:   func(r *ast.RuleSpec) { r.Action.PracticeType = "" },
			wantType: rulesErrors.ErrorTypeStructural,
			wantMsg:  "practice_type",
		},
		{
			name:     "missing unit",
			mutate:   func(r *ast.RuleSpec) { r.Action.Unit = "" },
			wantType: rulesErrors.ErrorTypeStructural,
			wantMsg:  "unit",
		},
		{
			name:     "negative unit cost",
			mutate:   func(r *ast.RuleSpec) { r.Action.EstimatedUnitCost = -1 },
			wantType: rulesErrors.ErrorTypeStructural,
			wantMsg:  "negative",
		},
		{
			name: "unrecognized operator",
			mutate: func(r *ast.RuleSpec) {
				r.Conditions[0].Operator = "matches"
			},
			wantType: rulesErrors.ErrorTypeStructural,
			wantMsg:  "unrecognized operator",
		},
		{
			name: "in with scalar value",
			mutate: func(r *ast.RuleSpec) {
				r.Conditions[0] = ast.Condition{
					Field:    "predominant_slope",
					Operator: ast.OperatorIn,
					Value:    "steep",
				}
			},
			wantType: rulesErrors.ErrorTypeStructural,
			wantMsg:  "non-list",
		},
		{
			name: "unknown condition field",
			mutate: func(r *ast.RuleSpec) {
				r.Conditions[0].Field = "rainfall_inches"
			},
			wantType: rulesErrors.ErrorTypeSemantic,
			wantMsg:  "rainfall_inches",
		},
		{
			name: "formula syntax error",
			mutate: func(r *ast.RuleSpec) {
				r.Action.QuantityFormula = "total_disturbed_acres *"
			},
			wantType: rulesErrors.ErrorTypeFormula,
			wantMsg:  "does not parse",
		},
		{
			name: "formula references non-numeric field",
			mutate: func(r *ast.RuleSpec) {
				r.Action.QuantityFormula = "predominant_soil * 2"
			},
			wantType: rulesErrors.ErrorTypeFormula,
			wantMsg:  "predominant_soil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validRule("R1")
			tt.mutate(rule)

			err := New().Validate([]*ast.RuleSpec{rule})
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantMsg)
			}

			var list *rulesErrors.ErrorList
			if !errors.As(err, &list) {
				t.Fatalf("error type = %T, want *ErrorList", err)
			}
			if got := list.ByType(tt.wantType); len(got) == 0 {
				t.Errorf("no %s errors recorded, got: %v", tt.wantType, err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %v, want containing %q", err, tt.wantMsg)
			}
			// Every defect names the rule it belongs to.
			if !strings.Contains(err.Error(), "R1") {
				t.Errorf("error does not name the rule: %v", err)
			}
		})
	}
}

func TestValidate_DuplicateIDs(t *testing.T) {
	rules := []*ast.RuleSpec{validRule("R1"), validRule("R1")}

	err := New().Validate(rules)
	if err == nil {
		t.Fatal("Validate() = nil, want duplicate id error")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("error = %v, want duplicate id error", err)
	}
}

func TestValidate_AccumulatesAllDefects(t *testing.T) {
	r1 := validRule("R1")
	r1.Action.Unit = ""
	r2 := validRule("R2")
	r2.Action.QuantityFormula = "((1"

	err := New().Validate([]*ast.RuleSpec{r1, r2})
	if err == nil {
		t.Fatal("Validate() = nil, want errors")
	}

	var list *rulesErrors.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("error type = %T", err)
	}
	if list.Count() != 2 {
		t.Errorf("Count() = %d, want 2 (one per defective rule)", list.Count())
	}
}
