package formula

import (
	"errors"
	"math"
	"testing"
)

// TestEval_Arithmetic tests precedence, associativity, and grouping.
func TestEval_Arithmetic(t *testing.T) {
	env := Env{
		"total_disturbed_acres":  5.2,
		"average_slope_percent":  18.5,
		"drainage_feature_count": 3,
	}

	tests := []struct {
		name    string
		formula string
		want    float64
	}{
		{
			name:    "single literal",
			formula: "1",
			want:    1,
		},
		{
			name:    "decimal literal",
			formula: "43560.0",
			want:    43560.0,
		},
		{
			name:    "single field",
			formula: "drainage_feature_count",
			want:    3,
		},
		{
			name:    "field times constant",
			formula: "total_disturbed_acres * 200",
			want:    1040.0,
		},
		{
			name:    "precedence: multiply before add",
			formula: "2 + 3 * 4",
			want:    14,
		},
		{
			name:    "left associativity of division",
			formula: "100 / 10 / 2",
			want:    5,
		},
		{
			name:    "left associativity of subtraction",
			formula: "10 - 4 - 3",
			want:    3,
		},
		{
			name:    "parentheses override precedence",
			formula: "(2 + 3) * 4",
			want:    20,
		},
		{
			name:    "blanket area conversion",
			formula: "total_disturbed_acres * 43560 / 9",
			want:    5.2 * 43560 / 9,
		},
		{
			name:    "unary minus",
			formula: "-3 + 5",
			want:    2,
		},
		{
			name:    "unary minus on field",
			formula: "-average_slope_percent",
			want:    -18.5,
		},
		{
			name:    "nested parentheses",
			formula: "((total_disturbed_acres))",
			want:    5.2,
		},
		{
			name:    "whitespace insensitive",
			formula: "  total_disturbed_acres*200 ",
			want:    1040.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.formula)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.formula, err)
			}

			got, err := f.Eval(env)
			if err != nil {
				t.Fatalf("Eval(%q) error = %v", tt.formula, err)
			}

			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Eval(%q) = %v, want %v", tt.formula, got, tt.want)
			}
		})
	}
}

// TestEval_Deterministic verifies repeated evaluation yields the identical
// result and does not mutate the environment.
func TestEval_Deterministic(t *testing.T) {
	env := Env{"total_disturbed_acres": 5.2}

	f, err := Parse("total_disturbed_acres * 200 + 1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	first, err := f.Eval(env)
	if err != nil {
		t.Fatalf("Eval() error = %v", err)
	}

	for i := 0; i < 10; i++ {
		got, err := f.Eval(env)
		if err != nil {
			t.Fatalf("Eval() error on iteration %d: %v", i, err)
		}
		if got != first {
			t.Fatalf("Eval() = %v on iteration %d, want %v", got, i, first)
		}
	}

	if len(env) != 1 || env["total_disturbed_acres"] != 5.2 {
		t.Errorf("Eval() mutated environment: %v", env)
	}
}

// TestParse_SyntaxErrors tests malformed formula rejection.
func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		formula string
	}{
		{name: "empty", formula: ""},
		{name: "only whitespace", formula: "   "},
		{name: "unbalanced open paren", formula: "(1 + 2"},
		{name: "unbalanced close paren", formula: "1 + 2)"},
		{name: "dangling operator", formula: "total_disturbed_acres *"},
		{name: "leading operator", formula: "* 2"},
		{name: "adjacent operands", formula: "2 3"},
		{name: "unexpected character", formula: "2 ^ 3"},
		{name: "function call", formula: "max(1, 2)"},
		{name: "comparison", formula: "a > b"},
		{name: "double dot number", formula: "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.formula)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want syntax error", tt.formula)
			}

			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("Parse(%q) error = %T, want *SyntaxError", tt.formula, err)
			}
		})
	}
}

// TestEval_Errors tests evaluation-time failures.
func TestEval_Errors(t *testing.T) {
	env := Env{"total_disturbed_acres": 5.2}

	t.Run("division by zero", func(t *testing.T) {
		f, err := Parse("total_disturbed_acres / 0")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}

		_, err = f.Eval(env)
		var evalErr *EvalError
		if !errors.As(err, &evalErr) {
			t.Fatalf("Eval() error = %v, want *EvalError", err)
		}
		if evalErr.Formula != "total_disturbed_acres / 0" {
			t.Errorf("EvalError.Formula = %q, want original formula text", evalErr.Formula)
		}
	})

	t.Run("division by zero-valued field", func(t *testing.T) {
		f, err := Parse("1 / phase_count")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}

		_, err = f.Eval(Env{"phase_count": 0})
		var evalErr *EvalError
		if !errors.As(err, &evalErr) {
			t.Errorf("Eval() error = %v, want *EvalError", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		f, err := Parse("bogus_field * 2")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}

		_, err = f.Eval(env)
		var fieldErr *FieldError
		if !errors.As(err, &fieldErr) {
			t.Fatalf("Eval() error = %v, want *FieldError", err)
		}
		if fieldErr.Name != "bogus_field" {
			t.Errorf("FieldError.Name = %q, want %q", fieldErr.Name, "bogus_field")
		}
	})
}

// TestFields tests identifier extraction for load-time validation.
func TestFields(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		want    []string
	}{
		{
			name:    "constant only",
			formula: "1",
			want:    []string{},
		},
		{
			name:    "single field",
			formula: "drainage_feature_count",
			want:    []string{"drainage_feature_count"},
		},
		{
			name:    "multiple fields sorted and deduplicated",
			formula: "total_disturbed_acres * average_slope_percent + total_disturbed_acres",
			want:    []string{"average_slope_percent", "total_disturbed_acres"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.formula)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.formula, err)
			}

			got := f.Fields()
			if len(got) != len(tt.want) {
				t.Fatalf("Fields() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Fields()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
