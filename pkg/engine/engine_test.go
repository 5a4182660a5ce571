package engine

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"ecworks/groundcover/pkg/enhance"
	"ecworks/groundcover/pkg/model"
	"ecworks/groundcover/pkg/rules"
	"ecworks/groundcover/pkg/rules/ast"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
}

func testProject() *model.ProjectInput {
	return &model.ProjectInput{
		ProjectName:         "SR-42 Widening",
		Jurisdiction:        "INDOT",
		TotalDisturbedAcres: 5.2,
		PredominantSoil:     model.SoilClay,
		PredominantSlope:    model.SlopeModerate,
		AverageSlopePercent: 18.5,
	}
}

func defaultEngine(t *testing.T) *Engine {
	t.Helper()
	repo, err := rules.NewRepository(nil)
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	return New(repo, Config{Now: fixedClock})
}

func TestProcess_DefaultCatalogue(t *testing.T) {
	out, err := defaultEngine(t).Process(context.Background(), testProject())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// 5.2 acres, moderate slope, no drainage features: silt fence,
	// construction entrance, and permanent seeding fire; inlet
	// protection and the steep slope blanket do not.
	if got := len(out.TemporaryPractices); got != 2 {
		t.Fatalf("TemporaryPractices = %d, want 2", got)
	}
	if got := len(out.PermanentPractices); got != 1 {
		t.Fatalf("PermanentPractices = %d, want 1", got)
	}

	fence := out.TemporaryPractices[0]
	if fence.PracticeType != model.PracticeSiltFence || fence.Quantity != 1040 || fence.Unit != "LF" {
		t.Errorf("silt fence = %+v, want 1040 LF", fence)
	}
	if fence.RuleID != "SILT_FENCE_001" || fence.RuleSource != "EPA NPDES CGP" {
		t.Errorf("silt fence traceability = %q / %q", fence.RuleID, fence.RuleSource)
	}

	entrance := out.TemporaryPractices[1]
	if entrance.PracticeType != model.PracticeConstructionEntrance || entrance.Quantity != 1 {
		t.Errorf("entrance = %+v, want 1 EA", entrance)
	}

	seeding := out.PermanentPractices[0]
	if seeding.PracticeType != model.PracticePermanentSeeding || seeding.Quantity != 5.2 {
		t.Errorf("seeding = %+v, want 5.2 AC", seeding)
	}

	if got := len(out.PayItems); got != 3 {
		t.Fatalf("PayItems = %d, want 3", got)
	}
	// Pay items follow rule priority order.
	wantOrder := []string{"SILT_FENCE_001", "CONSTRUCTION_ENT_001", "PERM_SEED_001"}
	for i, item := range out.PayItems {
		if item.RuleID != wantOrder[i] {
			t.Errorf("PayItems[%d].RuleID = %q, want %q", i, item.RuleID, wantOrder[i])
		}
	}

	if got := out.PayItems[0].ECPracticeRef; got != "silt_fence_SILT_FENCE_001" {
		t.Errorf("ECPracticeRef = %q, want %q", got, "silt_fence_SILT_FENCE_001")
	}

	// 1040 * 3.50 + 1 * 1500 + 5.2 * 500 = 3640 + 1500 + 2600.
	if out.Summary.TotalEstimatedCost != 7740.00 {
		t.Errorf("TotalEstimatedCost = %.2f, want 7740.00", out.Summary.TotalEstimatedCost)
	}
	want := model.Summary{
		TotalTemporaryPractices: 2,
		TotalPermanentPractices: 1,
		TotalPayItems:           3,
		TotalEstimatedCost:      7740.00,
	}
	if out.Summary != want {
		t.Errorf("Summary = %+v, want %+v", out.Summary, want)
	}
}

func TestProcess_DrainageFeatures(t *testing.T) {
	p := testProject()
	p.DrainageFeatures = []model.DrainageFeature{
		{ID: "DF-1", Type: "inlet", DrainageAreaAcres: 1.0},
		{ID: "DF-2", Type: "inlet", DrainageAreaAcres: 0.5},
		{ID: "DF-3", Type: "culvert", DrainageAreaAcres: 2.0},
	}

	out, err := defaultEngine(t).Process(context.Background(), p)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	var inlet *model.ECPractice
	for i := range out.TemporaryPractices {
		if out.TemporaryPractices[i].PracticeType == model.PracticeInletProtection {
			inlet = &out.TemporaryPractices[i]
		}
	}
	if inlet == nil {
		t.Fatal("inlet protection practice missing")
	}
	if inlet.Quantity != 3 || inlet.Unit != "EA" {
		t.Errorf("inlet protection = %.0f %s, want 3 EA", inlet.Quantity, inlet.Unit)
	}
}

func TestProcess_SteepSlope(t *testing.T) {
	p := testProject()
	p.PredominantSlope = model.SlopeSteep

	out, err := defaultEngine(t).Process(context.Background(), p)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	var blanket *model.ECPractice
	for i := range out.PermanentPractices {
		if out.PermanentPractices[i].PracticeType == model.PracticeErosionBlanket {
			blanket = &out.PermanentPractices[i]
		}
	}
	if blanket == nil {
		t.Fatal("erosion blanket practice missing for steep slope")
	}
	// 5.2 * 43560 / 9 = 25168.
	if blanket.Quantity != 25168 {
		t.Errorf("blanket quantity = %.2f, want 25168", blanket.Quantity)
	}
}

func TestProcess_EmptyRuleSet(t *testing.T) {
	repo, err := rules.NewRepositoryWithDefaults(nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	out, err := New(repo, Config{Now: fixedClock}).Process(context.Background(), testProject())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out.TemporaryPractices) != 0 || len(out.PermanentPractices) != 0 || len(out.PayItems) != 0 {
		t.Errorf("output not empty: %+v", out)
	}
	if out.Summary.TotalEstimatedCost != 0 {
		t.Errorf("TotalEstimatedCost = %.2f, want 0", out.Summary.TotalEstimatedCost)
	}
}

func TestProcess_FormulaErrorAbortsRun(t *testing.T) {
	bad := &ast.RuleSpec{
		ID:       "BAD_DIV_001",
		Name:     "Division by zero",
		Priority: 5,
		Action: ast.RuleAction{
			PracticeType:    model.PracticeMulch,
			IsTemporary:     true,
			QuantityFormula: "total_disturbed_acres / drainage_feature_count",
			Unit:            "AC",
		},
	}
	repo, err := rules.NewRepositoryWithDefaults([]*ast.RuleSpec{bad}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// No drainage features: the divisor is zero.
	out, err := New(repo, Config{Now: fixedClock}).Process(context.Background(), testProject())
	if err == nil {
		t.Fatal("Process() = nil error, want formula failure")
	}
	if out != nil {
		t.Error("Process() returned partial output alongside error")
	}

	var re *RuleEvaluationError
	if !errors.As(err, &re) {
		t.Fatalf("error type = %T, want *RuleEvaluationError", err)
	}
	if re.RuleID != "BAD_DIV_001" || re.Stage != "formula" {
		t.Errorf("RuleEvaluationError = %+v", re)
	}
}

func TestProcess_SamePracticeTypeKeepsRefsDistinct(t *testing.T) {
	mulchRule := func(id string, priority int) *ast.RuleSpec {
		return &ast.RuleSpec{
			ID:       id,
			Name:     "Mulch cover",
			Priority: priority,
			Action: ast.RuleAction{
				PracticeType:      model.PracticeMulch,
				IsTemporary:       true,
				QuantityFormula:   "total_disturbed_acres",
				Unit:              "AC",
				PayItemNumber:     "EC-007",
				EstimatedUnitCost: 850.00,
			},
		}
	}
	repo, err := rules.NewRepositoryWithDefaults(
		[]*ast.RuleSpec{mulchRule("MULCH_STATE_001", 10), mulchRule("MULCH_COUNTY_001", 20)}, nil)
	if err != nil {
		t.Fatal(err)
	}

	out, err := New(repo, Config{Now: fixedClock}).Process(context.Background(), testProject())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out.PayItems) != 2 {
		t.Fatalf("PayItems = %d, want 2", len(out.PayItems))
	}
	if out.PayItems[0].ECPracticeRef != "mulch_MULCH_STATE_001" {
		t.Errorf("PayItems[0].ECPracticeRef = %q", out.PayItems[0].ECPracticeRef)
	}
	if out.PayItems[1].ECPracticeRef != "mulch_MULCH_COUNTY_001" {
		t.Errorf("PayItems[1].ECPracticeRef = %q", out.PayItems[1].ECPracticeRef)
	}
	if out.PayItems[0].ECPracticeRef == out.PayItems[1].ECPracticeRef {
		t.Error("pay items from different rules share a practice ref")
	}
}

func TestProcess_TotalCostRoundsOnce(t *testing.T) {
	// Two sub-cent line products: 1.5 * 0.0625 = 0.09375 each. Rounding
	// each line first would give 0.09 + 0.09 = 0.18; the summary rounds
	// the raw sum 0.1875 to 0.19.
	subCent := func(id string, priority int) *ast.RuleSpec {
		return &ast.RuleSpec{
			ID:       id,
			Name:     "Sub-cent line",
			Priority: priority,
			Action: ast.RuleAction{
				PracticeType:      model.PracticeMulch,
				IsTemporary:       true,
				QuantityFormula:   "1.5",
				Unit:              "AC",
				EstimatedUnitCost: 0.0625,
			},
		}
	}
	repo, err := rules.NewRepositoryWithDefaults(
		[]*ast.RuleSpec{subCent("LINE_A_001", 10), subCent("LINE_B_001", 20)}, nil)
	if err != nil {
		t.Fatal(err)
	}

	out, err := New(repo, Config{Now: fixedClock}).Process(context.Background(), testProject())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out.Summary.TotalEstimatedCost != 0.19 {
		t.Errorf("TotalEstimatedCost = %v, want 0.19", out.Summary.TotalEstimatedCost)
	}
}

func TestProcess_Deterministic(t *testing.T) {
	e := defaultEngine(t)

	first, err := e.Process(context.Background(), testProject())
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.Process(context.Background(), testProject())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeat runs with a fixed clock differ")
	}
}

func TestProcess_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := defaultEngine(t).Process(ctx, testProject()); !errors.Is(err, context.Canceled) {
		t.Errorf("Process() error = %v, want context.Canceled", err)
	}
}

type stubEnhancer struct {
	text string
	err  error
}

func (s stubEnhancer) Enhance(context.Context, *model.ProjectInput, *model.ProjectOutput) (string, error) {
	return s.text, s.err
}

func TestProcess_Enhancement(t *testing.T) {
	repo, err := rules.NewRepository(nil)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("success sets enhancement", func(t *testing.T) {
		e := New(repo, Config{Now: fixedClock, Enhancer: stubEnhancer{text: "Install perimeter controls first."}})
		out, err := e.Process(context.Background(), testProject())
		if err != nil {
			t.Fatal(err)
		}
		if out.Enhancement != "Install perimeter controls first." {
			t.Errorf("Enhancement = %q", out.Enhancement)
		}
	})

	t.Run("unavailable backend is non-fatal", func(t *testing.T) {
		e := New(repo, Config{Now: fixedClock, Enhancer: stubEnhancer{err: enhance.ErrUnavailable}})
		out, err := e.Process(context.Background(), testProject())
		if err != nil {
			t.Fatalf("Process() error = %v, enhancement failure must not fail the run", err)
		}
		if out.Enhancement != "" {
			t.Errorf("Enhancement = %q, want empty", out.Enhancement)
		}
		if out.Summary.TotalEstimatedCost != 7740.00 {
			t.Errorf("deterministic result changed: %.2f", out.Summary.TotalEstimatedCost)
		}
	})

	t.Run("arbitrary failure is non-fatal", func(t *testing.T) {
		e := New(repo, Config{Now: fixedClock, Enhancer: stubEnhancer{err: fmt.Errorf("boom")}})
		out, err := e.Process(context.Background(), testProject())
		if err != nil {
			t.Fatal(err)
		}
		if out.Enhancement != "" {
			t.Errorf("Enhancement = %q, want empty", out.Enhancement)
		}
	})
}

func TestProcess_InvalidProjectRejected(t *testing.T) {
	p := testProject()
	p.TotalDisturbedAcres = 0

	if _, err := defaultEngine(t).Process(context.Background(), p); err == nil {
		t.Error("Process() = nil, want validation error")
	}
}
