// Package rules manages the merged, validated rule set the engine
// evaluates.
//
// A repository starts from the built-in catalogue, merges custom rules on
// top (override by id, append otherwise), validates the combined set, and
// serves it sorted by ascending priority. Repositories are immutable after
// construction; a rule-set change means building a new repository.
package rules

import (
	"sort"

	"ecworks/groundcover/pkg/rules/ast"
	"ecworks/groundcover/pkg/rules/catalog"
	"ecworks/groundcover/pkg/rules/validator"
)

// Repository holds a validated rule set in evaluation order.
type Repository struct {
	rules []*ast.RuleSpec
}

// NewRepository merges custom rules over the built-in catalogue, validates
// the combined set, and returns it ready for evaluation. A custom rule
// whose id matches an existing rule replaces it in place, keeping the
// position of the rule it overrides; new ids append. The merged set is
// then stably sorted by ascending priority, so equal priorities keep
// merge order.
func NewRepository(custom []*ast.RuleSpec) (*Repository, error) {
	return newRepository(catalog.Defaults(), custom)
}

// NewRepositoryWithDefaults merges custom rules over an explicit base set
// instead of the built-in catalogue. Pass nil custom rules to validate
// and order the base set alone.
func NewRepositoryWithDefaults(base, custom []*ast.RuleSpec) (*Repository, error) {
	merged := make([]*ast.RuleSpec, len(base))
	copy(merged, base)
	return newRepository(merged, custom)
}

func newRepository(merged, custom []*ast.RuleSpec) (*Repository, error) {
	index := make(map[string]int, len(merged))
	for i, rule := range merged {
		index[rule.ID] = i
	}

	for _, rule := range custom {
		if i, ok := index[rule.ID]; ok {
			merged[i] = rule
		} else {
			index[rule.ID] = len(merged)
			merged = append(merged, rule)
		}
	}

	if err := validator.New().Validate(merged); err != nil {
		return nil, err
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Priority < merged[j].Priority
	})

	return &Repository{rules: merged}, nil
}

// Rules returns the rule set in evaluation order. Callers own the
// returned slice but must not mutate the rules themselves.
func (r *Repository) Rules() []*ast.RuleSpec {
	out := make([]*ast.RuleSpec, len(r.rules))
	copy(out, r.rules)
	return out
}

// Get returns the rule with the given id, or nil.
func (r *Repository) Get(id string) *ast.RuleSpec {
	for _, rule := range r.rules {
		if rule.ID == id {
			return rule
		}
	}
	return nil
}

// Len returns the number of rules in the set.
func (r *Repository) Len() int {
	return len(r.rules)
}
