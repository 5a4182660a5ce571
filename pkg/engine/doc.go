// Package engine evaluates the merged rule set against a project and
// assembles the recommended erosion-control plan.
//
// Evaluation visits rules in ascending priority order. Every rule whose
// conditions all hold contributes one practice and one pay item; matching
// is not first-match-wins. A condition or formula error aborts the run
// with the offending rule's id attached, so a partially-built plan is
// never returned.
package engine
