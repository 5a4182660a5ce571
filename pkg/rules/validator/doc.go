// Package validator checks rule specifications before the engine will
// accept them.
//
// Validation runs in two passes. Structural validation checks that every
// rule carries the fields it must carry: a unique id, a recognized
// operator on each condition, a complete action. Semantic validation
// checks meaning: condition fields must name real project fields, and
// quantity formulas must parse and reference only numeric fields.
//
// Both passes accumulate defects into a single ErrorList so a rule file
// author sees every problem at once, each tied to its rule id.
package validator
