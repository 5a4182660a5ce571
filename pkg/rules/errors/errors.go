// Package errors provides rich, accumulating errors for rule parsing and
// validation. Load-time failures always name the offending rule so an
// author can fix the rule file without re-deriving which rule broke.
package errors

import (
	"fmt"
	"strings"
)

// ErrorType categorizes a rule-file defect.
type ErrorType string

const (
	ErrorTypeSyntax     ErrorType = "syntax"     // YAML syntax error
	ErrorTypeStructural ErrorType = "structural" // Missing/invalid fields, duplicate ids
	ErrorTypeSemantic   ErrorType = "semantic"   // Unknown condition field or operator
	ErrorTypeFormula    ErrorType = "formula"    // Quantity formula does not parse or references unknown fields
	ErrorTypeIO         ErrorType = "io"         // File I/O error
)

// Error is one rule-file defect with the rule it belongs to and an
// optional suggested fix.
type Error struct {
	Type       ErrorType // Category of defect
	RuleID     string    // Offending rule id ("" when the defect is file-level)
	Message    string    // What is wrong
	Suggestion string    // Suggested fix (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	if e.RuleID != "" {
		sb.WriteString(fmt.Sprintf("[%s] rule %q: %s", e.Type, e.RuleID, e.Message))
	} else {
		sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf(" (suggestion: %s)", e.Suggestion))
	}

	return sb.String()
}

// ErrorList accumulates defects across a whole rule set so validation can
// report every problem at once instead of failing on the first.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates an empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{Errors: make([]*Error, 0)}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and appends a new error.
func (el *ErrorList) AddError(errType ErrorType, ruleID, message string) {
	el.Add(&Error{Type: errType, RuleID: ruleID, Message: message})
}

// AddErrorWithSuggestion creates and appends a new error with a suggested fix.
func (el *ErrorList) AddErrorWithSuggestion(errType ErrorType, ruleID, message, suggestion string) {
	el.Add(&Error{Type: errType, RuleID: ruleID, Message: message, Suggestion: suggestion})
}

// HasErrors returns true if any defects were recorded.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of recorded defects.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// ByType returns all defects of the given category.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// Error implements the error interface over the whole list.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d rule error(s):\n", el.Count()))
	for _, err := range el.Errors {
		sb.WriteString("  ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}
	return sb.String()
}

// ToError returns nil when the list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}
