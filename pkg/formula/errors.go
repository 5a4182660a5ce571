package formula

import "fmt"

// SyntaxError indicates malformed formula text: an unexpected token,
// an unbalanced parenthesis, or trailing input.
type SyntaxError struct {
	Formula string // Original formula text
	Pos     int    // Byte offset of the offending token (0-based)
	Message string // What was wrong
}

// Error returns the error message.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in formula %q at offset %d: %s", e.Formula, e.Pos, e.Message)
}

// FieldError indicates a formula references an identifier that is not
// bound in the evaluation environment.
type FieldError struct {
	Formula string // Original formula text
	Name    string // The unknown identifier
}

// Error returns the error message.
func (e *FieldError) Error() string {
	return fmt.Sprintf("formula %q references unknown field %q", e.Formula, e.Name)
}

// EvalError indicates an arithmetic failure during evaluation,
// such as division by zero.
type EvalError struct {
	Formula string // Original formula text
	Message string // What failed
}

// Error returns the error message.
func (e *EvalError) Error() string {
	return fmt.Sprintf("cannot evaluate formula %q: %s", e.Formula, e.Message)
}
