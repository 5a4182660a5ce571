// Package formula implements the restricted arithmetic expression language
// used by rule quantity formulas.
//
// The language is deliberately small: numeric literals, whitelisted field
// identifiers, the four arithmetic operators (+ - * /), unary minus, and
// parentheses. There are no function calls, comparisons, assignments, or
// control flow. Formula text originates from rule files, including
// user-supplied custom rules, so evaluation must terminate, be free of side
// effects, and never reach outside the provided environment.
//
// Expressions are parsed by a hand-written recursive-descent parser into a
// typed expression tree and evaluated bottom-up with standard operator
// precedence and left-to-right associativity:
//
//	expr    = term  { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | primary
//	primary = NUMBER | IDENT | "(" expr ")"
//
// Parsing and evaluation are separate steps so that rule validation can
// check a formula's syntax and field references at load time without
// evaluating it against a project.
package formula
