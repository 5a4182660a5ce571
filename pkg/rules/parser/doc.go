// Package parser reads YAML rule files and builds rule specifications.
//
// Parsing is a two-step pipeline: YAML is decoded into intermediate
// structures that mirror the file layout, then the builder transforms them
// into ast.RuleSpec values, normalizing numeric condition values to float64
// and accumulating structural errors with rule ids attached.
package parser
