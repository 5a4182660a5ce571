// Package ast defines the declarative representation of erosion-control
// rules: conditions, actions, and the rule specification itself.
//
// These are pure data types with no evaluation behavior. The parser builds
// them from YAML rule files, the validator checks them, and the engine
// evaluates them against projects.
package ast
