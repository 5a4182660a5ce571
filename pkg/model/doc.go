// Package model defines the project input and recommendation output data
// structures shared across the rules engine, report generation, and run
// history.
//
// ProjectInput is immutable for the duration of one engine invocation and
// owned exclusively by the caller. ProjectOutput is created fresh per run
// and never mutated after assembly.
//
// Soil and slope classifications are closed enumerations at the engine
// boundary: an unrecognized value is rejected by input validation before a
// project reaches the engine. Practice types are open to extension — custom
// rules may introduce new practice types without a code change.
package model
