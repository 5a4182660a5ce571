// Package history persists completed engine runs so past evaluations can
// be listed, re-inspected, and pruned on a retention schedule.
package history

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates no record exists for the requested id.
var ErrNotFound = errors.New("evaluation record not found")

// EvaluationRecord is one persisted engine run.
type EvaluationRecord struct {
	// ID is a unique record identifier (UUID).
	ID string

	// ProjectName echoes the evaluated project's name.
	ProjectName string

	// Jurisdiction echoes the project's jurisdiction.
	Jurisdiction string

	// EvaluatedAt is the output timestamp of the run.
	EvaluatedAt time.Time

	// RuleCount is the number of rules in the evaluated set.
	RuleCount int

	// PracticeCount is the total number of practices produced.
	PracticeCount int

	// TotalEstimatedCost is the run's total estimated cost.
	TotalEstimatedCost float64

	// OutputJSON is the full serialized ProjectOutput.
	OutputJSON string
}

// Store persists evaluation records.
type Store interface {
	// Save persists a record. Record ids are unique; saving a duplicate
	// id is an error.
	Save(ctx context.Context, record *EvaluationRecord) error

	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (*EvaluationRecord, error)

	// List returns up to limit records, newest first. A non-positive
	// limit means no limit.
	List(ctx context.Context, limit int) ([]*EvaluationRecord, error)

	// DeleteOlderThan removes records evaluated before the cutoff and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)

	// Close releases store resources.
	Close() error
}
