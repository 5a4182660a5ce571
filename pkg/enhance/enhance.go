// Package enhance adds optional language-model narrative to engine
// output.
//
// Enhancement is strictly additive: it runs after the deterministic
// result is assembled, never alters practices, pay items, or costs, and
// its failure never fails the run. Callers that want no enhancement use
// Noop.
package enhance

import (
	"context"
	"errors"

	"ecworks/groundcover/pkg/model"
)

// ErrUnavailable indicates the enhancement backend cannot be reached or
// is not configured. Callers treat it as "no enhancement", not as a
// failure.
var ErrUnavailable = errors.New("enhancement backend unavailable")

// Enhancer produces supplementary narrative for a completed engine run.
type Enhancer interface {
	// Enhance returns narrative text for the given project and its
	// deterministic output. Implementations must not mutate either
	// argument.
	Enhance(ctx context.Context, project *model.ProjectInput, output *model.ProjectOutput) (string, error)
}

// Noop is an Enhancer that produces nothing.
type Noop struct{}

func (Noop) Enhance(context.Context, *model.ProjectInput, *model.ProjectOutput) (string, error) {
	return "", nil
}
