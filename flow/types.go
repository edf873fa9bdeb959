package flow

import (
	"context"
	"fmt"
)

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = fmt.Errorf("flow: %w", errSourceNotFound)
var errSourceNotFound = fmt.Errorf("source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = fmt.Errorf("flow: %w", errSinkNotFound)
var errSinkNotFound = fmt.Errorf("sink vertex not found")

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %q→%q: %g", e.From, e.To, e.Cap)
}

// FlowOptions configures all max-flow algorithms.
//   - Ctx: cancellation/timeout context for long-running augmentation loops.
//   - Epsilon: treat capacities ≤ Epsilon as zero (default 1e-9).
//   - Verbose: if true, logs each augmentation when possible.
//   - LevelRebuildInterval: for Dinic, rebuild level graph every N augmentations.
type FlowOptions struct {
	Ctx                  context.Context
	Epsilon              float64
	Verbose              bool
	LevelRebuildInterval int
}

// defaultEpsilon is the default capacity-zeroing threshold.
const defaultEpsilon = 1e-9

// DefaultOptions returns production-safe defaults: a background context, the
// default epsilon, no verbose logging, and no forced level-graph rebuild.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Ctx:                  context.Background(),
		Epsilon:              defaultEpsilon,
		Verbose:              false,
		LevelRebuildInterval: 0,
	}
}

// normalize fills in zero-value fields left unset by a caller that built a
// FlowOptions literal directly instead of starting from DefaultOptions.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = defaultEpsilon
	}
}
