package simulator

import (
	"github.com/katalvlaran/quetzal/coalescence"
	"github.com/rs/zerolog"
)

// RunOptions configures one RunReplicate call. In the zero value, Logger is
// a safe no-op sink and AncestralSize <= 0 disables the ancestral
// Wright-Fisher tail entirely (the forest is returned as-is once the
// recorded history is exhausted, possibly still holding >1 lineage). Merger
// has no default: it is nil in the zero value, and RunReplicate calls it
// whenever two or more lineages share a deme.
//
// Verbose follows flow.FlowOptions' Verbose toggle (SPEC_FULL.md §7 Ambient:
// logging); RunOptions adds the Logger it gates.
type RunOptions struct {
	Verbose bool
	Logger  zerolog.Logger

	// Merger and Branch/MakeTree drive the co-location merges applied by
	// CoalesceAlongHistory (and, if AncestralSize > 0, the WF tail).
	Merger   coalescence.Merger
	Branch   coalescence.BranchFunc
	MakeTree coalescence.MakeTreeFunc

	// AncestralSize, when positive, enables the ancestral Wright-Fisher
	// tail (package wftail) once CoalesceAlongHistory's forest still holds
	// >= 2 lineages after the recorded history is exhausted.
	AncestralSize int

	// MaxAncestralGenerations, when > 0, bounds the WF tail via
	// wftail.CoalesceForGenerations instead of running wftail.Coalesce to
	// completion; 0 means unbounded (run to a single lineage).
	MaxAncestralGenerations int

	// MakeParent synthesizes a WF-tail parent payload given elapsed depth;
	// required only when AncestralSize > 0.
	MakeParent func(depth int) any
}
