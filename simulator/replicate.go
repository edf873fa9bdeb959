package simulator

import (
	"math/rand"

	"github.com/katalvlaran/quetzal/coalescence"
	"github.com/katalvlaran/quetzal/dispersal"
	"github.com/katalvlaran/quetzal/forward"
	"github.com/katalvlaran/quetzal/store"
	"github.com/katalvlaran/quetzal/wftail"
)

// Result carries everything a replicate produced: the full history (for
// diagnostics, e.g. diagnostics.AuditConservation), the coalesced forest,
// and the most recent common ancestor payload once one has been found.
type Result struct {
	History *store.History
	Forest  *coalescence.Forest

	// MRCA holds the most recent common ancestor payload once the forest
	// has been reduced to a single lineage, either by CoalesceAlongHistory
	// alone or by the subsequent ancestral Wright-Fisher tail; nil when no
	// single lineage was reached. After the unbounded tail
	// (MaxAncestralGenerations == 0), MRCA is set while Forest is left as
	// CoalesceAlongHistory returned it.
	MRCA any

	// AncestralGenerationsConsumed is set only by the bounded tail
	// (AncestralSize > 0 and MaxAncestralGenerations > 0); it stays 0 when
	// the tail runs to completion.
	AncestralGenerationsConsumed int
}

// RunReplicate drives one full replicate over an already-seeded History h:
// expand it forward to samplingTime via growth and kernel, build a forest
// from sample and coalesce it backward along the recorded history, and
// optionally finish reducing it to a single lineage against a panmictic
// ancestral population.
//
// h is constructed and seeded by the caller (store.NewHistory plus
// h.SetSize at t0) rather than by RunReplicate itself, so that growth can
// close over the same live h the way the source package's growth functors
// close over pop_size_history() after construction — RunReplicate cannot
// hand back a history that does not exist yet.
//
// This mirrors the source package's ForwardBackwardSpatiallyExplicit class:
// expand_demography drives forward.Expand;
// make_forest_and_coalesce_along_spatial_history's test_sample_consistency
// and check_consistency checks are both already enforced by
// coalescence.BuildSampleForest (ErrEmptySample and
// ErrSampleSizeExceedsPopulation respectively), since samplingTime is always
// h.LastTime() once the forward expansion completes.
func RunReplicate(
	h *store.History,
	samplingTime int,
	growth forward.GrowthFunc, kernel dispersal.Kernel,
	sample map[string]int, makeLineage func(x string, i int) any,
	rng *rand.Rand,
	opts RunOptions,
) (*Result, error) {
	generations := samplingTime - h.LastTime()
	if err := forward.Expand(h, generations, growth, kernel, rng); err != nil {
		return nil, err
	}
	if opts.Verbose {
		opts.Logger.Debug().Int("sampling_time", samplingTime).Msg("forward expansion reached sampling generation")
	}

	forest, err := coalescence.BuildSampleForest(h, samplingTime, sample, makeLineage)
	if err != nil {
		return nil, err
	}

	forest, err = coalescence.CoalesceAlongHistory(h, forest, opts.Merger, opts.Branch, opts.MakeTree, rng)
	if err != nil {
		return nil, err
	}
	if opts.Verbose {
		opts.Logger.Debug().Int("lineages_remaining", forest.Len()).Msg("coalesced along recorded history")
	}

	result := &Result{History: h, Forest: forest}
	if forest.Len() == 1 {
		result.MRCA = forest.All()[0].Payload
		return result, nil
	}
	if opts.AncestralSize <= 0 || forest.Len() < 2 {
		return result, nil
	}

	if opts.MaxAncestralGenerations > 0 {
		tail, consumed, err := wftail.CoalesceForGenerations(forest, opts.AncestralSize, opts.MaxAncestralGenerations, opts.Branch, opts.MakeParent, rng)
		if err != nil {
			return nil, err
		}
		result.Forest = tail
		result.AncestralGenerationsConsumed = consumed
		if tail.Len() == 1 {
			result.MRCA = tail.All()[0].Payload
		}
		return result, nil
	}

	mrca, err := wftail.Coalesce(forest, opts.AncestralSize, opts.Branch, opts.MakeParent, rng)
	if err != nil {
		return nil, err
	}
	result.MRCA = mrca
	return result, nil
}
