package coalescence

import (
	"math/rand"

	"github.com/katalvlaran/quetzal/store"
)

// rowKey identifies one cached backward transition row B(x,t).
type rowKey struct {
	x string
	t int
}

// CoalesceAlongHistory drives the Backward Coalescent Driver of spec.md
// §4.6: from h.LastTime() down to h.FirstTime()+1, it applies a co-location
// merger at every occupied deme, then migrates every surviving lineage
// backward by sampling from a flow-weighted transition row, caching each row
// on first build. One final co-location merger runs at FirstTime().
//
// Returns the resulting Forest, which callers hand to wftail.Coalesce if it
// still holds ≥2 lineages and a finite ancestral size is configured.
func CoalesceAlongHistory(h *store.History, forest *Forest, merger Merger, branch BranchFunc, makeTree MakeTreeFunc, rng *rand.Rand) (*Forest, error) {
	if forest.Len() < 2 {
		return forest, nil
	}

	rows := make(map[rowKey]*backwardRow)

	for t := h.LastTime(); t > h.FirstTime(); t-- {
		if err := mergeAllDemes(h, forest, merger, branch, makeTree, rng, t); err != nil {
			return nil, err
		}
		if forest.Len() <= 1 {
			return forest, nil
		}

		next := NewForest()
		for _, x := range forest.Positions() {
			for _, payload := range forest.RangeAt(x) {
				key := rowKey{x: x, t: t}
				row, ok := rows[key]
				if !ok {
					flows, err := h.FlowInto(x, t-1)
					if err != nil {
						return nil, ErrNoSuchFlow
					}
					row = newBackwardRow(flows)
					rows[key] = row
				}
				z := row.sample(rng)
				next.Insert(z, payload)
			}
		}
		if next.Len() != forest.Len() {
			return nil, ErrForestSizeNotConserved
		}
		forest = next
	}

	if forest.Len() >= 2 {
		if err := mergeAllDemes(h, forest, merger, branch, makeTree, rng, h.FirstTime()); err != nil {
			return nil, err
		}
	}
	return forest, nil
}

func mergeAllDemes(h *store.History, forest *Forest, merger Merger, branch BranchFunc, makeTree MakeTreeFunc, rng *rand.Rand, t int) error {
	for _, x := range forest.Positions() {
		v := forest.RangeAt(x)
		if len(v) < 2 {
			continue
		}
		n := h.GetSize(x, t)
		merged, err := merger.Merge(rng, x, t, n, v, branch, makeTree)
		if err != nil {
			return err
		}
		forest.SetRangeAt(x, merged)
	}
	return nil
}
