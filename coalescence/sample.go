package coalescence

import (
	"fmt"

	"github.com/katalvlaran/quetzal/store"
)

// BuildSampleForest constructs the initial Forest at sampling generation t
// from a sample specification: deme -> requested lineage count. makeLineage
// synthesizes the i-th (0-indexed) lineage payload at deme x.
//
// Always raises ErrSampleSizeExceedsPopulation when a requested count
// exceeds h.GetSize(x,t), per SPEC_FULL.md §9's resolution of the original's
// inconsistent behavior (some code paths raised, others silently proceeded).
func BuildSampleForest(h *store.History, t int, sample map[string]int, makeLineage func(x string, i int) any) (*Forest, error) {
	total := 0
	for _, n := range sample {
		total += n
	}
	if total < 2 {
		return nil, ErrEmptySample
	}

	forest := NewForest()
	for x, n := range sample {
		if n <= 0 {
			continue
		}
		available := h.GetSize(x, t)
		if n > available {
			return nil, fmt.Errorf("coalescence: deme %s requests %d lineages, population is %d: %w", x, n, available, ErrSampleSizeExceedsPopulation)
		}
		for i := 0; i < n; i++ {
			forest.Insert(x, makeLineage(x, i))
		}
	}
	return forest, nil
}
