package wftail

import (
	"math/rand"

	"github.com/katalvlaran/quetzal/coalescence"
	"github.com/katalvlaran/quetzal/occupancy"
	"gonum.org/v1/gonum/stat/distuv"
)

// Coalesce finishes reducing forest to a single lineage against a panmictic
// ancestral population of size ancestralSize, implementing spec.md
// §4.7/§4.6-end: if the lineage count k exceeds ancestralSize, one
// simultaneous-multiple-merge generation runs first to restore k <=
// ancestralSize; then binary merges repeat, each preceded by a geometric
// waiting time with p = 1/(1 + ancestralSize/C(k,2)), until one lineage
// survives.
//
// makeParent synthesizes a new parent payload given the elapsed depth (in
// generations) since the forest's recorded generation; branch combines a
// parent with each consumed child, as in package coalescence.
func Coalesce(forest *coalescence.Forest, ancestralSize int, branch coalescence.BranchFunc, makeParent func(depth int) any, rng *rand.Rand) (any, error) {
	all := forest.All()
	v := make([]any, len(all))
	for i, p := range all {
		v[i] = p.Payload
	}

	k := len(v)
	if k < 2 {
		if k == 1 {
			return v[0], nil
		}
		return nil, ErrTooFewLineages
	}

	depth := 0
	sampler := occupancy.OnTheFlySampler{}

	if k > ancestralSize {
		merger := coalescence.SimultaneousMultipleMerger{Sampler: sampler}
		makeTree := func(x string, t int) any { return makeParent(depth) }
		merged, err := merger.Merge(rng, "", depth, ancestralSize, v, branch, makeTree)
		if err != nil {
			return nil, err
		}
		v = merged
		k = len(v)
	}

	for k > 1 {
		c2 := float64(k*(k-1)) / 2
		p := 1 / (1 + float64(ancestralSize)/c2)
		dist := distuv.Geometric{P: p, Src: rng}
		depth += int(dist.Rand()) + 1

		shuffleAnyInPlace(v, rng)
		parent := branch(makeParent(depth), v[0])
		parent = branch(parent, v[len(v)-1])
		v[0] = parent
		v = v[:len(v)-1]
		k--
	}
	return v[0], nil
}

// shuffleAnyInPlace performs an in-place Fisher-Yates shuffle, mirroring the
// teacher's tsp.shuffleIntsInPlace convention generalized to any payload.
// Kept as its own small copy rather than exporting coalescence's identical
// helper, since the two packages' shuffles operate on independently-owned
// buffers and neither needs the other's internal types.
func shuffleAnyInPlace(v []any, rng *rand.Rand) {
	for i := len(v) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		v[i], v[j] = v[j], v[i]
	}
}
