package wftail

import (
	"math/rand"

	"github.com/katalvlaran/quetzal/coalescence"
	"github.com/katalvlaran/quetzal/occupancy"
	"gonum.org/v1/gonum/stat/distuv"
)

// ancestralDeme is the bucket CoalesceForGenerations stores surviving
// lineages under: the ancestral tail is panmictic, so lineages no longer
// have a meaningful spatial deme once they enter it.
const ancestralDeme = ""

// CoalesceForGenerations runs the same reduction as Coalesce but stops once
// maxGenerations have been consumed, even if more than one lineage remains.
// It returns the resulting (possibly still multi-lineage) Forest and the
// number of generations actually consumed, letting a caller cap the
// wall-clock cost of the ancestral tail during an ABC sweep.
func CoalesceForGenerations(forest *coalescence.Forest, ancestralSize, maxGenerations int, branch coalescence.BranchFunc, makeParent func(depth int) any, rng *rand.Rand) (*coalescence.Forest, int, error) {
	all := forest.All()
	v := make([]any, len(all))
	for i, p := range all {
		v[i] = p.Payload
	}

	k := len(v)
	if k < 2 {
		return forest, 0, nil
	}

	depth := 0
	consumed := 0
	sampler := occupancy.OnTheFlySampler{}

	if k > ancestralSize {
		merger := coalescence.SimultaneousMultipleMerger{Sampler: sampler}
		makeTree := func(x string, t int) any { return makeParent(depth) }
		merged, err := merger.Merge(rng, "", depth, ancestralSize, v, branch, makeTree)
		if err != nil {
			return nil, 0, err
		}
		v = merged
		k = len(v)
	}

	for k > 1 {
		c2 := float64(k*(k-1)) / 2
		p := 1 / (1 + float64(ancestralSize)/c2)
		dist := distuv.Geometric{P: p, Src: rng}
		wait := int(dist.Rand()) + 1
		if consumed+wait > maxGenerations {
			break
		}
		consumed += wait
		depth += wait

		shuffleAnyInPlace(v, rng)
		parent := branch(makeParent(depth), v[0])
		parent = branch(parent, v[len(v)-1])
		v[0] = parent
		v = v[:len(v)-1]
		k--
	}

	out := coalescence.NewForest()
	out.InsertAll(ancestralDeme, v)
	return out, consumed, nil
}
