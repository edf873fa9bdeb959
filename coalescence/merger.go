package coalescence

import (
	"math/rand"

	"github.com/katalvlaran/quetzal/occupancy"
)

// BranchFunc combines a parent lineage's current payload with one consumed
// child's payload, returning the parent's updated payload. Opaque to the
// core: callers may build integer ids, subtree pointers, or coordinate
// vectors (spec.md §9 "Lineage payload genericity").
type BranchFunc func(parent, child any) any

// MakeTreeFunc synthesizes an initial parent payload for a new lineage
// emerging at deme x, generation t.
type MakeTreeFunc func(x string, t int) any

// Merger reduces a co-located buffer of k lineages at deme x, generation t,
// against ambient population size n, returning the surviving buffer.
type Merger interface {
	Merge(rng *rand.Rand, x string, t, n int, v []any, branch BranchFunc, makeTree MakeTreeFunc) ([]any, error)
}

// BinaryMerger implements spec.md §4.6's binary-merger policy: with
// probability C(k,2)/N (capped at 1), shuffle the buffer, join its first and
// last entries under a new parent tree that replaces the first entry, and
// drop the last, reducing k by one. Otherwise the buffer passes through
// unmerged.
//
// This is the sole resolution of SPEC_FULL.md §9's Open Question: the
// original's discrepant `1/N` code path is not carried forward.
type BinaryMerger struct{}

// Merge implements Merger.
func (BinaryMerger) Merge(rng *rand.Rand, x string, t, n int, v []any, branch BranchFunc, makeTree MakeTreeFunc) ([]any, error) {
	k := len(v)
	if k < 2 {
		return v, nil
	}

	prob := binaryMergeProbability(k, n)
	if rng.Float64() >= prob {
		return v, nil
	}

	shuffleAnyInPlace(v, rng)

	parent := branch(makeTree(x, t), v[0])
	parent = branch(parent, v[len(v)-1])
	v[0] = parent
	return v[:len(v)-1], nil
}

// binaryMergeProbability returns C(k,2)/n capped at 1; n<=0 degenerates to 1
// (certain merge), matching a population collapsed to zero ambient size.
func binaryMergeProbability(k, n int) float64 {
	c2 := float64(k*(k-1)) / 2
	if n <= 0 {
		return 1
	}
	p := c2 / float64(n)
	if p > 1 {
		p = 1
	}
	return p
}

// SimultaneousMultipleMerger implements spec.md §4.6's SMM policy: draw a
// spectrum M for (k,n) from Sampler, shuffle the buffer, then for each bin
// j>=2 merge j consumed lineages into one freshly synthesized parent per
// urn; bin j==1 lineages (singletons) pass through untouched.
type SimultaneousMultipleMerger struct {
	Sampler occupancy.Sampler
}

// Merge implements Merger.
func (s SimultaneousMultipleMerger) Merge(rng *rand.Rand, x string, t, n int, v []any, branch BranchFunc, makeTree MakeTreeFunc) ([]any, error) {
	k := len(v)
	if k < 2 {
		return v, nil
	}

	m, err := s.Sampler.Sample(rng, k, n)
	if err != nil {
		return nil, err
	}

	shuffleAnyInPlace(v, rng)

	front := 0
	back := len(v) - 1
	out := make([]any, 0, k)

	if len(m) > 1 {
		for i := 0; i < m[1]; i++ {
			out = append(out, v[front])
			front++
		}
	}
	for j := 2; j < len(m); j++ {
		for i := 0; i < m[j]; i++ {
			parent := branch(makeTree(x, t), v[front])
			front++
			for c := 1; c < j; c++ {
				parent = branch(parent, v[back])
				back--
			}
			out = append(out, parent)
		}
	}
	return out, nil
}

// shuffleAnyInPlace performs an in-place Fisher-Yates shuffle, mirroring the
// teacher's tsp.shuffleIntsInPlace convention generalized to any payload.
func shuffleAnyInPlace(v []any, rng *rand.Rand) {
	for i := len(v) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		v[i], v[j] = v[j], v[i]
	}
}
