package coalescence

import "math/rand"

// backwardRow is a cached discrete distribution B(x,t) over source demes at
// t-1, weighted by the observed flow counts into x at t-1. Built once per
// (x,t) and reused for every lineage colocated at x (spec.md §4.6 step 2).
type backwardRow struct {
	sources []string
	weights []int
	total   int
}

func newBackwardRow(flows map[string]int) *backwardRow {
	row := &backwardRow{
		sources: make([]string, 0, len(flows)),
		weights: make([]int, 0, len(flows)),
	}
	for x, n := range flows {
		if n <= 0 {
			continue
		}
		row.sources = append(row.sources, x)
		row.weights = append(row.weights, n)
		row.total += n
	}
	return row
}

// sample draws a source deme proportional to its recorded flow weight.
func (r *backwardRow) sample(rng *rand.Rand) string {
	target := rng.Intn(r.total)
	cum := 0
	for i, w := range r.weights {
		cum += w
		if target < cum {
			return r.sources[i]
		}
	}
	return r.sources[len(r.sources)-1]
}
