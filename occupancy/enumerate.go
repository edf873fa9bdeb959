package occupancy

// Enumerate produces every Spectrum of (k balls, n urns) via a depth-first
// descent over decreasing bin size. At each level j (starting at j=k, the
// largest bin a single urn could hold), the vertical branch (assign i urns
// to bin j, i from floor(remaining_k/j) down to 1) and the horizontal branch
// (assign 0 urns to bin j) are walked as one loop from i=floor(remaining_k/j)
// down to i=0, recursing on bin j-1 with the balls and urns consumed.
//
// Reaching j==0 with balls still unassigned is an unsolvable leaf: the
// recursion simply returns without emitting, which is how the algorithm
// backtracks (SPEC_FULL.md §4.3's UnsolvableSpectrumLeaf, recovered here
// rather than surfaced).
func Enumerate(k, n int) []Spectrum {
	if k < 0 || n < 0 {
		return nil
	}

	var out []Spectrum
	m := make(Spectrum, k+1)
	enumerateRec(k, n, k, m, &out)
	return out
}

func enumerateRec(remK, remN, j int, m Spectrum, out *[]Spectrum) {
	if j == 0 {
		if remK == 0 {
			m[0] = remN
			*out = append(*out, m.Clone())
		}
		return
	}

	maxI := remK / j
	for i := maxI; i >= 0; i-- {
		if remN-i < 0 {
			continue
		}
		m[j] = i
		enumerateRec(remK-i*j, remN-i, j-1, m, out)
	}
	m[j] = 0
}
