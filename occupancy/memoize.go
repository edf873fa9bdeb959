package occupancy

// memoCache is process-wide: lifecycle spans first use to process end, and
// it is append-only — entries are never evicted nor mutated. SPEC_FULL.md §5
// requires this be accessed single-threaded only (no mutex here), matching
// the original's design rationale: an ABC harness issues thousands of
// replicates with overlapping (k,n), so rebuilding the distribution each time
// is prohibitive.
var memoCache = make(map[[2]int]*Distribution)

// Memoize returns the cached Distribution for (k,n), building and caching it
// on first use with no Filter/Edit applied. Subsequent calls with the same
// (k,n) reuse the cached value.
func Memoize(k, n int) (*Distribution, error) {
	key := [2]int{k, n}
	if d, ok := memoCache[key]; ok {
		return d, nil
	}

	d, err := NewDistribution(k, n, DistributionOptions{})
	if err != nil {
		return nil, err
	}
	memoCache[key] = d
	return d, nil
}

// ResetMemoizeCache clears the process-wide cache. Exposed for tests; a real
// replicate driver never needs to call this.
func ResetMemoizeCache() {
	memoCache = make(map[[2]int]*Distribution)
}
