package occupancy

import "math/rand"

// Sampler draws a Spectrum for (k,n), abstracting over the on-the-fly
// ball-and-urn simulation and the memoized-distribution strategies named in
// spec.md §4.3 ("samples spectra either on-the-fly ... or from a memoized
// distribution keyed by (k,N)").
type Sampler interface {
	Sample(rng *rand.Rand, k, n int) (Spectrum, error)
}

// OnTheFlySampler draws directly via SampleOnTheFly, never enumerating or
// caching a distribution. Cheapest per call for large (k,n) sampled once.
type OnTheFlySampler struct{}

// Sample implements Sampler.
func (OnTheFlySampler) Sample(rng *rand.Rand, k, n int) (Spectrum, error) {
	return SampleOnTheFly(rng, k, n), nil
}

// MemoizedSampler draws from the process-wide Memoize cache, amortizing
// enumeration cost across many calls with the same (k,n) — the typical ABC
// replicate-driver workload (SPEC_FULL.md §9's process-wide memoization
// cache note).
type MemoizedSampler struct{}

// Sample implements Sampler.
func (MemoizedSampler) Sample(rng *rand.Rand, k, n int) (Spectrum, error) {
	d, err := Memoize(k, n)
	if err != nil {
		return nil, err
	}
	return d.Sample(rng), nil
}
