package occupancy

import (
	"fmt"
	"math/rand"
	"sort"
)

// DistributionOptions controls how Distribution filters and edits candidate
// spectra before building the sampling weights, mirroring the original's
// filter_policy.h and utils.h spectrum handlers.
type DistributionOptions struct {
	// Filter, if non-nil, is applied to each spectrum's probability; spectra
	// for which it returns false are dropped before the distribution is
	// built (e.g. drop below a probability threshold).
	Filter func(prob float64) bool

	// Edit, if non-nil, rewrites each retained spectrum before it is stored
	// (e.g. TruncateTrailingZeros).
	Edit func(Spectrum) Spectrum
}

// Distribution is a discrete distribution over Spectrum values, built by
// enumerating all spectra for a fixed (k,n) and weighting each by its
// Johnson–Kotz probability.
type Distribution struct {
	k, n      int
	spectra   []Spectrum
	cumWeight []float64 // cumulative, sums to ~1.0
}

// NewDistribution enumerates all spectra for (k,n), computes their
// probabilities, applies opts.Filter/opts.Edit, and builds a sampleable
// cumulative distribution.
func NewDistribution(k, n int, opts DistributionOptions) (*Distribution, error) {
	if k < 0 || n < 0 {
		return nil, ErrInvalidParameters
	}

	all := Enumerate(k, n)

	d := &Distribution{k: k, n: n}
	var weights []float64
	for _, m := range all {
		p := Probability(m, k, n)
		if opts.Filter != nil && !opts.Filter(p) {
			continue
		}
		if opts.Edit != nil {
			m = opts.Edit(m)
		}
		d.spectra = append(d.spectra, m)
		weights = append(weights, p)
	}

	if len(d.spectra) == 0 {
		return nil, fmt.Errorf("occupancy: NewDistribution(k=%d,n=%d): %w", k, n, ErrEmptyDistribution)
	}

	cum := 0.0
	d.cumWeight = make([]float64, len(weights))
	for i, w := range weights {
		cum += w
		d.cumWeight[i] = cum
	}
	return d, nil
}

// Sample draws a Spectrum from the distribution proportional to its weight.
func (d *Distribution) Sample(rng *rand.Rand) Spectrum {
	total := d.cumWeight[len(d.cumWeight)-1]
	target := rng.Float64() * total

	idx := sort.SearchFloat64s(d.cumWeight, target)
	if idx >= len(d.spectra) {
		idx = len(d.spectra) - 1
	}
	return d.spectra[idx].Clone()
}

// TotalWeight returns the sum of all retained spectra's probabilities,
// usable by tests to check SPEC_FULL.md §8 property 7 (should be ~1.0 when
// no Filter was applied).
func (d *Distribution) TotalWeight() float64 {
	return d.cumWeight[len(d.cumWeight)-1]
}

// Len returns the number of retained spectra.
func (d *Distribution) Len() int { return len(d.spectra) }
