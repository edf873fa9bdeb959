package occupancy

import "errors"

// Sentinel errors for occupancy operations.
var (
	// ErrSpectrumInvariantBroken indicates a produced spectrum violates one of
	// the two balance equations. Internal invariant; should never occur from
	// Enumerate or SampleOnTheFly unless called with invalid (k,n).
	ErrSpectrumInvariantBroken = errors.New("occupancy: spectrum balance equations violated")

	// ErrInvalidParameters indicates k or n is negative.
	ErrInvalidParameters = errors.New("occupancy: k and n must be non-negative")

	// ErrEmptyDistribution indicates Distribution was built from zero retained
	// spectra (e.g. a Filter rejected every candidate).
	ErrEmptyDistribution = errors.New("occupancy: distribution has no retained spectra")
)
