package dispersal

import "errors"

// Sentinel errors for dispersal operations.
var (
	// ErrEmptyArrivalSpace indicates a kernel has no reachable destinations
	// for a departure deme. Fatal: the caller would stall.
	ErrEmptyArrivalSpace = errors.New("dispersal: empty arrival space")

	// ErrZeroWeightRow indicates a departure deme's weight row sums to zero,
	// so no destination can be sampled or normalized. Fatal.
	ErrZeroWeightRow = errors.New("dispersal: zero-weight row")

	// ErrUnknownDeme indicates a deme argument is not part of the kernel's
	// configured deme set.
	ErrUnknownDeme = errors.New("dispersal: unknown deme")
)
