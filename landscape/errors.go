package landscape

import "errors"

// Sentinel errors for landscape operations.
var (
	// ErrUnknownDeme indicates a referenced deme is not present in the landscape.
	ErrUnknownDeme = errors.New("landscape: unknown deme")

	// ErrInvalidDimensions indicates a non-positive grid dimension was requested.
	ErrInvalidDimensions = errors.New("landscape: rows and cols must be > 0")

	// ErrUnweighted indicates a weight-dependent operation was requested on an
	// unweighted landscape.
	ErrUnweighted = errors.New("landscape: landscape carries no weights")
)
