package store

import "errors"

// Sentinel errors for store operations.
var (
	// ErrNoSuchSize names the case where no size entry was ever recorded for
	// (x, t). No History method returns it: GetSize reports a missing entry
	// as 0, the same as an entry written as zero.
	ErrNoSuchSize = errors.New("store: no size entry recorded")

	// ErrNoSuchFlow indicates a backward lookup into a deme that received no
	// recorded flow at the requested generation.
	ErrNoSuchFlow = errors.New("store: no flow recorded into deme at generation")

	// ErrNegativeValue indicates a negative size or flow delta was supplied.
	ErrNegativeValue = errors.New("store: size and flow values must be non-negative")
)
