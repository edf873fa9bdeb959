package forward

import "errors"

// Sentinel errors for the forward engine.
var (
	// ErrExtinctedBeforeSampling indicates a generation emitted zero total
	// population across every departure deme. Fatal: the replicate cannot
	// reach the sampling generation.
	ErrExtinctedBeforeSampling = errors.New("forward: population extincted before sampling")

	// ErrUnsupportedKernel indicates a dispersal.Kernel implements neither
	// dispersal.IndividualBased nor dispersal.MassBased.
	ErrUnsupportedKernel = errors.New("forward: kernel implements neither individual- nor mass-based capability")
)
