package coalescence

import "errors"

// Sentinel errors for Forest and the Backward Coalescent Driver.
var (
	// ErrEmptySample indicates the sample mapping is empty or degenerate
	// (fewer than two total lineages). Fatal for coalescence.
	ErrEmptySample = errors.New("coalescence: sample is empty or degenerate")

	// ErrSampleSizeExceedsPopulation indicates a sample deme requested more
	// lineages than its recorded size at sampling time. Always raised, per
	// SPEC_FULL.md §9's resolution of the original's inconsistent behavior.
	ErrSampleSizeExceedsPopulation = errors.New("coalescence: sample size exceeds recorded population")

	// ErrNoSuchFlow indicates a backward migration step tried to build a
	// transition row from a deme with no recorded inbound flow. Programmer
	// error in the forward step; fatal.
	ErrNoSuchFlow = errors.New("coalescence: no recorded flow for backward migration")

	// ErrForestSizeNotConserved indicates a backward migration step changed
	// the forest's total lineage count. Internal invariant; should never
	// occur.
	ErrForestSizeNotConserved = errors.New("coalescence: forest size not conserved across backward migration")
)
