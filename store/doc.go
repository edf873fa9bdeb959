// Package store implements the Spatial-Temporal Value Store: the mapping
// from (deme, generation) to population size and from (deme, generation,
// deme) to directed gene flow that the Forward Engine writes and the
// Backward Driver reads.
//
// History owns size and flow entries exclusively during a simulation
// replicate. The inverse flow index used by backward migration is
// maintained incrementally inside AddFlow rather than rebuilt lazily, so a
// backward lookup costs O(|in-neighbors|) instead of O(|demes|).
package store
