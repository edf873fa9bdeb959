// Package quetzal simulates the joint demographic and genealogical history
// of a population expanding across a spatially explicit, time-varying
// landscape.
//
// A replicate runs in two passes: a forward demographic simulation grows
// and disperses a population deme by deme and generation by generation
// (package forward, driven by a dispersal.Kernel), after which a backward
// coalescent simulation traces the ancestry of a sample of gene copies back
// through the recorded history (package coalescence) and, if needed, into a
// panmictic ancestral tail (package wftail) until a most recent common
// ancestor is found.
//
// Subpackages:
//
//	store/       — the spatial-temporal size/flow value store a replicate is built on
//	dispersal/   — individual-based and mass-based migration kernels
//	occupancy/   — the occupancy-spectrum combinatorics behind simultaneous mergers
//	forward/     — the forward demographic engine
//	coalescence/ — the lineage forest and backward coalescent driver
//	wftail/      — the ancestral Wright-Fisher tail
//	landscape/   — grid/graph-backed deme topology
//	diagnostics/ — flow-conservation auditing and trajectory comparison
//	simulator/   — top-level orchestration of one replicate
//
// See cmd/quetzal-sim for a runnable entrypoint.
package quetzal
