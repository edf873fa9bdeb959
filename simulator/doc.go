// Package simulator wires together the forward demographic engine and the
// backward coalescent driver into a single replicate, mirroring the role the
// source package's ForwardBackwardSpatiallyExplicit class played: one
// store.History owned for the lifetime of a replicate, a forward expansion
// to the sampling generation, a sample forest built and coalesced along the
// recorded history, and an optional ancestral Wright-Fisher tail when the
// forest has not yet reached its most recent common ancestor.
package simulator
