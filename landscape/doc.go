// Package landscape models the discrete spatial grid of demes a simulation
// runs over: a set of hashable deme identifiers, a neighbor relation, and a
// pairwise weight used by dispersal kernels and growth functionals.
//
// A Landscape is a thin, deme-flavored facade over a *core.Graph: demes are
// graph vertices and pairwise weight is edge weight. Landscapes never touch
// population sizes or flows — those live in package store.
package landscape
