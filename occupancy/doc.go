// Package occupancy implements the Occupancy Spectrum Engine: enumerating and
// sampling the ways k lineages (balls) can be distributed among N parental
// slots (urns) in a single generation, and computing the Johnson–Kotz
// probability of each such distribution.
//
// A Spectrum M = (M_0,...,M_k) records, for each bin size j, how many urns
// received exactly j balls. Every Spectrum produced by this package satisfies
// the two balance equations Σ_j M_j = N and Σ_j j·M_j = k.
//
// Probability uses math/big.Rat for exact intermediate arithmetic: the naive
// floating-point product of factorials underflows well before k and N reach
// realistic population sizes.
package occupancy
