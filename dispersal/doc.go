// Package dispersal models how population mass crosses deme boundaries in a
// single generation.
//
// Two capability shapes share the Kernel umbrella:
//   - IndividualBased samples one arrival deme per emigrant.
//   - MassBased deterministically splits a departing mass across an arrival
//     space using a row-normalized rate matrix.
//
// Both variants keep the original's ownership shape: the heavyweight rate
// data lives behind a single pointer owned once at construction time, and
// every Kernel value handed to callers is a cheap-to-copy handle onto it —
// copying a Kernel never duplicates the underlying matrix.
package dispersal
