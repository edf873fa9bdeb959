// Package forward drives the Forward History Engine: it expands a
// store.History forward in time using a caller-supplied growth rule and a
// dispersal.Kernel, writing size and flow entries at each generation.
//
// Grounded on original_source/include/quetzal/demography/History.h's
// expand() family of methods.
package forward
