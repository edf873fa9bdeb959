// Package matrix offers a dense matrix representation and a graph→adjacency
// converter used to expose deme topologies as index-addressable numeric data.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix implementation with bounds-checked At/Set.
//   - AdjacencyMatrix, built from a core.Graph via BuildAdjacency, with O(1)
//     edge-weight lookups and O(V²) memory.
//   - FloydWarshall all-pairs shortest paths, used internally when a caller
//     requests a metric-closure adjacency.
//
// Matrices are best for dense or small graphs where O(V²) memory and
// O(V² + E) build time are acceptable.
package matrix
