// Package builder provides reusable "functional-options"-style building
// blocks for constructing core.Graph topologies. landscape uses Grid to lay
// out a deme grid, and matrix's fixtures use Complete for test graphs; both
// compose through the single BuildGraph entry-point.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID-scheme, weight function, etc.
//   - Vertex-ID schemes (IDFn implementations):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – SymbolIDFn:        single letters ("A","B",…).
//     – ExcelColumnIDFn:   Excel-style columns ("A","Z","AA",…).
//     – AlphanumericIDFn:  base-36 strings ("0"…"z","10",…).
//     – HexIDFn:           lowercase hexadecimal ("0","a","ff",…).
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform ∼U[min,max].
//     – NormalWeightFn:    Gaussian ∼N(mean,stddev), clipped.
//     – ExponentialWeightFn: exponential ∼Exp(rate).
//   - Topology factories:
//     – Grid(rows, cols):  4-neighborhood orthogonal grid, IDs "r,c".
//     – Complete(n):       complete simple graph K_n.
//
// Guarantees:
//
//   - Vertices are added idempotently; edges are not: re-running the same builder
//     on g fails with the AddEdge error on a simple graph and adds parallel edges
//     on a multigraph.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Structured runtime errors wrapping the constructor name for easy filtering.
//   - Documented algorithmic complexity (O(n), O(n²), O(V+E), etc.) per constructor.
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
