// Package flow implements Dinic's maximum-flow algorithm on graphs
// represented by *core.Graph. It computes the maximum feasible flow from a
// source to a sink in a network, supporting directed and mixed-edge graphs
// with weights, parallel edges, and loops.
//
//   - Dinic
//
//   - Method: level graph construction + blocking-flow via DFS.
//
//   - Time:   O(E * sqrt(V)) on unit-capacity networks (general networks often near O(E*sqrt(V))).
//
//   - Memory: O(V + E) for level map, adjacency slices, and recursion state.
//
//   - High practical performance on dense or high-capacity graphs; diagnostics
//     uses it to audit that a generation's recorded migration flows can be
//     routed consistently with the recorded deme sizes (size conservation).
//
// # Graph Support
//
// Dinic operates on *core.Graph, respecting its configuration flags:
//
//	- Directed or undirected edges (with per-edge mixed direction support).
//	- Weighted edges (capacity values).
//	- Optional multi-edges (parallel edges aggregated).
//	- Optional loops (ignored for augmenting-path search).
//
// Capacities are represented as int64, but an initial Epsilon threshold
// (float64) allows filtering very small weights when aggregating parallel edges.
//
// # API
//
// FlowOptions configures the algorithm:
//
//	type FlowOptions struct {
//	    Ctx                  context.Context // for cancellation / timeouts
//	    Epsilon              float64         // ignore capacities <= Epsilon during build
//	    Verbose              bool            // log each augmentation step
//	    LevelRebuildInterval int             // rebuild level graph every N pushes
//	}
//
// Use DefaultOptions() to obtain production-safe defaults:
//
//	opts := flow.DefaultOptions()
//
//	func Dinic(
//	    g *core.Graph,
//	    source, sink string,
//	    opts FlowOptions,
//	) (maxFlow float64, residual *core.Graph, err error)
//
// Dinic returns the computed maximum flow value and a residual graph that
// preserves all original configuration flags (directedness, weighting,
// loops, multi-edges, mixed-edges). The residual graph's edges correspond
// to remaining forward capacity and newly created reverse edges.
//
// # Errors
//
//	ErrSourceNotFound - if the source vertex is missing in the input graph.
//	ErrSinkNotFound   - if the sink vertex is missing.
//	EdgeError         - if a negative capacity (beyond Epsilon) is encountered.
//	context.Canceled / context.DeadlineExceeded - if opts.Ctx is canceled.
package flow
