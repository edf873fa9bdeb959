// Package prim_kruskal computes the Minimum Spanning Tree (MST) of an
// undirected, weighted *core.Graph via Kruskal's algorithm.
//
// What & Why
//
//   - Given an undirected, connected, weighted graph G = (V, E), an MST is a
//     subset T ⊆ E such that T connects all vertices in V and the sum of
//     weights of edges in T is minimized.
//   - landscape.MinimalCorridors adapts Kruskal to find the minimal set of
//     deme-to-deme corridors that keeps a dispersal landscape connected.
//
// Algorithm
//
//   - Kruskal(g *core.Graph) ([]core.Edge, int64, error)
//     Sort all edges by weight, then iterate from smallest to largest, using
//     a disjoint-set (union-find) structure to merge vertices component by
//     component and skip edges whose endpoints are already connected. Stops
//     once |V|-1 edges have been added.
//   - Time: O(E log E + α(V)·E) ≈ O(E log V). Space: O(V + E).
//   - graph.Edges() returns edges in ascending ID order; the sort by weight
//     is stable, so ties break predictably.
//
// Error Conditions
//
//   - ErrInvalidGraph: graph is nil, directed, unweighted, or has mixed-mode
//     per-edge directed overrides.
//   - ErrDisconnected: |V| == 0, or |V| > 1 but the graph is not fully
//     connected (no spanning tree can cover all vertices).
package prim_kruskal
