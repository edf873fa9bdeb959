// SPDX-License-Identifier: MIT
// Package matrix - public API facade.
//
// Purpose:
//   - Provide a thin, well-documented entry point for building a dense adjacency
//     view of a core.Graph. Everything else the teacher's matrix package once
//     exposed (generic linear algebra, incidence matrices, statistics) has no
//     caller in this module and was trimmed; see the adjacency/metric-closure
//     machinery in impl_adjacency.go and impl_floydwarshall.go for what remains.

package matrix

import (
	"github.com/katalvlaran/quetzal/core"
)

// BuildAdjacency constructs a deterministic adjacency matrix from a core.Graph.
// Thin alias to NewAdjacencyMatrix; exposed in API to improve discoverability.
// Notes: An empty graph (0 vertices) is rejected with ErrInvalidDimensions.
// AI-Hints: Pass Options that match your graph semantics (directed/loops/multi/weighted).
func BuildAdjacency(g *core.Graph, opts Options) (*AdjacencyMatrix, error) {
	return NewAdjacencyMatrix(g, opts)
}
