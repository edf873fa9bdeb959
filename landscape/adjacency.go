package landscape

import (
	"fmt"

	"github.com/katalvlaran/quetzal/matrix"
)

// AdjacencyMatrix builds a dense adjacency matrix view of the landscape,
// adapting matrix.BuildAdjacency. Useful when a caller needs a
// deme-index-addressable numeric matrix instead of deme-id lookups — e.g.
// exporting the landscape topology for spectral analysis elsewhere, or
// seeding a dispersal.MassKernel's raw weight map from degree-normalized
// adjacency.
func (l *Landscape) AdjacencyMatrix() (*matrix.AdjacencyMatrix, error) {
	am, err := matrix.BuildAdjacency(l.g, matrix.NewMatrixOptions())
	if err != nil {
		return nil, fmt.Errorf("landscape: AdjacencyMatrix: %w", err)
	}
	return am, nil
}
