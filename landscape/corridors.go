package landscape

import (
	"fmt"

	"github.com/katalvlaran/quetzal/core"
	"github.com/katalvlaran/quetzal/prim_kruskal"
)

// MinimalCorridors reports the minimum-weight connectivity backbone of a
// weighted, undirected landscape: a diagnostic adapting prim_kruskal.Kruskal
// to answer "which dispersal corridors are structurally essential to keep
// the landscape connected". It does not participate in any simulation
// itself; it is a tool for inspecting a configured Landscape before use.
func MinimalCorridors(l *Landscape) ([]core.Edge, int64, error) {
	edges, total, err := prim_kruskal.Kruskal(l.g)
	if err != nil {
		return nil, 0, fmt.Errorf("landscape: MinimalCorridors: %w", err)
	}
	return edges, total, nil
}
