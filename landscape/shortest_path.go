package landscape

import (
	"fmt"

	"github.com/katalvlaran/quetzal/algorithms"
	"github.com/katalvlaran/quetzal/dijkstra"
)

// ShortestPath adapts dijkstra.Dijkstra to supply a distance-based pairwise
// weight function for landscapes that do not specify one directly: a caller
// may use DistanceWeight(dist) as the pairwise_weight functional of
// SPEC_FULL.md §6 for a landscape built without explicit edge weights but
// whose topology alone should determine dispersal cost. On an unweighted
// landscape the distance is the hop count found by breadth-first search,
// and unreachable demes are absent from the returned map.
func ShortestPath(l *Landscape, from string) (map[string]int64, error) {
	if !l.weighted {
		res, err := algorithms.BFS(l.g, from, nil)
		if err != nil {
			return nil, fmt.Errorf("landscape: ShortestPath(%s): %w", from, err)
		}
		hops := make(map[string]int64, len(res.Depth))
		for id, d := range res.Depth {
			hops[id] = int64(d)
		}
		return hops, nil
	}
	dist, _, err := dijkstra.Dijkstra(l.g, dijkstra.Source(from))
	if err != nil {
		return nil, fmt.Errorf("landscape: ShortestPath(%s): %w", from, err)
	}
	return dist, nil
}

// DistanceWeight returns a pairwise-weight functional that derives weight
// from shortest-path distance on the given landscape: closer demes weigh
// more, matching the inverse relationship a dispersal kernel expects between
// distance and migration probability. dist is precomputed via ShortestPath
// for some origin deme so repeated lookups avoid recomputing Dijkstra.
func DistanceWeight(dist map[string]int64) func(y string) float64 {
	return func(y string) float64 {
		d, ok := dist[y]
		if !ok || d <= 0 {
			return 0
		}
		return 1 / float64(d)
	}
}
