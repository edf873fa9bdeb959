package landscape

import (
	"fmt"

	"github.com/katalvlaran/quetzal/algorithms"
)

// Reachable reports every deme reachable from from, by adapting
// algorithms.BFS as a pre-flight connectivity check. Simulations commonly
// assume the configured landscape is connected (a dispersing population
// should not find itself stranded); callers can use this before starting a
// run to fail fast with a clear error instead of discovering an isolated
// deme mid-simulation via dispersal.ErrEmptyArrivalSpace.
func Reachable(l *Landscape, from string) (map[string]bool, error) {
	result, err := algorithms.BFS(l.g, from, &algorithms.BFSOptions{})
	if err != nil {
		return nil, fmt.Errorf("landscape: Reachable(%s): %w", from, err)
	}
	return result.Visited, nil
}

// IsConnected reports whether every deme in the landscape is reachable from
// an arbitrary starting deme.
func IsConnected(l *Landscape) (bool, error) {
	demes := l.Demes()
	if len(demes) == 0 {
		return true, nil
	}
	visited, err := Reachable(l, demes[0])
	if err != nil {
		return false, err
	}
	return len(visited) == len(demes), nil
}
