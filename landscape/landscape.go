package landscape

import (
	"fmt"

	"github.com/katalvlaran/quetzal/builder"
	"github.com/katalvlaran/quetzal/core"
	"github.com/katalvlaran/quetzal/gridgraph"
)

// Landscape is a deme-oriented facade over a *core.Graph. Demes are vertices;
// pairwise weight is edge weight. A Landscape never stores population sizes
// or flows — see package store for that.
type Landscape struct {
	g        *core.Graph
	rows     int
	cols     int
	conn     gridgraph.Connectivity
	weighted bool
}

// diagonalOffsets are the four additional neighbor offsets Conn8 adds over Conn4.
var diagonalOffsets = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// NewGrid builds a rows×cols orthogonal grid landscape with deme IDs in the
// row-major "r,c" scheme (grounded on builder.Grid's gridIDFmt convention).
// conn selects 4- or 8-neighbor connectivity; weighted enables edge weights
// (required before PairwiseWeight can be used).
func NewGrid(rows, cols int, conn gridgraph.Connectivity, weighted bool) (*Landscape, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	gopts := []core.GraphOption{core.WithMultiEdges()}
	if weighted {
		gopts = append(gopts, core.WithWeighted())
	}

	g, err := builder.BuildGraph(gopts, nil, builder.Grid(rows, cols))
	if err != nil {
		return nil, fmt.Errorf("landscape: NewGrid: %w", err)
	}

	l := &Landscape{g: g, rows: rows, cols: cols, conn: conn, weighted: weighted}

	if conn == gridgraph.Conn8 {
		if err := l.addDiagonals(); err != nil {
			return nil, fmt.Errorf("landscape: NewGrid: %w", err)
		}
	}

	return l, nil
}

// addDiagonals connects each cell to its 4 diagonal neighbors, completing an
// 8-connected grid on top of the 4-connected base built by builder.Grid.
func (l *Landscape) addDiagonals() error {
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			u := cellID(r, c)
			for _, off := range diagonalOffsets {
				nr, nc := r+off[0], c+off[1]
				if nr < 0 || nr >= l.rows || nc < 0 || nc >= l.cols {
					continue
				}
				// Emit each diagonal pair once (nr,nc) lexicographically after (r,c),
				// relying on the undirected graph to expose both directions.
				if nr < r || (nr == r && nc < c) {
					continue
				}
				v := cellID(nr, nc)
				if _, err := l.g.AddEdge(u, v, 0); err != nil {
					return fmt.Errorf("addDiagonals(%s→%s): %w", u, v, err)
				}
			}
		}
	}
	return nil
}

func cellID(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }

// FromGraph wraps an already-built *core.Graph as a Landscape, for callers
// who construct their topology directly (e.g. via builder constructors other
// than Grid, or a hand-assembled core.Graph).
func FromGraph(g *core.Graph) *Landscape {
	return &Landscape{g: g, weighted: g.Weighted()}
}

// Graph returns the underlying *core.Graph, for diagnostics that need to
// operate on graph vocabulary directly (see package diagnostics).
func (l *Landscape) Graph() *core.Graph { return l.g }

// Demes returns every deme id known to the landscape, in unspecified order.
func (l *Landscape) Demes() []string {
	return l.g.Vertices()
}

// Neighbors returns the demes directly reachable from x.
func (l *Landscape) Neighbors(x string) ([]string, error) {
	ids, err := l.g.NeighborIDs(x)
	if err != nil {
		return nil, fmt.Errorf("landscape: Neighbors(%s): %w", x, ErrUnknownDeme)
	}
	return ids, nil
}

// PairwiseWeight returns the edge weight between x and y. Returns
// ErrUnweighted if the landscape was built without weights.
func (l *Landscape) PairwiseWeight(x, y string) (float64, error) {
	if !l.weighted {
		return 0, ErrUnweighted
	}
	edges, err := l.g.Neighbors(x)
	if err != nil {
		return 0, fmt.Errorf("landscape: PairwiseWeight(%s,%s): %w", x, y, ErrUnknownDeme)
	}
	for _, e := range edges {
		if e.To == y || (!e.Directed && e.From == y) {
			return float64(e.Weight), nil
		}
	}
	return 0, nil
}
