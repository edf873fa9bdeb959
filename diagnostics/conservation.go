package diagnostics

import (
	"fmt"

	"github.com/katalvlaran/quetzal/core"
	"github.com/katalvlaran/quetzal/flow"
	"github.com/katalvlaran/quetzal/store"
)

const (
	superSource = "__source__"
	superSink   = "__sink__"
)

// AuditConservation checks size conservation (SPEC_FULL.md §8 property 2)
// for generation t of an already-recorded History: a feasible routing of
// every recorded flow Φ(x→y,t) must be able to simultaneously supply every
// departure deme's total outflow and saturate every arrival deme's recorded
// N(y,t+1). It builds a flow network — a super source feeding each
// departure deme at its total recorded outflow, the recorded flows as
// interior edges, and each arrival deme draining into a super sink at its
// recorded N(y,t+1) — and runs the teacher's Dinic max-flow search over it,
// adapting the same *core.Graph + capacity machinery built for live
// max-flow search into a post-hoc consistency checker.
//
// Returns nil if the max flow saturates both the source and sink sides
// (conservation holds), or a descriptive error identifying the shortfall.
func AuditConservation(h *store.History, t int) error {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	flows := h.Flows()
	outTotal := make(map[string]int64)
	inTotal := make(map[string]int64)

	hasEdges := false
	for k, n := range flows {
		if k.Time != t || n <= 0 {
			continue
		}
		hasEdges = true
		if err := ensureVertex(g, k.From); err != nil {
			return err
		}
		if err := ensureVertex(g, k.To); err != nil {
			return err
		}
		if _, err := g.AddEdge(k.From, k.To, int64(n)); err != nil {
			return fmt.Errorf("diagnostics: AuditConservation(t=%d): %w", t, err)
		}
		outTotal[k.From] += int64(n)
		inTotal[k.To] += int64(n)
	}
	if !hasEdges {
		return nil
	}

	if err := ensureVertex(g, superSource); err != nil {
		return err
	}
	if err := ensureVertex(g, superSink); err != nil {
		return err
	}
	for x, n := range outTotal {
		if _, err := g.AddEdge(superSource, x, n); err != nil {
			return fmt.Errorf("diagnostics: AuditConservation(t=%d): %w", t, err)
		}
	}
	for y := range inTotal {
		n := int64(h.GetSize(y, t+1))
		if _, err := g.AddEdge(y, superSink, n); err != nil {
			return fmt.Errorf("diagnostics: AuditConservation(t=%d): %w", t, err)
		}
	}

	maxFlow, _, err := flow.Dinic(g, superSource, superSink, flow.FlowOptions{})
	if err != nil {
		return fmt.Errorf("diagnostics: AuditConservation(t=%d): %w", t, err)
	}

	expected := 0.0
	for _, n := range outTotal {
		expected += float64(n)
	}
	if maxFlow < expected {
		return fmt.Errorf("diagnostics: AuditConservation(t=%d): max flow %g short of recorded outflow %g, size conservation violated", t, maxFlow, expected)
	}

	sinkExpected := 0.0
	for y := range inTotal {
		sinkExpected += float64(h.GetSize(y, t+1))
	}
	if maxFlow < sinkExpected {
		return fmt.Errorf("diagnostics: AuditConservation(t=%d): max flow %g short of recorded next-generation size %g, size conservation violated", t, maxFlow, sinkExpected)
	}
	return nil
}

func ensureVertex(g *core.Graph, id string) error {
	if g.HasVertex(id) {
		return nil
	}
	return g.AddVertex(id)
}
