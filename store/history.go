package store

import (
	"fmt"
)

// flowKey identifies one recorded directed flow Φ(x→y,t).
type flowKey struct {
	x, y string
	t    int
}

// FlowKey identifies one recorded directed flow Φ(x→y,t) for read-only export
// via Flows.
type FlowKey struct {
	From, To string
	Time     int
}

// History is the Spatial-Temporal Value Store of SPEC_FULL.md §4.1. The zero
// value is not usable; construct with NewHistory.
//
// History is single-threaded per replicate, matching SPEC_FULL.md §5: no
// internal locking is performed.
type History struct {
	sizes map[string]map[int]int // deme -> generation -> N(x,t)

	// flows holds the forward index Φ(x→y,t), keyed by departure deme.
	flows map[flowKey]int

	// inverse holds, for each (y,t), the set of source demes with positive
	// flow into y at generation t — the index the Backward Driver queries.
	inverse map[string]map[int]map[string]int

	massLoss map[int]float64 // generation -> total mass lost to flooring

	firstTime int
	lastTime  int
	hasTime   bool
}

// NewHistory constructs an empty History seeded at generation t0.
func NewHistory(t0 int) *History {
	return &History{
		sizes:     make(map[string]map[int]int),
		flows:     make(map[flowKey]int),
		inverse:   make(map[string]map[int]map[string]int),
		massLoss:  make(map[int]float64),
		firstTime: t0,
		lastTime:  t0,
		hasTime:   true,
	}
}

// SetSize sets N(x,t) := n. n must be non-negative.
func (h *History) SetSize(x string, t int, n int) error {
	if n < 0 {
		return fmt.Errorf("store: SetSize(%s,%d,%d): %w", x, t, n, ErrNegativeValue)
	}
	gens, ok := h.sizes[x]
	if !ok {
		gens = make(map[int]int)
		h.sizes[x] = gens
	}
	gens[t] = n
	h.observeTime(t)
	return nil
}

// AddSize increments N(x,t) by delta (delta may be negative as long as the
// running total stays non-negative; the Forward Engine uses this to
// accumulate immigration from multiple source demes into t+1).
func (h *History) AddSize(x string, t int, delta int) error {
	cur := h.GetSize(x, t)
	return h.SetSize(x, t, cur+delta)
}

// GetSize returns N(x,t), or 0 if no entry was ever written.
func (h *History) GetSize(x string, t int) int {
	gens, ok := h.sizes[x]
	if !ok {
		return 0
	}
	return gens[t]
}

// AddFlow atomically increments Φ(x→y,t) by delta and updates the inverse
// index under (y,t) -> {x: Φ}. delta must be non-negative.
func (h *History) AddFlow(x, y string, t int, delta int) error {
	if delta < 0 {
		return fmt.Errorf("store: AddFlow(%s->%s,%d,%d): %w", x, y, t, delta, ErrNegativeValue)
	}
	if delta == 0 {
		return nil
	}
	key := flowKey{x: x, y: y, t: t}
	h.flows[key] += delta

	byTime, ok := h.inverse[y]
	if !ok {
		byTime = make(map[int]map[string]int)
		h.inverse[y] = byTime
	}
	bySource, ok := byTime[t]
	if !ok {
		bySource = make(map[string]int)
		byTime[t] = bySource
	}
	bySource[x] += delta

	h.observeTime(t)
	return nil
}

// SetFlow raises Φ(x→y,t) to n (used by the mass-based dispersal strategy,
// which computes an absolute flow rather than an incremental one). It adds
// n minus the current flow through AddFlow, so an n below the current flow
// returns ErrNegativeValue and leaves the flow unchanged.
func (h *History) SetFlow(x, y string, t int, n int) error {
	cur := h.flows[flowKey{x: x, y: y, t: t}]
	return h.AddFlow(x, y, t, n-cur)
}

// FlowInto returns the exact pre-image support of y at generation t: every
// source deme with positive recorded flow, and the flow amount. Returns
// ErrNoSuchFlow if nothing was ever recorded into (y,t).
func (h *History) FlowInto(y string, t int) (map[string]int, error) {
	byTime, ok := h.inverse[y]
	if !ok {
		return nil, fmt.Errorf("store: FlowInto(%s,%d): %w", y, t, ErrNoSuchFlow)
	}
	bySource, ok := byTime[t]
	if !ok || len(bySource) == 0 {
		return nil, fmt.Errorf("store: FlowInto(%s,%d): %w", y, t, ErrNoSuchFlow)
	}
	out := make(map[string]int, len(bySource))
	for x, n := range bySource {
		out[x] = n
	}
	return out, nil
}

// DemesWithPositiveSize enumerates {x : N(x,t) > 0} in unspecified order.
func (h *History) DemesWithPositiveSize(t int) []string {
	var out []string
	for x, gens := range h.sizes {
		if gens[t] > 0 {
			out = append(out, x)
		}
	}
	return out
}

// FirstTime returns the earliest recorded generation.
func (h *History) FirstTime() int { return h.firstTime }

// LastTime returns the latest recorded generation.
func (h *History) LastTime() int { return h.lastTime }

// observeTime widens [firstTime,lastTime] to include t.
func (h *History) observeTime(t int) {
	if !h.hasTime {
		h.firstTime, h.lastTime, h.hasTime = t, t, true
		return
	}
	if t < h.firstTime {
		h.firstTime = t
	}
	if t > h.lastTime {
		h.lastTime = t
	}
}

// AddMassLoss records mass discarded to integer flooring in the mass-based
// dispersal strategy during generation t (SPEC_FULL.md §9, resolving the
// "does rounding loss matter" open question by making it observable).
func (h *History) AddMassLoss(t int, lost float64) {
	if lost <= 0 {
		return
	}
	h.massLoss[t] += lost
}

// MassLossAt reports the total mass lost to flooring during generation t.
func (h *History) MassLossAt(t int) float64 {
	return h.massLoss[t]
}

// Sizes returns a read-only deep copy of the full size table, for diagnostic
// or export use outside the hot simulation path.
func (h *History) Sizes() map[string]map[int]int {
	out := make(map[string]map[int]int, len(h.sizes))
	for x, gens := range h.sizes {
		cp := make(map[int]int, len(gens))
		for t, n := range gens {
			cp[t] = n
		}
		out[x] = cp
	}
	return out
}

// Flows returns a read-only copy of the full flow table, keyed by (x,y,t).
func (h *History) Flows() map[FlowKey]int {
	out := make(map[FlowKey]int, len(h.flows))
	for k, n := range h.flows {
		out[FlowKey{From: k.x, To: k.y, Time: k.t}] = n
	}
	return out
}
