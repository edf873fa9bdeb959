package coalescence

// Positioned pairs a deme with the payload located there, returned by
// Forest.All for outbound iteration (SPEC_FULL.md §6 "Forest result").
type Positioned struct {
	Deme    string
	Payload any
}

// Forest is the Lineage Forest of spec.md §4.5: a multiset of (deme,
// payload) lineages, bucketed by deme in a map[string][]any since Go has no
// native multimap. Construct it with NewForest: the zero value has a nil map, and Insert on it panics.
type Forest struct {
	lineages map[string][]any
}

// NewForest returns an empty Forest.
func NewForest() *Forest {
	return &Forest{lineages: make(map[string][]any)}
}

// Insert adds one lineage payload at deme x.
func (f *Forest) Insert(x string, payload any) {
	f.lineages[x] = append(f.lineages[x], payload)
}

// InsertAll adds every payload in payloads at deme x.
func (f *Forest) InsertAll(x string, payloads []any) {
	f.lineages[x] = append(f.lineages[x], payloads...)
}

// Positions returns the distinct deme keys currently holding ≥1 lineage, in
// unspecified order.
func (f *Forest) Positions() []string {
	out := make([]string, 0, len(f.lineages))
	for x, v := range f.lineages {
		if len(v) > 0 {
			out = append(out, x)
		}
	}
	return out
}

// RangeAt returns every lineage colocated at x. The returned slice aliases
// Forest's internal storage; callers that mutate it must call SetRangeAt.
func (f *Forest) RangeAt(x string) []any {
	return f.lineages[x]
}

// SetRangeAt replaces the lineages at x wholesale, used by the merger step
// to install the surviving buffer after a merge pass.
func (f *Forest) SetRangeAt(x string, v []any) {
	if len(v) == 0 {
		delete(f.lineages, x)
		return
	}
	f.lineages[x] = v
}

// Erase removes all lineages at x.
func (f *Forest) Erase(x string) {
	delete(f.lineages, x)
}

// Size returns the number of lineages at x.
func (f *Forest) Size(x string) int {
	return len(f.lineages[x])
}

// Len returns the total number of lineages across every deme.
func (f *Forest) Len() int {
	total := 0
	for _, v := range f.lineages {
		total += len(v)
	}
	return total
}

// All returns every (deme, payload) pair, in unspecified order.
func (f *Forest) All() []Positioned {
	out := make([]Positioned, 0, f.Len())
	for x, v := range f.lineages {
		for _, p := range v {
			out = append(out, Positioned{Deme: x, Payload: p})
		}
	}
	return out
}
