package dispersal

// NeighboringMigration builds a MassKernel that computes rates on the fly
// from a per-deme friction function and a caller-supplied neighbor lookup,
// per spec.md §4.2: probability of staying is `1 - emigrantRate`; the
// remaining emigrantRate mass is split across x's neighbors proportional to
// each neighbor's inverse friction.
//
// emigrantRate must be in [0,1]. Friction values are not validated: a
// neighbor whose computed share is not positive (including the NaN that a
// zero friction produces) is dropped before normalization, and
// ErrZeroWeightRow is returned only when a row has no positive weight left.
func NeighboringMigration(demes []string, neighbors func(x string) []string, friction func(deme string) float64, emigrantRate float64) (MassKernel, error) {
	raw := make(map[string]map[string]float64, len(demes))
	for _, x := range demes {
		ns := neighbors(x)
		row := make(map[string]float64, len(ns)+1)

		stay := 1 - emigrantRate
		if stay > 0 {
			row[x] = stay
		}

		invSum := 0.0
		for _, y := range ns {
			invSum += 1 / friction(y)
		}
		if invSum > 0 {
			for _, y := range ns {
				row[y] += emigrantRate * (1 / friction(y)) / invSum
			}
		}

		raw[x] = row
	}
	return NewMassKernel(demes, raw)
}
