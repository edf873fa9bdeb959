package forward

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// GrowthFunc samples the post-growth population size N_tilde(x,t) for deme x
// at generation t. The core accepts an arbitrary callable here rather than
// an expression-template niche/growth composition (SPEC_FULL.md §9 /
// spec.md §9's "Expression templates for niche/growth composition —
// externalize entirely"); a rate function that needs the current N(x,t)
// (e.g. a logistic expression) closes over its own store.History handle
// rather than receiving n as a parameter, per SPEC_FULL.md §6's external
// interface shape.
type GrowthFunc func(rng *rand.Rand, x string, t int) int

// PoissonGrowth returns a GrowthFunc sampling N_tilde ~ Poisson(rate(x,t)),
// the typical case named in spec.md §4.4 ("a caller-supplied functional,
// typically Poisson around a deterministic logistic expression").
func PoissonGrowth(rate func(x string, t int) float64) GrowthFunc {
	return func(rng *rand.Rand, x string, t int) int {
		lambda := rate(x, t)
		if lambda <= 0 {
			return 0
		}
		dist := distuv.Poisson{Lambda: lambda, Src: rng}
		return int(dist.Rand())
	}
}
