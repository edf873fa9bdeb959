package forward

import (
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/quetzal/dispersal"
	"github.com/katalvlaran/quetzal/store"
)

// Expand drives h forward by generations steps using growth and kernel,
// implementing spec.md §4.4 step by step: for every deme with positive size
// at the current generation, sample a post-growth size, then disperse it
// according to the kernel's capability (individual-based or mass-based).
//
// Per-deme visitation order is sorted by deme id so that, for a fixed rng
// stream and kernel, total emission counts are deterministic across runs
// (spec.md §4.4's ordering note); cross-deme immigration into t+1 is only
// read once every departure at t has been processed, since AddSize/AddFlow
// simply accumulate and History itself has no cross-generation aliasing.
func Expand(h *store.History, generations int, growth GrowthFunc, kernel dispersal.Kernel, rng *rand.Rand) error {
	individual, isIndividual := kernel.(dispersal.IndividualBased)
	mass, isMass := kernel.(dispersal.MassBased)
	if !isIndividual && !isMass {
		return ErrUnsupportedKernel
	}

	t := h.LastTime()
	for g := 0; g < generations; g++ {
		demes := h.DemesWithPositiveSize(t)
		sort.Strings(demes)

		totalEmitted := 0
		for _, x := range demes {
			nTilde := growth(rng, x, t)
			if nTilde == 0 {
				continue
			}
			totalEmitted += nTilde

			switch {
			case isIndividual:
				if err := disperseIndividual(h, individual, rng, x, t, nTilde); err != nil {
					return err
				}
			case isMass:
				if err := disperseMass(h, mass, x, t, nTilde); err != nil {
					return err
				}
			}
		}

		if totalEmitted == 0 {
			return ErrExtinctedBeforeSampling
		}
		t++
	}
	return nil
}

func disperseIndividual(h *store.History, k dispersal.IndividualBased, rng *rand.Rand, x string, t int, nTilde int) error {
	for i := 0; i < nTilde; i++ {
		y, err := k.SampleArrival(rng, x)
		if err != nil {
			return err
		}
		if err := h.AddFlow(x, y, t, 1); err != nil {
			return err
		}
		if err := h.AddSize(y, t+1, 1); err != nil {
			return err
		}
	}
	return nil
}

func disperseMass(h *store.History, k dispersal.MassBased, x string, t int, nTilde int) error {
	arrivals := k.ArrivalSpace(x)
	if len(arrivals) == 0 {
		return dispersal.ErrEmptyArrivalSpace
	}

	emittedMass := float64(nTilde)
	for _, y := range arrivals {
		exact := k.Rate(x, y) * emittedMass
		nM := int(math.Floor(exact))
		if nM < 0 {
			nM = 0
		}
		h.AddMassLoss(t, exact-float64(nM))

		if err := h.SetFlow(x, y, t, nM); err != nil {
			return err
		}
		if err := h.AddSize(y, t+1, nM); err != nil {
			return err
		}
	}
	return nil
}
