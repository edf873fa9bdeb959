package diagnostics

import "github.com/katalvlaran/quetzal/dtw"

// TrajectoryDistance compares two demographic size trajectories — e.g. two
// replicate runs, or a replicate against an observed series — via Dynamic
// Time Warping, adapting dtw.DTW to this domain's size-trajectory shape
// instead of the teacher's generic float64 sequences.
func TrajectoryDistance(a, b []int, window int) (float64, error) {
	af := toFloat64(a)
	bf := toFloat64(b)

	opts := dtw.DefaultOptions()
	opts.Window = window

	dist, _, err := dtw.DTW(af, bf, &opts)
	if err != nil {
		return 0, err
	}
	return dist, nil
}

func toFloat64(v []int) []float64 {
	out := make([]float64, len(v))
	for i, n := range v {
		out[i] = float64(n)
	}
	return out
}
