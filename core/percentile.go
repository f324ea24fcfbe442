package core

import (
	"math"
	"slices"
)

// percentileLinear computes the p-th percentile (p in 0..100) with linear
// interpolation between the closest ranks. gonum's stat.Quantile cumulant
// kinds interpolate on a different rank convention at the sample endpoints,
// so the interpolation is written out directly.
func percentileLinear(xs []float64, p float64) float64 {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}

	frac := rank - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
