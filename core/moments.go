package core

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// sampleMoments holds the first four standardized sample moments, all with
// population (divide by N) denominators
type sampleMoments struct {
	Mean   float64
	Sigma  float64
	Skew   float64
	ExKurt float64
}

// populationMoments computes the moments a quantile expansion works from.
// A zero sigma (constant sample) makes the standardized third and fourth
// moments 0/0; they are defined as 0 here so downstream formulas collapse to
// the plain normal quantile instead of producing NaN
func populationMoments(xs []float64) sampleMoments {
	moments := sampleMoments{
		Mean:  stat.Mean(xs, nil),
		Sigma: stat.PopStdDev(xs, nil),
	}

	if moments.Sigma == 0 {
		return moments
	}

	moments.Skew = stat.Moment(3, xs, nil) / math.Pow(moments.Sigma, 3)
	moments.ExKurt = stat.Moment(4, xs, nil)/math.Pow(moments.Sigma, 4) - 3

	return moments
}
