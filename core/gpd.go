package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"

	ex "portrisk/extensions"
	m "portrisk/models"
)

// a single excess pins the scale to zero and the likelihood is unbounded, so
// two is the floor for a fit to mean anything
const minExcessesForFit = 2

// GeneralizedPareto is the two parameter GPD with its location fixed at zero,
// shaped like the value-type distributions in gonum's distuv package.
// The support is [0, +Inf) for Shape >= 0 and [0, -Scale/Shape] for Shape < 0.
type GeneralizedPareto struct {
	Shape float64
	Scale float64
}

// CDF returns the cumulative probability at x
func (g GeneralizedPareto) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}

	if g.Shape == 0 {
		return 1 - math.Exp(-x/g.Scale)
	}

	z := 1 + g.Shape*x/g.Scale
	if z <= 0 { // past the upper endpoint when Shape < 0
		return 1
	}

	return 1 - math.Pow(z, -1/g.Shape)
}

// Quantile returns the inverse CDF at probability p.
// Quantile panics if p is outside [0, 1], matching distuv behavior.
func (g GeneralizedPareto) Quantile(p float64) float64 {
	if p < 0 || p > 1 {
		panic("core: gpd quantile probability out of bounds")
	}

	if g.Shape == 0 {
		return -g.Scale * math.Log(1-p)
	}

	return g.Scale / g.Shape * (math.Pow(1-p, -g.Shape) - 1)
}

// LogProb returns the log of the density at x, -Inf outside the support
func (g GeneralizedPareto) LogProb(x float64) float64 {
	if x < 0 {
		return math.Inf(-1)
	}

	if g.Shape == 0 {
		return -math.Log(g.Scale) - x/g.Scale
	}

	z := 1 + g.Shape*x/g.Scale
	if z <= 0 {
		return math.Inf(-1)
	}

	return -math.Log(g.Scale) - (1+1/g.Shape)*math.Log(z)
}

// NumParameters returns the number of parameters of the distribution
func (g GeneralizedPareto) NumParameters() int {
	return 2
}

// FitGeneralizedPareto estimates shape and scale by maximum likelihood with
// the location held at zero. The search runs over (shape, log scale) so the
// scale stays positive, starting from the method of moments estimate.
// Degenerate excess sets and optimizer failures surface as ErrFitFailure.
func FitGeneralizedPareto(excesses []float64) (GeneralizedPareto, error) {
	if len(excesses) < minExcessesForFit {
		return GeneralizedPareto{}, fmt.Errorf("%w: need at least %d excesses to fit a gpd, got %d", m.ErrFitFailure, minExcessesForFit, len(excesses))
	}

	if ex.AreAllEqual(excesses) {
		return GeneralizedPareto{}, fmt.Errorf("%w: all %d excesses equal %v, gpd likelihood is unbounded", m.ErrFitFailure, len(excesses), excesses[0])
	}

	// method of moments start: mean = s/(1-c), variance = s^2/((1-c)^2 (1-2c))
	mean := stat.Mean(excesses, nil)
	variance := stat.PopVariance(excesses, nil)
	shape0 := 0.5 * (1 - mean*mean/variance)
	scale0 := mean * (1 - shape0)
	if scale0 <= 0 {
		scale0 = mean
	}

	problem := optimize.Problem{
		Func: func(params []float64) float64 {
			candidate := GeneralizedPareto{Shape: params[0], Scale: math.Exp(params[1])}
			return -ex.Sum(ex.Map(excesses, candidate.LogProb))
		},
	}

	result, err := optimize.Minimize(problem, []float64{shape0, math.Log(scale0)}, nil, &optimize.NelderMead{})
	if err != nil {
		return GeneralizedPareto{}, fmt.Errorf("%w: gpd optimizer did not converge: %v", m.ErrFitFailure, err)
	}

	fitted := GeneralizedPareto{Shape: result.X[0], Scale: math.Exp(result.X[1])}
	if !finiteParameters(fitted) || math.IsNaN(result.F) || math.IsInf(result.F, 0) {
		return GeneralizedPareto{}, fmt.Errorf("%w: gpd fit produced non finite parameters (shape %v, scale %v)", m.ErrFitFailure, fitted.Shape, fitted.Scale)
	}

	return fitted, nil
}

func finiteParameters(g GeneralizedPareto) bool {
	finite := func(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
	return finite(g.Shape) && finite(g.Scale) && g.Scale > 0
}
