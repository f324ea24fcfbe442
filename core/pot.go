package core

import (
	"fmt"

	ex "portrisk/extensions"
	m "portrisk/models"
)

// TailFitter fits a zero-location generalized Pareto distribution to the
// excesses over a loss threshold. It exists so the estimator does not care
// which solver produced the parameters.
type TailFitter interface {
	FitTail(excesses []float64) (GeneralizedPareto, error)
}

// MLETailFitter fits by maximum likelihood via FitGeneralizedPareto
type MLETailFitter struct{}

func (MLETailFitter) FitTail(excesses []float64) (GeneralizedPareto, error) {
	return FitGeneralizedPareto(excesses)
}

// PotVaR estimates value at risk with the peaks over threshold method:
// losses exceeding the threshold are modeled with a generalized Pareto
// distribution fitted by maximum likelihood, and the fitted tail is inverted
// at the requested probability.
//
// settings.Alpha is the tail probability, e.g. 0.05 for the 95% VaR. When
// settings.Threshold is unset the 95th linear-interpolation percentile of the
// losses is used. Losses exactly equal to the threshold are not excesses.
// The result is a loss magnitude: positive means a loss at the given
// confidence level.
func PotVaR(returns []float64, settings m.PotSettings) (float64, error) {
	return PotVaRWithFitter(returns, settings, MLETailFitter{})
}

// PotVaRWithFitter is PotVaR with the tail fitter supplied by the caller
func PotVaRWithFitter(returns []float64, settings m.PotSettings, fitter TailFitter) (float64, error) {
	if len(returns) == 0 {
		return 0, fmt.Errorf("%w: returns must not be empty", m.ErrInvalidInput)
	}

	if err := validateAlpha(settings.Alpha); err != nil {
		return 0, err
	}

	losses := ex.Map(returns, func(r float64) float64 { return -r })

	threshold := settings.Threshold.Float64
	if !settings.Threshold.Valid {
		threshold = percentileLinear(losses, m.DefaultThresholdPercentile)
	}

	exceedances := ex.FilterMultiple(losses, func(loss float64) bool { return loss > threshold })
	if len(exceedances) == 0 {
		return 0, fmt.Errorf("%w: no losses exceed threshold %v", m.ErrInsufficientTailData, threshold)
	}
	excesses := ex.Map(exceedances, func(loss float64) float64 { return loss - threshold })

	fitted, err := fitter.FitTail(excesses)
	if err != nil {
		return 0, err
	}

	// invert the tail: P(loss > x) = probExceed * (1 - F(x - threshold)),
	// solved for P(loss > x) = alpha
	probExceed := float64(len(excesses)) / float64(len(losses))
	p := 1 - settings.Alpha/probExceed
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: inversion probability %v outside [0, 1] (alpha %v, exceedance probability %v)",
			m.ErrInvalidTailProbability, p, settings.Alpha, probExceed)
	}

	return threshold + fitted.Quantile(p), nil
}
