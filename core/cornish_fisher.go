package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	m "portrisk/models"
)

// CornishFisherVaR estimates value at risk by adjusting the standard normal
// quantile with the sample's skewness and excess kurtosis.
//
// alpha is the tail probability, e.g. 0.05 for the 95% VaR. Moments use
// population (divide by N) denominators. The result is a loss magnitude:
// positive means a loss at the given confidence level. For a constant sample
// the moments degenerate and the result is the negated constant.
func CornishFisherVaR(returns []float64, alpha float64) (float64, error) {
	if len(returns) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 returns to estimate deviation, got %d", m.ErrInvalidInput, len(returns))
	}

	if err := validateAlpha(alpha); err != nil {
		return 0, err
	}

	moments := populationMoments(returns)

	z := distuv.UnitNormal.Quantile(alpha)
	zCF := z +
		(z*z-1)*moments.Skew/6 +
		(z*z*z-3*z)*moments.ExKurt/24 -
		(2*z*z*z-5*z)*moments.Skew*moments.Skew/36

	return -(moments.Mean + zCF*moments.Sigma), nil
}

// CornishFisherVaRDefault runs CornishFisherVaR at the default tail probability
func CornishFisherVaRDefault(returns []float64) (float64, error) {
	return CornishFisherVaR(returns, m.DefaultAlpha)
}

func validateAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("%w: alpha must be in (0, 1), got %v", m.ErrInvalidInput, alpha)
	}
	return nil
}
