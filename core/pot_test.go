package core

import (
	"math"
	"testing"

	"github.com/guregu/null/v6"

	ex "portrisk/extensions"
	m "portrisk/models"
)

// TestPotVaRDefaultThresholdMatchesExplicit checks that leaving the threshold
// unset is bit for bit identical to passing the 95th percentile loss explicitly
func TestPotVaRDefaultThresholdMatchesExplicit(t *testing.T) {
	returns := generateNormalReturns(t, 1_500)

	defaulted, err := PotVaR(returns, m.DefaultPotSettings())
	if err != nil {
		t.Fatalf("error estimating pot var with default threshold: %v", err)
	}

	losses := ex.Map(returns, func(r float64) float64 { return -r })
	explicit, err := PotVaR(returns, m.PotSettings{
		Alpha:     m.DefaultAlpha,
		Threshold: null.FloatFrom(percentileLinear(losses, m.DefaultThresholdPercentile)),
	})
	if err != nil {
		t.Fatalf("error estimating pot var with explicit threshold: %v", err)
	}

	ex.AssertAreEqual(t, "default vs explicit threshold", explicit, defaulted)
}

func TestPotVaRFiniteAndAboveThreshold(t *testing.T) {
	returns := generateNormalReturns(t, 1_500)
	losses := ex.Map(returns, func(r float64) float64 { return -r })
	threshold := percentileLinear(losses, m.DefaultThresholdPercentile)

	// alpha below the exceedance probability so the inversion lands strictly
	// inside the fitted tail
	got, err := PotVaR(returns, m.PotSettings{Alpha: 0.02})
	if err != nil {
		t.Fatalf("error estimating pot var: %v", err)
	}

	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("pot var should be finite, got %v", got)
	}
	if got <= threshold {
		t.Errorf("pot var at alpha 0.02 should exceed the tail threshold %v, got %v", threshold, got)
	}
}

func TestPotVaRDeterministic(t *testing.T) {
	returns := generateNormalReturns(t, 1_500)

	first, err := PotVaR(returns, m.DefaultPotSettings())
	if err != nil {
		t.Fatalf("error on first call: %v", err)
	}
	second, err := PotVaR(returns, m.DefaultPotSettings())
	if err != nil {
		t.Fatalf("error on second call: %v", err)
	}

	ex.AssertAreEqual(t, "repeated estimate", first, second)
}

func TestPotVaRInsufficientTailData(t *testing.T) {
	returns := generateNormalReturns(t, 200)

	maxLoss := math.Inf(-1)
	for _, r := range returns {
		maxLoss = math.Max(maxLoss, -r)
	}

	_, err := PotVaR(returns, m.PotSettings{
		Alpha:     m.DefaultAlpha,
		Threshold: null.FloatFrom(maxLoss + 1),
	})
	ex.AssertErrorIs(t, "threshold above max loss", m.ErrInsufficientTailData, err)
}

func TestPotVaRInvalidTailProbability(t *testing.T) {
	returns := generateNormalReturns(t, 1_000)
	losses := ex.Map(returns, func(r float64) float64 { return -r })

	// roughly 10% of losses exceed the 90th percentile, so alpha 0.5 asks for
	// a quantile shallower than the threshold
	_, err := PotVaR(returns, m.PotSettings{
		Alpha:     0.5,
		Threshold: null.FloatFrom(percentileLinear(losses, 90)),
	})
	ex.AssertErrorIs(t, "alpha above exceedance probability", m.ErrInvalidTailProbability, err)
}

func TestPotVaRInvalidInput(t *testing.T) {
	_, err := PotVaR(nil, m.DefaultPotSettings())
	ex.AssertErrorIs(t, "empty returns", m.ErrInvalidInput, err)

	for _, alpha := range []float64{0, 1, -0.1, math.NaN()} {
		_, err = PotVaR(fixtureReturns, m.PotSettings{Alpha: alpha})
		ex.AssertErrorIs(t, "out of range alpha", m.ErrInvalidInput, err)
	}
}

// TestPotVaRConcreteSeriesSingleExcess documents the ten point fixture: its
// default 95th percentile threshold (0.0255) leaves exactly one excess, which
// cannot support a likelihood fit
func TestPotVaRConcreteSeriesSingleExcess(t *testing.T) {
	_, err := PotVaR(fixtureReturns, m.DefaultPotSettings())
	ex.AssertErrorIs(t, "single excess fit", m.ErrFitFailure, err)
}

func TestPotVaRWithFitterUsesInjectedFitter(t *testing.T) {
	returns := []float64{-0.02, -0.03, 0.01, 0.005}
	fixed := GeneralizedPareto{Shape: 0, Scale: 0.01}

	// threshold 0.01 leaves losses 0.02 and 0.03 as exceedances, so the
	// exceedance probability is 0.5 and the inversion probability is 0.9
	got, err := PotVaRWithFitter(returns, m.PotSettings{
		Alpha:     0.05,
		Threshold: null.FloatFrom(0.01),
	}, fixedTailFitter{fixed})
	if err != nil {
		t.Fatalf("error estimating pot var with injected fitter: %v", err)
	}

	ex.AssertInDelta(t, "injected fitter estimate", 0.01+fixed.Quantile(0.9), got, 1e-15)
}

type fixedTailFitter struct {
	g GeneralizedPareto
}

func (f fixedTailFitter) FitTail([]float64) (GeneralizedPareto, error) {
	return f.g, nil
}
