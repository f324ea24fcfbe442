package models

import "github.com/guregu/null/v6"

const (
	// DefaultAlpha is the tail probability used when the caller does not pick one,
	// ie 0.05 for the 95% VaR
	DefaultAlpha = 0.05

	// DefaultThresholdPercentile is where the loss tail starts when no explicit
	// threshold is given
	DefaultThresholdPercentile = 95.0
)

// PotSettings configures the peaks over threshold estimator.
// Threshold is a loss level, not a return, so it is usually positive.
// Leave it unset to use the DefaultThresholdPercentile of the sample losses.
type PotSettings struct {
	Alpha     float64
	Threshold null.Float
}

// DefaultPotSettings returns the recognized defaults: alpha of DefaultAlpha
// and the threshold computed from the sample
func DefaultPotSettings() PotSettings {
	return PotSettings{Alpha: DefaultAlpha}
}
