package models

import "errors"

// Estimation failures are deterministic: the same inputs always fail the same
// way, so there is nothing to retry. Callers should adjust alpha or the
// threshold and call again.
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrInsufficientTailData   = errors.New("insufficient tail data")
	ErrInvalidTailProbability = errors.New("invalid tail probability")
	ErrFitFailure             = errors.New("fit failure")
)
