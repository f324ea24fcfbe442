package extensions

import (
	"errors"
	"math"
	"testing"
)

func AssertAreEqual[T comparable](t *testing.T, name string, expected T, actual T) {
	t.Helper()
	if expected != actual {
		t.Fatalf("value mismatch for %s, expected %v, got %v", name, expected, actual)
	}
}

func AssertInDelta(t *testing.T, name string, expected float64, actual float64, delta float64) {
	t.Helper()
	if math.IsNaN(actual) || math.Abs(expected-actual) > delta {
		t.Fatalf("value mismatch for %s, expected %v within %v, got %v", name, expected, delta, actual)
	}
}

func AssertErrorIs(t *testing.T, name string, target error, actual error) {
	t.Helper()
	if !errors.Is(actual, target) {
		t.Fatalf("error mismatch for %s, expected %v, got %v", name, target, actual)
	}
}
