package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireBitsEqual fails t unless got and want have the same IEEE-754
// bit pattern. Unlike ==, it distinguishes -0 from +0 and matches NaNs
// bit for bit.
func RequireBitsEqual(t *testing.T, got, want float32) {
	t.Helper()
	if math.Float32bits(got) != math.Float32bits(want) {
		t.Fatalf("got %v (%#08x), want %v (%#08x)",
			got, math.Float32bits(got), want, math.Float32bits(want))
	}
}

// RequireRelativeWithin fails t if |got-want|/|want| exceeds tol.
func RequireRelativeWithin(t *testing.T, got, want float32, tol float64) {
	t.Helper()
	rel := math.Abs(float64(got)-float64(want)) / math.Abs(float64(want))
	if rel > tol {
		t.Fatalf("got %v, want %v (relative error %.3g > tol %.3g)", got, want, rel, tol)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float32) {
	t.Helper()
	for i, v := range data {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxRelDiff returns the largest |a[i]-b[i]|/|b[i]| and its index.
// Returns an error if the slices differ in length.
func MaxRelDiff(a, b []float32) (float64, int, error) {
	if len(a) != len(b) {
		return 0, -1, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff, at := 0.0, -1
	for i := range a {
		d := math.Abs(float64(a[i])-float64(b[i])) / math.Abs(float64(b[i]))
		if d > maxDiff {
			maxDiff, at = d, i
		}
	}
	return maxDiff, at, nil
}
