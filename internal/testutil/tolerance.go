// Package testutil provides tolerance helpers for coordinate-sequence tests.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequirePointsNearlyEqual fails t if the XY point lists differ in length or
// any point pair exceeds eps on either axis.
func RequirePointsNearlyEqual(t *testing.T, gotX, gotY, wantX, wantY []float64, eps float64) {
	t.Helper()
	if len(gotX) != len(gotY) {
		t.Fatalf("got x/y length mismatch: %d vs %d", len(gotX), len(gotY))
	}
	if len(gotX) != len(wantX) || len(gotY) != len(wantY) {
		t.Fatalf("length mismatch: got %d points, want %d", len(gotX), len(wantX))
	}
	for i := range gotX {
		dx := math.Abs(gotX[i] - wantX[i])
		dy := math.Abs(gotY[i] - wantY[i])
		if dx > eps || dy > eps {
			t.Fatalf("point %d: got (%v, %v), want (%v, %v), eps %v",
				i, gotX[i], gotY[i], wantX[i], wantY[i], eps)
		}
	}
}

// ContainsPoint reports whether the XY point list holds a point within eps
// of (x, y) on both axes.
func ContainsPoint(xs, ys []float64, x, y, eps float64) bool {
	for i := range xs {
		if math.Abs(xs[i]-x) <= eps && math.Abs(ys[i]-y) <= eps {
			return true
		}
	}
	return false
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Panics are avoided; mismatched lengths report +Inf.
func MaxAbsDiff(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	maxDiff := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}
