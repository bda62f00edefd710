// Package pattern generates and validates 2D coordinate sequences for
// XY-mode oscilloscope display.
package pattern

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
)

// Sequence is an ordered pair of equal-length coordinate slices. Values are
// nominally in [-1, 1]; the index doubles as a discrete time axis. Pipeline
// stages consume a sequence and produce a new owned one.
type Sequence struct {
	X []float64
	Y []float64
}

// NewSequence allocates a zeroed sequence of n points.
func NewSequence(n int) Sequence {
	return Sequence{
		X: make([]float64, n),
		Y: make([]float64, n),
	}
}

// FromSlices validates externally supplied points and wraps them without
// copying. This is the pass-through boundary for freehand and imported
// patterns.
func FromSlices(x, y []float64) (Sequence, error) {
	if len(x) == 0 || len(y) == 0 {
		return Sequence{}, core.ErrEmptySequence
	}
	if len(x) != len(y) {
		return Sequence{}, core.InvalidParamf("sequence x/y length mismatch: %d != %d", len(x), len(y))
	}
	for i := range x {
		if !isFinite(x[i]) || !isFinite(y[i]) {
			return Sequence{}, core.InvalidParamf("sequence value at index %d is not finite", i)
		}
	}
	return Sequence{X: x, Y: y}, nil
}

// Len returns the number of points.
func (s Sequence) Len() int {
	return len(s.X)
}

// Clone returns a deep copy.
func (s Sequence) Clone() Sequence {
	out := NewSequence(s.Len())
	copy(out.X, s.X)
	copy(out.Y, s.Y)
	return out
}

// Validate checks length agreement, non-emptiness and finiteness.
func (s Sequence) Validate() error {
	_, err := FromSlices(s.X, s.Y)
	return err
}

// Normalize remaps each axis independently to [-1, 1] and returns a new
// sequence. A degenerate axis (max == min) maps to zeros.
func Normalize(s Sequence) Sequence {
	out := NewSequence(s.Len())
	normalizeAxis(out.X, s.X)
	normalizeAxis(out.Y, s.Y)
	return out
}

// NormalizeJoint remaps both axes by the shared peak magnitude, preserving
// the aspect ratio. A silent sequence stays silent.
func NormalizeJoint(s Sequence) Sequence {
	peak := 0.0
	for i := range s.X {
		if a := math.Abs(s.X[i]); a > peak {
			peak = a
		}
		if a := math.Abs(s.Y[i]); a > peak {
			peak = a
		}
	}
	out := NewSequence(s.Len())
	if peak == 0 {
		return out
	}
	scale := 1 / peak
	for i := range s.X {
		out.X[i] = s.X[i] * scale
		out.Y[i] = s.Y[i] * scale
	}
	return out
}

func normalizeAxis(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	lo, hi := src[0], src[0]
	for _, v := range src {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi == lo {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	scale := 2 / (hi - lo)
	for i, v := range src {
		dst[i] = (v-lo)*scale - 1
	}
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
