package pattern

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-scope/internal/testutil"
	"github.com/cwbudde/algo-scope/scope/core"
)

func TestHarmonicsLissajousCurve(t *testing.T) {
	g := NewGenerator()
	seq, err := g.Harmonics(
		[]Harmonic{{Amplitude: 1, Frequency: 2}},
		[]Harmonic{{Amplitude: 1, Frequency: 3}},
		1000,
	)
	if err != nil {
		t.Fatalf("Harmonics() error = %v", err)
	}
	if seq.Len() != 1000 {
		t.Fatalf("Harmonics() length = %d, want 1000", seq.Len())
	}

	wantX := make([]float64, 1000)
	wantY := make([]float64, 1000)
	for i := range wantX {
		tt := 2 * math.Pi * float64(i) / 1000
		wantX[i] = math.Sin(2 * tt)
		wantY[i] = math.Sin(3 * tt)
	}
	testutil.RequirePointsNearlyEqual(t, seq.X, seq.Y, wantX, wantY, 1e-12)
}

func TestHarmonicsRejectsEmptyTerms(t *testing.T) {
	g := NewGenerator()
	_, err := g.Harmonics(nil, []Harmonic{{Amplitude: 1, Frequency: 1}}, 100)
	if !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Harmonics() error = %v, want ErrInvalidParameter", err)
	}
}

func TestHarmonicsRejectsNonPositiveFrequency(t *testing.T) {
	g := NewGenerator()
	_, err := g.Harmonics(
		[]Harmonic{{Amplitude: 1, Frequency: 0}},
		[]Harmonic{{Amplitude: 1, Frequency: 1}},
		100,
	)
	if !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Harmonics() error = %v, want ErrInvalidParameter", err)
	}
}

func TestSpiralDegenerateTurns(t *testing.T) {
	g := NewGenerator()
	seq, err := g.Spiral(0.5, 0.1, 0, 100)
	if err != nil {
		t.Fatalf("Spiral() error = %v", err)
	}
	if seq.Len() != 100 {
		t.Fatalf("Spiral() length = %d, want 100", seq.Len())
	}
	testutil.RequireFinite(t, seq.X)
	testutil.RequireFinite(t, seq.Y)
	for i := 1; i < seq.Len(); i++ {
		if seq.X[i] != seq.X[0] || seq.Y[i] != seq.Y[0] {
			t.Fatalf("zero-turn spiral point %d = (%v, %v), want constant (%v, %v)",
				i, seq.X[i], seq.Y[i], seq.X[0], seq.Y[0])
		}
	}
}

func TestSpiralBounded(t *testing.T) {
	g := NewGenerator()
	seq, err := g.Spiral(0, 0.2, 3, 500)
	if err != nil {
		t.Fatalf("Spiral() error = %v", err)
	}
	for i := range seq.X {
		if math.Abs(seq.X[i]) > 1+1e-12 || math.Abs(seq.Y[i]) > 1+1e-12 {
			t.Fatalf("spiral point %d out of range: (%v, %v)", i, seq.X[i], seq.Y[i])
		}
	}
}

func TestRandomHarmonicsDeterminism(t *testing.T) {
	a := NewGeneratorWithOptions(nil, WithSeed(42))
	b := NewGeneratorWithOptions(nil, WithSeed(42))

	seqA, err := a.RandomHarmonics(4, 500)
	if err != nil {
		t.Fatalf("RandomHarmonics() error = %v", err)
	}
	seqB, err := b.RandomHarmonics(4, 500)
	if err != nil {
		t.Fatalf("RandomHarmonics() error = %v", err)
	}
	testutil.RequirePointsNearlyEqual(t, seqA.X, seqA.Y, seqB.X, seqB.Y, 0)

	c := NewGeneratorWithOptions(nil, WithSeed(7))
	seqC, err := c.RandomHarmonics(4, 500)
	if err != nil {
		t.Fatalf("RandomHarmonics() error = %v", err)
	}
	if testutil.MaxAbsDiff(seqA.X, seqC.X) == 0 {
		t.Fatalf("different seeds produced identical patterns")
	}
}

func TestRandomHarmonicsFiniteAndBounded(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(3))
	seq, err := g.RandomHarmonics(6, 800)
	if err != nil {
		t.Fatalf("RandomHarmonics() error = %v", err)
	}
	testutil.RequireFinite(t, seq.X)
	testutil.RequireFinite(t, seq.Y)
	for i := range seq.X {
		if math.Abs(seq.X[i]) > 1+1e-12 || math.Abs(seq.Y[i]) > 1+1e-12 {
			t.Fatalf("point %d out of range: (%v, %v)", i, seq.X[i], seq.Y[i])
		}
	}
}

func TestCircleClosesOnItself(t *testing.T) {
	g := NewGenerator()
	seq, err := g.Circle(360)
	if err != nil {
		t.Fatalf("Circle() error = %v", err)
	}
	for i := range seq.X {
		r := math.Hypot(seq.X[i], seq.Y[i])
		if math.Abs(r-1) > 1e-9 {
			t.Fatalf("circle point %d radius = %v, want 1", i, r)
		}
	}
}

func TestFromSlicesValidation(t *testing.T) {
	if _, err := FromSlices(nil, nil); !errors.Is(err, core.ErrEmptySequence) {
		t.Fatalf("FromSlices(empty) error = %v, want ErrEmptySequence", err)
	}
	if _, err := FromSlices([]float64{1, 2}, []float64{1}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("FromSlices(mismatch) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := FromSlices([]float64{math.NaN()}, []float64{0}); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("FromSlices(NaN) error = %v, want ErrInvalidParameter", err)
	}
	seq, err := FromSlices([]float64{0, 1}, []float64{1, 0})
	if err != nil {
		t.Fatalf("FromSlices() error = %v", err)
	}
	if seq.Len() != 2 {
		t.Fatalf("FromSlices() length = %d, want 2", seq.Len())
	}
}

func TestNormalizeDegenerateAxis(t *testing.T) {
	seq := Sequence{X: []float64{0.5, 0.5, 0.5}, Y: []float64{0, 1, 2}}
	norm := Normalize(seq)
	testutil.RequireSliceNearlyEqual(t, norm.X, []float64{0, 0, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, norm.Y, []float64{-1, 0, 1}, 1e-12)
}

func TestNormalizeJointPreservesAspect(t *testing.T) {
	seq := Sequence{X: []float64{2, -2}, Y: []float64{1, -1}}
	norm := NormalizeJoint(seq)
	testutil.RequireSliceNearlyEqual(t, norm.X, []float64{1, -1}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, norm.Y, []float64{0.5, -0.5}, 1e-12)
}
