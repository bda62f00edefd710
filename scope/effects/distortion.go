package effects

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// DistortionKind selects the shaping function.
type DistortionKind int

const (
	// DistortionSoft saturates smoothly toward the threshold.
	DistortionSoft DistortionKind = iota
	// DistortionHard clamps to [-threshold, threshold].
	DistortionHard
	// DistortionFold reflects excursions back into range, repeatedly for
	// large inputs.
	DistortionFold
)

const defaultDistortionThreshold = 0.7

// Distortion shapes both axes per sample. Clamping and folding here are the
// intended behavior of the stage, not a validation failure.
type Distortion struct {
	kind      DistortionKind
	threshold float64
}

// DistortionOption mutates distortion construction parameters.
type DistortionOption func(*Distortion) error

// WithDistortionKind selects soft, hard or fold shaping.
func WithDistortionKind(kind DistortionKind) DistortionOption {
	return func(d *Distortion) error {
		if kind != DistortionSoft && kind != DistortionHard && kind != DistortionFold {
			return core.InvalidParamf("distortion kind out of range: %d", kind)
		}
		d.kind = kind
		return nil
	}
}

// WithDistortionThreshold sets the shaping threshold in (0, 1].
func WithDistortionThreshold(threshold float64) DistortionOption {
	return func(d *Distortion) error {
		if threshold <= 0 || threshold > 1 || !isFinite(threshold) {
			return core.InvalidParamf("distortion threshold must be in (0, 1]: %f", threshold)
		}
		d.threshold = threshold
		return nil
	}
}

// NewDistortion creates a distortion with practical defaults.
func NewDistortion(opts ...DistortionOption) (*Distortion, error) {
	d := &Distortion{
		kind:      DistortionSoft,
		threshold: defaultDistortionThreshold,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// Name returns the stage name.
func (d *Distortion) Name() string { return "distortion" }

// Kind returns the shaping function.
func (d *Distortion) Kind() DistortionKind { return d.kind }

// Threshold returns the shaping threshold.
func (d *Distortion) Threshold() float64 { return d.threshold }

// Validate checks stage parameters.
func (d *Distortion) Validate() error {
	if d.kind != DistortionSoft && d.kind != DistortionHard && d.kind != DistortionFold {
		return core.InvalidParamf("distortion kind out of range: %d", d.kind)
	}
	if d.threshold <= 0 || d.threshold > 1 || !isFinite(d.threshold) {
		return core.InvalidParamf("distortion threshold must be in (0, 1]: %f", d.threshold)
	}
	return nil
}

// Apply shapes both axes.
func (d *Distortion) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	out := seq.Clone()
	for i := range out.X {
		out.X[i] = d.shapeSample(out.X[i])
		out.Y[i] = d.shapeSample(out.Y[i])
	}
	return out, nil
}

func (d *Distortion) shapeSample(v float64) float64 {
	switch d.kind {
	case DistortionHard:
		return clamp(v, -d.threshold, d.threshold)
	case DistortionFold:
		return foldSample(v, d.threshold)
	default:
		return math.Tanh(v/d.threshold) * d.threshold
	}
}

// foldSample reflects v back into [-threshold, threshold], repeating until
// it lands in range.
func foldSample(v, threshold float64) float64 {
	for math.Abs(v) > threshold {
		if v > threshold {
			v = 2*threshold - v
		} else if v < -threshold {
			v = -2*threshold - v
		}
	}
	return v
}
