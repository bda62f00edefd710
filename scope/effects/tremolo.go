package effects

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// TremoloShape selects the modulator waveform.
type TremoloShape int

const (
	TremoloSine TremoloShape = iota
	TremoloTriangle
	TremoloSquare
)

const (
	defaultTremoloRateHz = 4.0
	defaultTremoloDepth  = 0.6
)

// Tremolo modulates the amplitude of both axes:
// out = in * ((1 - depth) + depth * (mod + 1) / 2).
type Tremolo struct {
	shape  TremoloShape
	rateHz float64
	depth  float64
}

// TremoloOption mutates tremolo construction parameters.
type TremoloOption func(*Tremolo) error

// WithTremoloShape selects sine, triangle or square modulation.
func WithTremoloShape(shape TremoloShape) TremoloOption {
	return func(t *Tremolo) error {
		if shape != TremoloSine && shape != TremoloTriangle && shape != TremoloSquare {
			return core.InvalidParamf("tremolo shape out of range: %d", shape)
		}
		t.shape = shape
		return nil
	}
}

// WithTremoloRateHz sets modulation speed in Hz.
func WithTremoloRateHz(rateHz float64) TremoloOption {
	return func(t *Tremolo) error {
		if rateHz <= 0 || !isFinite(rateHz) {
			return core.InvalidParamf("tremolo rate must be > 0 and finite: %f", rateHz)
		}
		t.rateHz = rateHz
		return nil
	}
}

// WithTremoloDepth sets modulation depth in [0, 1].
func WithTremoloDepth(depth float64) TremoloOption {
	return func(t *Tremolo) error {
		if depth < 0 || depth > 1 || !isFinite(depth) {
			return core.InvalidParamf("tremolo depth must be in [0, 1]: %f", depth)
		}
		t.depth = depth
		return nil
	}
}

// NewTremolo creates a tremolo with practical defaults and optional overrides.
func NewTremolo(opts ...TremoloOption) (*Tremolo, error) {
	t := &Tremolo{
		shape:  TremoloSine,
		rateHz: defaultTremoloRateHz,
		depth:  defaultTremoloDepth,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Name returns the stage name.
func (t *Tremolo) Name() string { return "tremolo" }

// Shape returns the modulator waveform.
func (t *Tremolo) Shape() TremoloShape { return t.shape }

// RateHz returns modulation speed in Hz.
func (t *Tremolo) RateHz() float64 { return t.rateHz }

// Depth returns modulation depth in [0, 1].
func (t *Tremolo) Depth() float64 { return t.depth }

// Validate checks stage parameters.
func (t *Tremolo) Validate() error {
	if t.shape != TremoloSine && t.shape != TremoloTriangle && t.shape != TremoloSquare {
		return core.InvalidParamf("tremolo shape out of range: %d", t.shape)
	}
	if t.rateHz <= 0 || !isFinite(t.rateHz) {
		return core.InvalidParamf("tremolo rate must be > 0 and finite: %f", t.rateHz)
	}
	if t.depth < 0 || t.depth > 1 || !isFinite(t.depth) {
		return core.InvalidParamf("tremolo depth must be in [0, 1]: %f", t.depth)
	}
	return nil
}

// Apply modulates both axes over the synthetic time axis.
func (t *Tremolo) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	if ctx.SampleRate <= 0 {
		return pattern.Sequence{}, core.InvalidParamf("tremolo sample rate must be > 0: %f", ctx.SampleRate)
	}
	out := seq.Clone()
	for i := range out.X {
		rt := t.rateHz * float64(i) / ctx.SampleRate
		mod := t.modulator(rt)
		gain := (1 - t.depth) + t.depth*(mod+1)/2
		out.X[i] *= gain
		out.Y[i] *= gain
	}
	return out, nil
}

// modulator evaluates the waveform at rate*time cycles, returning [-1, 1].
func (t *Tremolo) modulator(rt float64) float64 {
	switch t.shape {
	case TremoloTriangle:
		return 2*math.Abs(2*(rt-math.Floor(rt+0.5))) - 1
	case TremoloSquare:
		if math.Sin(2*math.Pi*rt) >= 0 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * rt)
	}
}
