package effects

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

const (
	defaultRingModFreqHz = 100.0
	defaultRingModMix    = 0.5
)

// RingModulator multiplies both axes with a sine carrier and blends with the
// dry signal: out = in*(1-mix) + in*sin(2*pi*f*t)*mix.
type RingModulator struct {
	freqHz float64
	mix    float64
}

// RingModOption mutates ring modulator construction parameters.
type RingModOption func(*RingModulator) error

// WithRingModFreqHz sets the carrier frequency in Hz.
func WithRingModFreqHz(freqHz float64) RingModOption {
	return func(r *RingModulator) error {
		if freqHz <= 0 || !isFinite(freqHz) {
			return core.InvalidParamf("ring modulator frequency must be > 0 and finite: %f", freqHz)
		}
		r.freqHz = freqHz
		return nil
	}
}

// WithRingModMix sets wet amount in [0, 1].
func WithRingModMix(mix float64) RingModOption {
	return func(r *RingModulator) error {
		if mix < 0 || mix > 1 || !isFinite(mix) {
			return core.InvalidParamf("ring modulator mix must be in [0, 1]: %f", mix)
		}
		r.mix = mix
		return nil
	}
}

// NewRingModulator creates a ring modulator with practical defaults.
func NewRingModulator(opts ...RingModOption) (*RingModulator, error) {
	r := &RingModulator{
		freqHz: defaultRingModFreqHz,
		mix:    defaultRingModMix,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Name returns the stage name.
func (r *RingModulator) Name() string { return "ring-modulator" }

// FreqHz returns the carrier frequency in Hz.
func (r *RingModulator) FreqHz() float64 { return r.freqHz }

// Mix returns wet amount in [0, 1].
func (r *RingModulator) Mix() float64 { return r.mix }

// Validate checks stage parameters.
func (r *RingModulator) Validate() error {
	if r.freqHz <= 0 || !isFinite(r.freqHz) {
		return core.InvalidParamf("ring modulator frequency must be > 0 and finite: %f", r.freqHz)
	}
	if r.mix < 0 || r.mix > 1 || !isFinite(r.mix) {
		return core.InvalidParamf("ring modulator mix must be in [0, 1]: %f", r.mix)
	}
	return nil
}

// Apply modulates both axes with the carrier.
func (r *RingModulator) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	if ctx.SampleRate <= 0 {
		return pattern.Sequence{}, core.InvalidParamf("ring modulator sample rate must be > 0: %f", ctx.SampleRate)
	}
	out := seq.Clone()
	step := 2 * math.Pi * r.freqHz / ctx.SampleRate
	for i := range out.X {
		carrier := math.Sin(step * float64(i))
		out.X[i] = out.X[i]*(1-r.mix) + out.X[i]*carrier*r.mix
		out.Y[i] = out.Y[i]*(1-r.mix) + out.Y[i]*carrier*r.mix
	}
	return out, nil
}
