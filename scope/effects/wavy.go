package effects

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// Wavy adds a sinusoidal displacement to each axis over the synthetic time
// axis: out = in + K*sin(2*pi*f*t), t = index / sample rate.
type Wavy struct {
	depthX float64
	depthY float64
	freqX  float64
	freqY  float64
}

// WavyOption mutates wavy construction parameters.
type WavyOption func(*Wavy) error

// WithWavyX sets displacement depth in [0, 1] and frequency in Hz for X.
func WithWavyX(depth, freqHz float64) WavyOption {
	return func(w *Wavy) error {
		if depth < 0 || depth > 1 || !isFinite(depth) {
			return core.InvalidParamf("wavy x depth must be in [0, 1]: %f", depth)
		}
		if depth > 0 && (freqHz <= 0 || !isFinite(freqHz)) {
			return core.InvalidParamf("wavy x frequency must be > 0: %f", freqHz)
		}
		w.depthX = depth
		w.freqX = freqHz
		return nil
	}
}

// WithWavyY sets displacement depth in [0, 1] and frequency in Hz for Y.
func WithWavyY(depth, freqHz float64) WavyOption {
	return func(w *Wavy) error {
		if depth < 0 || depth > 1 || !isFinite(depth) {
			return core.InvalidParamf("wavy y depth must be in [0, 1]: %f", depth)
		}
		if depth > 0 && (freqHz <= 0 || !isFinite(freqHz)) {
			return core.InvalidParamf("wavy y frequency must be > 0: %f", freqHz)
		}
		w.depthY = depth
		w.freqY = freqHz
		return nil
	}
}

// NewWavy creates a wavy modulation stage.
func NewWavy(opts ...WavyOption) (*Wavy, error) {
	w := &Wavy{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Name returns the stage name.
func (w *Wavy) Name() string { return "wavy" }

// Validate checks stage parameters.
func (w *Wavy) Validate() error {
	if w.depthX < 0 || w.depthX > 1 || w.depthY < 0 || w.depthY > 1 {
		return core.InvalidParamf("wavy depth must be in [0, 1]: x=%f y=%f", w.depthX, w.depthY)
	}
	if w.depthX > 0 && w.freqX <= 0 {
		return core.InvalidParamf("wavy x frequency must be > 0: %f", w.freqX)
	}
	if w.depthY > 0 && w.freqY <= 0 {
		return core.InvalidParamf("wavy y frequency must be > 0: %f", w.freqY)
	}
	return nil
}

// Apply displaces both axes.
func (w *Wavy) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	out := seq.Clone()
	if ctx.SampleRate <= 0 {
		return out, core.InvalidParamf("wavy sample rate must be > 0: %f", ctx.SampleRate)
	}
	stepX := 2 * math.Pi * w.freqX / ctx.SampleRate
	stepY := 2 * math.Pi * w.freqY / ctx.SampleRate
	for i := range out.X {
		if w.depthX > 0 {
			out.X[i] += w.depthX * math.Sin(stepX*float64(i))
		}
		if w.depthY > 0 {
			out.Y[i] += w.depthY * math.Sin(stepY*float64(i))
		}
	}
	return out, nil
}
