package effects

import (
	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

const (
	defaultChainRepeats = 1
	maxChainRepeats     = 10000
)

// Chain applies the fixed effect pipeline to a base coordinate sequence:
//
//	mirror -> axis fades -> shrink -> noise -> wavy -> rotation ->
//	tremolo -> ring modulation -> echo -> kaleidoscope -> distortion
//
// Later stages operate on the transformed output of earlier ones, so the
// order is part of the contract. A nil stage is disabled. The chain expands
// the base sequence into `repeats` pattern repeats after the mirror stage so
// the per-repeat stages (fades, shrink, spinning rotation) have a repeat
// counter to advance on.
type Chain struct {
	sampleRate float64
	repeats    int

	mirror       *Mirror
	fadeX        *AxisFade
	fadeY        *AxisFade
	shrink       *Shrink
	noise        *Noise
	wavy         *Wavy
	rotation     *Rotation
	tremolo      *Tremolo
	ringMod      *RingModulator
	echo         *Echo
	kaleidoscope *Kaleidoscope
	distortion   *Distortion
}

// ChainOption mutates chain construction parameters.
type ChainOption func(*Chain) error

// WithRepeats sets how many pattern repeats the chain expands to.
func WithRepeats(repeats int) ChainOption {
	return func(c *Chain) error {
		if repeats < 1 || repeats > maxChainRepeats {
			return core.InvalidParamf("chain repeats must be in [1, %d]: %d", maxChainRepeats, repeats)
		}
		c.repeats = repeats
		return nil
	}
}

// WithMirror enables the mirror stage.
func WithMirror(m *Mirror) ChainOption {
	return func(c *Chain) error { c.mirror = m; return nil }
}

// WithFadeX enables the X axis fade stage.
func WithFadeX(f *AxisFade) ChainOption {
	return func(c *Chain) error { c.fadeX = f; return nil }
}

// WithFadeY enables the Y axis fade stage.
func WithFadeY(f *AxisFade) ChainOption {
	return func(c *Chain) error { c.fadeY = f; return nil }
}

// WithShrink enables the shrink stage.
func WithShrink(s *Shrink) ChainOption {
	return func(c *Chain) error { c.shrink = s; return nil }
}

// WithNoise enables the noise stage.
func WithNoise(n *Noise) ChainOption {
	return func(c *Chain) error { c.noise = n; return nil }
}

// WithWavy enables the wavy stage.
func WithWavy(w *Wavy) ChainOption {
	return func(c *Chain) error { c.wavy = w; return nil }
}

// WithRotation enables the rotation stage.
func WithRotation(r *Rotation) ChainOption {
	return func(c *Chain) error { c.rotation = r; return nil }
}

// WithTremolo enables the tremolo stage.
func WithTremolo(t *Tremolo) ChainOption {
	return func(c *Chain) error { c.tremolo = t; return nil }
}

// WithRingModulator enables the ring modulation stage.
func WithRingModulator(r *RingModulator) ChainOption {
	return func(c *Chain) error { c.ringMod = r; return nil }
}

// WithEcho enables the echo stage.
func WithEcho(e *Echo) ChainOption {
	return func(c *Chain) error { c.echo = e; return nil }
}

// WithKaleidoscope enables the kaleidoscope stage.
func WithKaleidoscope(k *Kaleidoscope) ChainOption {
	return func(c *Chain) error { c.kaleidoscope = k; return nil }
}

// WithDistortion enables the distortion stage.
func WithDistortion(d *Distortion) ChainOption {
	return func(c *Chain) error { c.distortion = d; return nil }
}

// NewChain creates a chain. All stages are disabled until set by options.
func NewChain(sampleRate float64, opts ...ChainOption) (*Chain, error) {
	if sampleRate <= 0 || !isFinite(sampleRate) {
		return nil, core.InvalidParamf("chain sample rate must be > 0 and finite: %f", sampleRate)
	}
	c := &Chain{
		sampleRate: sampleRate,
		repeats:    defaultChainRepeats,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// SampleRate returns the sample rate in Hz.
func (c *Chain) SampleRate() float64 { return c.sampleRate }

// Repeats returns the pattern repeat count.
func (c *Chain) Repeats() int { return c.repeats }

// Stages returns the enabled stages in application order.
func (c *Chain) Stages() []Stage {
	out := make([]Stage, 0, 12)
	if c.mirror != nil {
		out = append(out, c.mirror)
	}
	if c.fadeX != nil {
		out = append(out, c.fadeX)
	}
	if c.fadeY != nil {
		out = append(out, c.fadeY)
	}
	if c.shrink != nil {
		out = append(out, c.shrink)
	}
	if c.noise != nil {
		out = append(out, c.noise)
	}
	if c.wavy != nil {
		out = append(out, c.wavy)
	}
	if c.rotation != nil {
		out = append(out, c.rotation)
	}
	if c.tremolo != nil {
		out = append(out, c.tremolo)
	}
	if c.ringMod != nil {
		out = append(out, c.ringMod)
	}
	if c.echo != nil {
		out = append(out, c.echo)
	}
	if c.kaleidoscope != nil {
		out = append(out, c.kaleidoscope)
	}
	if c.distortion != nil {
		out = append(out, c.distortion)
	}
	return out
}

// Validate checks chain and stage parameters without applying anything.
// Validation runs to completion before any pipeline work so a failure never
// leaves a partially applied result.
func (c *Chain) Validate() error {
	if c.repeats < 1 || c.repeats > maxChainRepeats {
		return core.InvalidParamf("chain repeats must be in [1, %d]: %d", maxChainRepeats, c.repeats)
	}
	for _, s := range c.Stages() {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Apply runs the pipeline over base and returns the final sequence. The
// input is never mutated.
func (c *Chain) Apply(base pattern.Sequence) (pattern.Sequence, error) {
	if base.Len() == 0 {
		return pattern.Sequence{}, core.ErrEmptySequence
	}
	if err := base.Validate(); err != nil {
		return pattern.Sequence{}, err
	}
	if err := c.Validate(); err != nil {
		return pattern.Sequence{}, err
	}

	ctx := &Context{SampleRate: c.sampleRate, FrameLen: base.Len()}
	seq := base

	if c.mirror != nil {
		var err error
		seq, err = c.mirror.Apply(seq, ctx)
		if err != nil {
			return pattern.Sequence{}, err
		}
	}

	seq = tile(seq, c.repeats)

	c.configureAlternateFades()

	for _, s := range c.Stages() {
		if _, ok := s.(*Mirror); ok {
			continue
		}
		var err error
		seq, err = s.Apply(seq, ctx)
		if err != nil {
			return pattern.Sequence{}, err
		}
	}
	return seq, nil
}

// configureAlternateFades engages the interleaved X-then-Y fade mode when
// both axis fades are enabled and neither shrink nor a rotation is active.
func (c *Chain) configureAlternateFades() {
	alternate := c.fadeX != nil && c.fadeY != nil &&
		c.shrink == nil &&
		(c.rotation == nil || c.rotation.Mode() == RotationOff)
	if c.fadeX != nil {
		c.fadeX.alternate = alternate
		c.fadeX.phase = 0
	}
	if c.fadeY != nil {
		c.fadeY.alternate = alternate
		c.fadeY.phase = 1
	}
}

// tile concatenates n copies of seq into a new sequence. Always copies so
// the chain output never aliases the caller's input.
func tile(seq pattern.Sequence, n int) pattern.Sequence {
	if n < 1 {
		n = 1
	}
	out := pattern.NewSequence(seq.Len() * n)
	for r := 0; r < n; r++ {
		copy(out.X[r*seq.Len():], seq.X)
		copy(out.Y[r*seq.Len():], seq.Y)
	}
	return out
}
