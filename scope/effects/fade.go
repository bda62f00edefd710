package effects

import (
	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

const (
	defaultFadeSteps = 10
	defaultFadeSpeed = 1
	maxFadeSteps     = 1000
	maxFadeSpeed     = 1000
)

// Axis selects a coordinate channel.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// AxisFade scales one axis through the breathing cycle 1 -> 0 -> -1 -> 0 -> 1.
// The cycle is partitioned into `steps` equal factor levels per quarter, each
// held for `speed` pattern repeats.
type AxisFade struct {
	axis  Axis
	steps int
	speed int

	// alternate gates the fade to every other cycle so an X and a Y fade
	// can interleave. Configured by the chain, not the caller.
	alternate bool
	phase     int

	factors []float64
}

// AxisFadeOption mutates axis fade construction parameters.
type AxisFadeOption func(*AxisFade) error

// WithFadeSteps sets the number of factor levels per quarter cycle.
func WithFadeSteps(steps int) AxisFadeOption {
	return func(f *AxisFade) error {
		if steps < 2 || steps > maxFadeSteps {
			return core.InvalidParamf("fade steps must be in [2, %d]: %d", maxFadeSteps, steps)
		}
		f.steps = steps
		return nil
	}
}

// WithFadeSpeed sets how many pattern repeats each factor level is held.
func WithFadeSpeed(speed int) AxisFadeOption {
	return func(f *AxisFade) error {
		if speed < 1 || speed > maxFadeSpeed {
			return core.InvalidParamf("fade speed must be in [1, %d]: %d", maxFadeSpeed, speed)
		}
		f.speed = speed
		return nil
	}
}

// NewAxisFade creates a fade for the given axis.
func NewAxisFade(axis Axis, opts ...AxisFadeOption) (*AxisFade, error) {
	f := &AxisFade{
		axis:  axis,
		steps: defaultFadeSteps,
		speed: defaultFadeSpeed,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	f.factors = fadeCycle(f.steps)
	return f, nil
}

// Name returns the stage name.
func (f *AxisFade) Name() string {
	if f.axis == AxisX {
		return "fade-x"
	}
	return "fade-y"
}

// Steps returns the factor level count per quarter cycle.
func (f *AxisFade) Steps() int { return f.steps }

// Speed returns the repeats each factor level is held.
func (f *AxisFade) Speed() int { return f.speed }

// Validate checks stage parameters.
func (f *AxisFade) Validate() error {
	if f.axis != AxisX && f.axis != AxisY {
		return core.InvalidParamf("fade axis must be X or Y: %d", f.axis)
	}
	if f.steps < 2 || f.steps > maxFadeSteps {
		return core.InvalidParamf("fade steps must be in [2, %d]: %d", maxFadeSteps, f.steps)
	}
	if f.speed < 1 || f.speed > maxFadeSpeed {
		return core.InvalidParamf("fade speed must be in [1, %d]: %d", maxFadeSpeed, f.speed)
	}
	return nil
}

// Apply scales the configured axis by the factor for each sample's pattern
// repeat.
func (f *AxisFade) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	out := seq.Clone()
	target := out.X
	if f.axis == AxisY {
		target = out.Y
	}
	cycle := len(f.factors) * f.speed
	for i := range target {
		frame := ctx.frameIndex(i)
		if f.alternate {
			// Interleaved mode: this fade runs on alternate cycles and
			// holds the axis untouched in between.
			if (frame/cycle+f.phase)%2 != 0 {
				continue
			}
		}
		target[i] *= f.factors[(frame/f.speed)%len(f.factors)]
	}
	return out, nil
}

// fadeCycle builds the factor table 1 -> 0 -> -1 -> 0 -> 1, n levels per
// quarter, shared segment endpoints emitted once.
func fadeCycle(n int) []float64 {
	out := make([]float64, 0, 4*(n-1)+1)
	out = append(out, ramp(1, 0, n)...)
	out = append(out, ramp(0, -1, n)[1:]...)
	out = append(out, ramp(-1, 0, n)[1:]...)
	out = append(out, ramp(0, 1, n)[1:]...)
	return out
}

// ramp returns n evenly spaced values from lo to hi inclusive.
func ramp(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	return out
}

// Shrink scales both axes through the cycle 1 -> 0 -> 1, structured like the
// axis fade.
type Shrink struct {
	steps int
	speed int

	factors []float64
}

// ShrinkOption mutates shrink construction parameters.
type ShrinkOption func(*Shrink) error

// WithShrinkSteps sets the number of factor levels per half cycle.
func WithShrinkSteps(steps int) ShrinkOption {
	return func(s *Shrink) error {
		if steps < 2 || steps > maxFadeSteps {
			return core.InvalidParamf("shrink steps must be in [2, %d]: %d", maxFadeSteps, steps)
		}
		s.steps = steps
		return nil
	}
}

// WithShrinkSpeed sets how many pattern repeats each factor level is held.
func WithShrinkSpeed(speed int) ShrinkOption {
	return func(s *Shrink) error {
		if speed < 1 || speed > maxFadeSpeed {
			return core.InvalidParamf("shrink speed must be in [1, %d]: %d", maxFadeSpeed, speed)
		}
		s.speed = speed
		return nil
	}
}

// NewShrink creates a shrink stage.
func NewShrink(opts ...ShrinkOption) (*Shrink, error) {
	s := &Shrink{steps: defaultFadeSteps, speed: defaultFadeSpeed}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.factors = shrinkCycle(s.steps)
	return s, nil
}

// Name returns the stage name.
func (s *Shrink) Name() string { return "shrink" }

// Steps returns the factor level count per half cycle.
func (s *Shrink) Steps() int { return s.steps }

// Speed returns the repeats each factor level is held.
func (s *Shrink) Speed() int { return s.speed }

// Validate checks stage parameters.
func (s *Shrink) Validate() error {
	if s.steps < 2 || s.steps > maxFadeSteps {
		return core.InvalidParamf("shrink steps must be in [2, %d]: %d", maxFadeSteps, s.steps)
	}
	if s.speed < 1 || s.speed > maxFadeSpeed {
		return core.InvalidParamf("shrink speed must be in [1, %d]: %d", maxFadeSpeed, s.speed)
	}
	return nil
}

// Apply scales both axes by the shrink factor for each sample's pattern
// repeat.
func (s *Shrink) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	out := seq.Clone()
	for i := range out.X {
		factor := s.factors[(ctx.frameIndex(i)/s.speed)%len(s.factors)]
		out.X[i] *= factor
		out.Y[i] *= factor
	}
	return out, nil
}

func shrinkCycle(n int) []float64 {
	out := make([]float64, 0, 2*(n-1)+1)
	out = append(out, ramp(1, 0, n)...)
	out = append(out, ramp(0, 1, n)[1:]...)
	return out
}
