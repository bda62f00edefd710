package effects

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

const (
	defaultEchoCount         = 3
	defaultEchoDecay         = 0.5
	defaultEchoDelayFraction = 0.25
	maxEchoCount             = 16
)

// Echo adds decaying delayed copies of the signal:
// out[t] = in[t] + sum_{k=1..N} decay^k * in[t - k*delay].
//
// Taps that would read before the sequence start contribute silence
// (zero-padding, no wraparound). With decay 0 or zero echoes the stage is
// exactly the identity.
type Echo struct {
	count         int
	decay         float64
	delayFraction float64
}

// EchoOption mutates echo construction parameters.
type EchoOption func(*Echo) error

// WithEchoCount sets the number of delayed taps.
func WithEchoCount(count int) EchoOption {
	return func(e *Echo) error {
		if count < 0 || count > maxEchoCount {
			return core.InvalidParamf("echo count must be in [0, %d]: %d", maxEchoCount, count)
		}
		e.count = count
		return nil
	}
}

// WithEchoDecay sets per-tap amplitude decay in [0, 1].
func WithEchoDecay(decay float64) EchoOption {
	return func(e *Echo) error {
		if decay < 0 || decay > 1 || !isFinite(decay) {
			return core.InvalidParamf("echo decay must be in [0, 1]: %f", decay)
		}
		e.decay = decay
		return nil
	}
}

// WithEchoDelayFraction sets tap spacing as a fraction of sequence length
// in (0, 1].
func WithEchoDelayFraction(fraction float64) EchoOption {
	return func(e *Echo) error {
		if fraction <= 0 || fraction > 1 || !isFinite(fraction) {
			return core.InvalidParamf("echo delay fraction must be in (0, 1]: %f", fraction)
		}
		e.delayFraction = fraction
		return nil
	}
}

// NewEcho creates an echo with practical defaults.
func NewEcho(opts ...EchoOption) (*Echo, error) {
	e := &Echo{
		count:         defaultEchoCount,
		decay:         defaultEchoDecay,
		delayFraction: defaultEchoDelayFraction,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Name returns the stage name.
func (e *Echo) Name() string { return "echo" }

// Count returns the number of delayed taps.
func (e *Echo) Count() int { return e.count }

// Decay returns per-tap amplitude decay.
func (e *Echo) Decay() float64 { return e.decay }

// DelayFraction returns tap spacing as a fraction of sequence length.
func (e *Echo) DelayFraction() float64 { return e.delayFraction }

// Validate checks stage parameters.
func (e *Echo) Validate() error {
	if e.count < 0 || e.count > maxEchoCount {
		return core.InvalidParamf("echo count must be in [0, %d]: %d", maxEchoCount, e.count)
	}
	if e.decay < 0 || e.decay > 1 || !isFinite(e.decay) {
		return core.InvalidParamf("echo decay must be in [0, 1]: %f", e.decay)
	}
	if e.delayFraction <= 0 || e.delayFraction > 1 || !isFinite(e.delayFraction) {
		return core.InvalidParamf("echo delay fraction must be in (0, 1]: %f", e.delayFraction)
	}
	return nil
}

// Apply sums the delayed taps into a new sequence of the same length.
func (e *Echo) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	out := seq.Clone()
	if e.count == 0 || e.decay == 0 {
		return out, nil
	}

	delay := int(e.delayFraction * float64(seq.Len()))
	if delay <= 0 {
		return out, nil
	}
	for k := 1; k <= e.count; k++ {
		gain := math.Pow(e.decay, float64(k))
		offset := k * delay
		for i := offset; i < seq.Len(); i++ {
			out.X[i] += gain * seq.X[i-offset]
			out.Y[i] += gain * seq.Y[i-offset]
		}
	}
	return out, nil
}
