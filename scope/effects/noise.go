package effects

import (
	"math/rand"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// NoiseKind selects the jitter distribution.
type NoiseKind int

const (
	NoiseUniform NoiseKind = iota
	NoiseGaussian
)

const maxNoiseAmplitude = 1.0

// Noise adds independent per-sample jitter to each axis. The jitter is not
// time-correlated; a fixed seed makes the stage deterministic.
type Noise struct {
	kind NoiseKind
	ampX float64
	ampY float64
	seed int64
}

// NoiseOption mutates noise construction parameters.
type NoiseOption func(*Noise) error

// WithNoiseKind selects uniform or gaussian jitter.
func WithNoiseKind(kind NoiseKind) NoiseOption {
	return func(n *Noise) error {
		if kind != NoiseUniform && kind != NoiseGaussian {
			return core.InvalidParamf("noise kind must be uniform or gaussian: %d", kind)
		}
		n.kind = kind
		return nil
	}
}

// WithNoiseAmplitude sets per-axis jitter amplitude in [0, 1].
func WithNoiseAmplitude(ampX, ampY float64) NoiseOption {
	return func(n *Noise) error {
		if ampX < 0 || ampX > maxNoiseAmplitude || ampY < 0 || ampY > maxNoiseAmplitude {
			return core.InvalidParamf("noise amplitude must be in [0, %v]: x=%f y=%f",
				maxNoiseAmplitude, ampX, ampY)
		}
		n.ampX = ampX
		n.ampY = ampY
		return nil
	}
}

// WithNoiseSeed sets the deterministic random seed.
func WithNoiseSeed(seed int64) NoiseOption {
	return func(n *Noise) error {
		n.seed = seed
		return nil
	}
}

// NewNoise creates a noise stage with uniform jitter of 0.05 by default.
func NewNoise(opts ...NoiseOption) (*Noise, error) {
	n := &Noise{
		kind: NoiseUniform,
		ampX: 0.05,
		ampY: 0.05,
		seed: 1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Name returns the stage name.
func (n *Noise) Name() string { return "noise" }

// Validate checks stage parameters.
func (n *Noise) Validate() error {
	if n.kind != NoiseUniform && n.kind != NoiseGaussian {
		return core.InvalidParamf("noise kind must be uniform or gaussian: %d", n.kind)
	}
	if n.ampX < 0 || n.ampX > maxNoiseAmplitude || n.ampY < 0 || n.ampY > maxNoiseAmplitude {
		return core.InvalidParamf("noise amplitude must be in [0, %v]: x=%f y=%f",
			maxNoiseAmplitude, n.ampX, n.ampY)
	}
	return nil
}

// Apply adds jitter to both axes.
func (n *Noise) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	out := seq.Clone()
	rng := rand.New(rand.NewSource(n.seed))
	for i := range out.X {
		out.X[i] += n.draw(rng) * n.ampX
		out.Y[i] += n.draw(rng) * n.ampY
	}
	return out, nil
}

func (n *Noise) draw(rng *rand.Rand) float64 {
	if n.kind == NoiseGaussian {
		return rng.NormFloat64()
	}
	return rng.Float64()*2 - 1
}
