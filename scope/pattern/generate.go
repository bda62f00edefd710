package pattern

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-scope/scope/core"
)

const (
	// DefaultHarmonicSamples is the natural length of harmonic patterns,
	// one closed period at typical display density.
	DefaultHarmonicSamples = 1000

	// DefaultSpiralSamples is the natural length of spiral patterns.
	DefaultSpiralSamples = 2000

	randomAmpLow  = 0.3
	randomAmpHigh = 1.0
	maxRandomFreq = 9
)

// Harmonic is one sinusoidal term of a harmonic-sum pattern.
type Harmonic struct {
	Amplitude float64
	Frequency float64
	Phase     float64
}

// Generator creates deterministic coordinate sequences from a shared
// configuration.
type Generator struct {
	cfg  core.Config
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for random-harmonic and
// noise-driven patterns.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured pattern generator.
func NewGenerator(opts ...core.Option) *Generator {
	return &Generator{
		cfg:  core.ApplyOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a generator with pattern-specific options.
func NewGeneratorWithOptions(coreOpts []core.Option, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator configuration.
func (g *Generator) Config() core.Config {
	return g.cfg
}

// Harmonics renders X(t) = sum A*sin(f*t + phi) and the analogous Y sum
// over one period t in [0, 2*pi). Integer frequency ratios yield closed
// Lissajous curves.
func (g *Generator) Harmonics(xs, ys []Harmonic, samples int) (Sequence, error) {
	if samples <= 0 {
		samples = DefaultHarmonicSamples
	}
	if err := validateHarmonics("x", xs); err != nil {
		return Sequence{}, err
	}
	if err := validateHarmonics("y", ys); err != nil {
		return Sequence{}, err
	}

	out := NewSequence(samples)
	step := 2 * math.Pi / float64(samples)
	for i := 0; i < samples; i++ {
		t := step * float64(i)
		out.X[i] = sumHarmonics(xs, t)
		out.Y[i] = sumHarmonics(ys, t)
	}
	return out, nil
}

// Spiral renders an Archimedean spiral r = a + b*theta over turns full
// revolutions, normalized to the display range. turns = 0 degenerates to a
// single repeated point, which is valid output.
func (g *Generator) Spiral(a, b, turns float64, samples int) (Sequence, error) {
	if samples <= 0 {
		samples = DefaultSpiralSamples
	}
	if turns < 0 || !isFinite(turns) {
		return Sequence{}, core.InvalidParamf("spiral turns must be >= 0: %f", turns)
	}
	if !isFinite(a) || !isFinite(b) {
		return Sequence{}, core.InvalidParamf("spiral coefficients must be finite: a=%f b=%f", a, b)
	}

	out := NewSequence(samples)
	thetaMax := turns * 2 * math.Pi
	var step float64
	if samples > 1 {
		step = thetaMax / float64(samples-1)
	}
	for i := 0; i < samples; i++ {
		theta := step * float64(i)
		r := a + b*theta
		out.X[i] = r * math.Cos(theta)
		out.Y[i] = r * math.Sin(theta)
	}
	return NormalizeJoint(out), nil
}

// RandomHarmonics draws a random harmonic-sum pattern: an integer frequency
// for each term in [1, 9], amplitudes in [0.3, 1] and phases in [0, 2*pi).
// The result is normalized to the display range. Two generators with equal
// seeds produce identical patterns.
func (g *Generator) RandomHarmonics(terms, samples int) (Sequence, error) {
	if terms <= 0 {
		return Sequence{}, core.InvalidParamf("random harmonics terms must be > 0: %d", terms)
	}
	rng := rand.New(rand.NewSource(g.seed))
	xs := drawHarmonics(rng, terms)
	ys := drawHarmonics(rng, terms)
	seq, err := g.Harmonics(xs, ys, samples)
	if err != nil {
		return Sequence{}, err
	}
	return NormalizeJoint(seq), nil
}

// Circle renders a unit circle, the basic XY calibration pattern.
func (g *Generator) Circle(samples int) (Sequence, error) {
	return g.Lissajous(1, 1, math.Pi/2, samples)
}

// Lissajous renders x = sin(fx*t + phase), y = sin(fy*t) over one period.
func (g *Generator) Lissajous(fx, fy int, phase float64, samples int) (Sequence, error) {
	if fx <= 0 || fy <= 0 {
		return Sequence{}, core.InvalidParamf("lissajous frequencies must be > 0: fx=%d fy=%d", fx, fy)
	}
	return g.Harmonics(
		[]Harmonic{{Amplitude: 1, Frequency: float64(fx), Phase: phase}},
		[]Harmonic{{Amplitude: 1, Frequency: float64(fy)}},
		samples,
	)
}

// Diagonal renders a straight line from (-1,-1) to (1,1).
func (g *Generator) Diagonal(samples int) (Sequence, error) {
	if samples <= 0 {
		samples = DefaultHarmonicSamples
	}
	out := NewSequence(samples)
	var step float64
	if samples > 1 {
		step = 2 / float64(samples-1)
	}
	for i := 0; i < samples; i++ {
		v := -1 + step*float64(i)
		out.X[i] = v
		out.Y[i] = v
	}
	return out, nil
}

// Cross renders a horizontal then vertical sweep through the origin.
func (g *Generator) Cross(samples int) (Sequence, error) {
	if samples <= 0 {
		samples = DefaultHarmonicSamples
	}
	out := NewSequence(samples)
	half := samples / 2
	for i := 0; i < samples; i++ {
		if i < half {
			out.X[i] = sweep(i, half)
		} else {
			out.Y[i] = sweep(i-half, samples-half)
		}
	}
	return out, nil
}

func sweep(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return -1 + 2*float64(i)/float64(n-1)
}

func sumHarmonics(terms []Harmonic, t float64) float64 {
	sum := 0.0
	for _, h := range terms {
		sum += h.Amplitude * math.Sin(h.Frequency*t+h.Phase)
	}
	return sum
}

func drawHarmonics(rng *rand.Rand, terms int) []Harmonic {
	out := make([]Harmonic, terms)
	for i := range out {
		out[i] = Harmonic{
			Amplitude: randomAmpLow + rng.Float64()*(randomAmpHigh-randomAmpLow),
			Frequency: float64(1 + rng.Intn(maxRandomFreq)),
			Phase:     rng.Float64() * 2 * math.Pi,
		}
	}
	return out
}

func validateHarmonics(axis string, terms []Harmonic) error {
	if len(terms) == 0 {
		return core.InvalidParamf("harmonics %s term list must not be empty", axis)
	}
	for i, h := range terms {
		if h.Frequency <= 0 || !isFinite(h.Frequency) {
			return core.InvalidParamf("harmonics %s frequency %d must be > 0: %f", axis, i, h.Frequency)
		}
		if !isFinite(h.Amplitude) || !isFinite(h.Phase) {
			return core.InvalidParamf("harmonics %s term %d must be finite", axis, i)
		}
	}
	return nil
}
