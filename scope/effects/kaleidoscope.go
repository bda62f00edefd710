package effects

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

const (
	defaultKaleidoscopeSections = 4
	maxKaleidoscopeSections     = 32
)

// Kaleidoscope replicates the sequence into angular copies around the
// origin, 2*pi/sections apart, optionally adding a mirrored copy per
// section. Output length multiplies by sections (twice that with
// mirroring).
type Kaleidoscope struct {
	sections int
	mirror   bool
}

// KaleidoscopeOption mutates kaleidoscope construction parameters.
type KaleidoscopeOption func(*Kaleidoscope) error

// WithKaleidoscopeSections sets the number of angular copies.
func WithKaleidoscopeSections(sections int) KaleidoscopeOption {
	return func(k *Kaleidoscope) error {
		if sections < 1 || sections > maxKaleidoscopeSections {
			return core.InvalidParamf("kaleidoscope sections must be in [1, %d]: %d",
				maxKaleidoscopeSections, sections)
		}
		k.sections = sections
		return nil
	}
}

// WithKaleidoscopeMirror adds a reflected copy per section.
func WithKaleidoscopeMirror(mirror bool) KaleidoscopeOption {
	return func(k *Kaleidoscope) error {
		k.mirror = mirror
		return nil
	}
}

// NewKaleidoscope creates a kaleidoscope stage.
func NewKaleidoscope(opts ...KaleidoscopeOption) (*Kaleidoscope, error) {
	k := &Kaleidoscope{sections: defaultKaleidoscopeSections}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(k); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Name returns the stage name.
func (k *Kaleidoscope) Name() string { return "kaleidoscope" }

// Sections returns the number of angular copies.
func (k *Kaleidoscope) Sections() int { return k.sections }

// Mirrored reports whether alternate reflected copies are added.
func (k *Kaleidoscope) Mirrored() bool { return k.mirror }

// Validate checks stage parameters.
func (k *Kaleidoscope) Validate() error {
	if k.sections < 1 || k.sections > maxKaleidoscopeSections {
		return core.InvalidParamf("kaleidoscope sections must be in [1, %d]: %d",
			maxKaleidoscopeSections, k.sections)
	}
	return nil
}

// Apply concatenates the rotated (and optionally mirrored) copies.
func (k *Kaleidoscope) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	n := seq.Len()
	copies := k.sections
	if k.mirror {
		copies *= 2
	}
	out := pattern.NewSequence(n * copies)

	pos := 0
	for s := 0; s < k.sections; s++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(s) / float64(k.sections))
		for i := 0; i < n; i++ {
			out.X[pos] = seq.X[i]*cos - seq.Y[i]*sin
			out.Y[pos] = seq.X[i]*sin + seq.Y[i]*cos
			pos++
		}
		if k.mirror {
			for i := 0; i < n; i++ {
				out.X[pos] = seq.X[i]*cos + seq.Y[i]*sin
				out.Y[pos] = -seq.X[i]*sin + seq.Y[i]*cos
				pos++
			}
		}
	}
	return out, nil
}
