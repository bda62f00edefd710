package effects

import (
	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// MirrorMode selects the reflection layout.
type MirrorMode int

const (
	// MirrorAxis appends the Y-reflected copy, doubling length.
	MirrorAxis MirrorMode = iota
	// MirrorQuad appends reflections about both axes and the origin,
	// quadrupling length.
	MirrorQuad
)

// Mirror appends axis-reflected copies of the sequence, symmetric about the
// origin.
type Mirror struct {
	mode MirrorMode
}

// NewMirror creates a mirror stage.
func NewMirror(mode MirrorMode) (*Mirror, error) {
	m := &Mirror{mode: mode}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the stage name.
func (m *Mirror) Name() string { return "mirror" }

// Mode returns the reflection layout.
func (m *Mirror) Mode() MirrorMode { return m.mode }

// Validate checks stage parameters.
func (m *Mirror) Validate() error {
	if m.mode != MirrorAxis && m.mode != MirrorQuad {
		return core.InvalidParamf("mirror mode must be axis or quad: %d", m.mode)
	}
	return nil
}

// Apply appends the reflected copies. Output length is 2x (axis) or 4x
// (quad) the input length.
func (m *Mirror) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	n := seq.Len()
	copies := 2
	if m.mode == MirrorQuad {
		copies = 4
	}
	out := pattern.NewSequence(n * copies)

	copy(out.X[:n], seq.X)
	copy(out.Y[:n], seq.Y)
	for i := 0; i < n; i++ {
		out.X[n+i] = seq.X[i]
		out.Y[n+i] = -seq.Y[i]
	}
	if m.mode == MirrorQuad {
		for i := 0; i < n; i++ {
			out.X[2*n+i] = -seq.X[i]
			out.Y[2*n+i] = -seq.Y[i]
			out.X[3*n+i] = -seq.X[i]
			out.Y[3*n+i] = seq.Y[i]
		}
	}

	ctx.FrameLen = out.Len()
	return out, nil
}
