// Package effects transforms 2D coordinate sequences through an ordered,
// fixed pipeline of per-stage value objects. Stage order is significant:
// later stages operate on the geometrically and amplitude-transformed output
// of earlier ones, and reordering is not a supported configuration.
package effects

import (
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// Context carries shared per-run state handed to each stage.
type Context struct {
	// SampleRate is the audio sample rate defining the synthetic time axis
	// t = index / SampleRate.
	SampleRate float64

	// FrameLen is the sample count of one pattern repeat at this point in
	// the chain. Structural stages that change sequence length update it.
	FrameLen int
}

// frameIndex returns the pattern-repeat counter for an absolute sample index.
func (c *Context) frameIndex(i int) int {
	if c.FrameLen <= 0 {
		return 0
	}
	return i / c.FrameLen
}

// Stage is one transformation of the effect pipeline. Apply consumes an
// input sequence and produces a new owned output; implementations never
// mutate the input.
type Stage interface {
	Name() string
	Validate() error
	Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error)
}
