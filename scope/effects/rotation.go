package effects

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// RotationMode selects how the rotation angle evolves.
type RotationMode int

const (
	// RotationOff is the identity transform.
	RotationOff RotationMode = iota
	// RotationStatic rotates by a constant angle.
	RotationStatic
	// RotationCCW advances the angle counterclockwise per pattern repeat.
	// Counterclockwise is the positive mathematical direction.
	RotationCCW
	// RotationCW advances the angle clockwise per pattern repeat.
	RotationCW
)

const maxRotationSpeed = 360.0

// Rotation applies a 2D rotation about the origin. In the spinning modes the
// angle advances by `speed` degrees per full pattern repeat, wrapping at 360.
type Rotation struct {
	mode     RotationMode
	angleDeg float64
	speedDeg float64
}

// RotationOption mutates rotation construction parameters.
type RotationOption func(*Rotation) error

// WithRotationAngle sets the static angle in degrees.
func WithRotationAngle(angleDeg float64) RotationOption {
	return func(r *Rotation) error {
		if !isFinite(angleDeg) {
			return core.InvalidParamf("rotation angle must be finite: %f", angleDeg)
		}
		r.angleDeg = angleDeg
		return nil
	}
}

// WithRotationSpeed sets degrees advanced per pattern repeat for the
// spinning modes.
func WithRotationSpeed(speedDeg float64) RotationOption {
	return func(r *Rotation) error {
		if speedDeg <= 0 || speedDeg > maxRotationSpeed || !isFinite(speedDeg) {
			return core.InvalidParamf("rotation speed must be in (0, %v]: %f", maxRotationSpeed, speedDeg)
		}
		r.speedDeg = speedDeg
		return nil
	}
}

// NewRotation creates a rotation stage.
func NewRotation(mode RotationMode, opts ...RotationOption) (*Rotation, error) {
	r := &Rotation{mode: mode, speedDeg: 1}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Name returns the stage name.
func (r *Rotation) Name() string { return "rotation" }

// Mode returns the rotation mode.
func (r *Rotation) Mode() RotationMode { return r.mode }

// AngleDeg returns the static angle in degrees.
func (r *Rotation) AngleDeg() float64 { return r.angleDeg }

// SpeedDeg returns degrees advanced per pattern repeat.
func (r *Rotation) SpeedDeg() float64 { return r.speedDeg }

// Validate checks stage parameters.
func (r *Rotation) Validate() error {
	switch r.mode {
	case RotationOff, RotationStatic, RotationCCW, RotationCW:
	default:
		return core.InvalidParamf("rotation mode out of range: %d", r.mode)
	}
	if !isFinite(r.angleDeg) {
		return core.InvalidParamf("rotation angle must be finite: %f", r.angleDeg)
	}
	if (r.mode == RotationCCW || r.mode == RotationCW) &&
		(r.speedDeg <= 0 || r.speedDeg > maxRotationSpeed) {
		return core.InvalidParamf("rotation speed must be in (0, %v]: %f", maxRotationSpeed, r.speedDeg)
	}
	return nil
}

// Apply rotates each sample by its pattern repeat's angle.
func (r *Rotation) Apply(seq pattern.Sequence, ctx *Context) (pattern.Sequence, error) {
	if r.mode == RotationOff {
		return seq.Clone(), nil
	}

	out := pattern.NewSequence(seq.Len())
	if r.mode == RotationStatic {
		sin, cos := math.Sincos(r.angleDeg * math.Pi / 180)
		rotateInto(out, seq, 0, seq.Len(), sin, cos)
		return out, nil
	}

	dir := 1.0
	if r.mode == RotationCW {
		dir = -1
	}
	frameLen := ctx.FrameLen
	if frameLen <= 0 {
		frameLen = seq.Len()
	}
	for start := 0; start < seq.Len(); start += frameLen {
		end := start + frameLen
		if end > seq.Len() {
			end = seq.Len()
		}
		angle := math.Mod(dir*r.speedDeg*float64(start/frameLen), 360)
		sin, cos := math.Sincos(angle * math.Pi / 180)
		rotateInto(out, seq, start, end, sin, cos)
	}
	return out, nil
}

func rotateInto(dst, src pattern.Sequence, start, end int, sin, cos float64) {
	for i := start; i < end; i++ {
		x, y := src.X[i], src.Y[i]
		dst.X[i] = x*cos - y*sin
		dst.Y[i] = x*sin + y*cos
	}
}
