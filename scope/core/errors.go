package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks an out-of-range or missing generator or
	// effect parameter, reported before any pipeline work begins.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptySequence marks a generator or loader that produced
	// zero-length coordinates.
	ErrEmptySequence = errors.New("empty coordinate sequence")

	// ErrBufferUnderrun marks a playback pull that outran the generated
	// sequence. The engine recovers without blocking the audio context.
	ErrBufferUnderrun = errors.New("playback buffer underrun")
)

// InvalidParamf wraps ErrInvalidParameter with a formatted description.
// Messages name the component and parameter, e.g.
// "rotation speed must be in [0, 360]: -1".
func InvalidParamf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
