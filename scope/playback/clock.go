// Package playback advances generated coordinate sequences in real time and
// exposes them to the audio output and the live preview.
package playback

import (
	"github.com/cwbudde/algo-scope/scope/core"
)

// Clock is the authoritative sample-position cursor. It advances at the
// audio sample rate during active playback, independent of any rendering
// cadence, and wraps sample-accurately at the sequence length.
type Clock struct {
	sampleRate float64
	length     int
	position   int
	playing    bool
}

// NewClock creates a stopped clock.
func NewClock(sampleRate float64) (*Clock, error) {
	if sampleRate <= 0 {
		return nil, core.InvalidParamf("clock sample rate must be > 0: %f", sampleRate)
	}
	return &Clock{sampleRate: sampleRate}, nil
}

// Start begins playback over a sequence of the given length. Starting while
// already playing is a no-op.
func (c *Clock) Start(length int) error {
	if length <= 0 {
		return core.ErrEmptySequence
	}
	if c.playing {
		return nil
	}
	c.length = length
	c.position = 0
	c.playing = true
	return nil
}

// Stop halts playback and resets the position to 0.
func (c *Clock) Stop() {
	c.playing = false
	c.position = 0
}

// Rebase swaps the loop length without stopping, resetting the position.
// Used when a new sequence is swapped in during playback.
func (c *Clock) Rebase(length int) error {
	if length <= 0 {
		return core.ErrEmptySequence
	}
	c.length = length
	c.position = 0
	return nil
}

// Advance moves the cursor n samples forward, wrapping at the sequence
// length, and returns the position before the advance. Advancing a stopped
// clock is a no-op.
func (c *Clock) Advance(n int) int {
	pos := c.position
	if !c.playing || c.length == 0 || n <= 0 {
		return pos
	}
	c.position = (c.position + n) % c.length
	return pos
}

// Position returns the current sample position.
func (c *Clock) Position() int { return c.position }

// Length returns the loop length in samples.
func (c *Clock) Length() int { return c.length }

// Playing reports whether the clock is running.
func (c *Clock) Playing() bool { return c.playing }

// SampleRate returns the sample rate in Hz.
func (c *Clock) SampleRate() float64 { return c.sampleRate }
