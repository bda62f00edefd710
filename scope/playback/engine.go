package playback

import (
	"encoding/binary"
	"math"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// Engine owns the playback session: the active sequence, the clock and the
// preview ring. The audio context is the sole writer of clock position and
// ring content through Render/Read; the preview loop reads snapshots only.
//
// Left channel carries X, right channel carries Y, values in [-1, 1].
type Engine struct {
	cfg core.Config

	// seq is swapped atomically so a generate action never exposes a
	// half-updated sequence to the audio context.
	seq atomic.Pointer[pattern.Sequence]

	mu        sync.Mutex
	clock     *Clock
	ring      *Ring
	lastX     float64
	lastY     float64
	underruns atomic.Uint64

	// scratch backs Read conversions. Only the audio context calls Read.
	scratch []float32
}

// NewEngine creates an engine with the given configuration.
func NewEngine(opts ...core.Option) (*Engine, error) {
	cfg := core.ApplyOptions(opts...)
	clock, err := NewClock(cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	ring, err := NewRing(cfg.RingCapacity)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, clock: clock, ring: ring}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() core.Config { return e.cfg }

// SetSequence swaps in a newly generated sequence. The sequence is cloned,
// the clock rebased to its length and the ring cleared, all before the swap
// becomes visible, so neither the audio context nor the preview loop ever
// observes a partial update. Playback state (playing or stopped) carries
// over.
func (e *Engine) SetSequence(seq pattern.Sequence) error {
	if seq.Len() == 0 {
		return core.ErrEmptySequence
	}
	if err := seq.Validate(); err != nil {
		return err
	}
	owned := seq.Clone()

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.clock.Rebase(owned.Len()); err != nil {
		return err
	}
	e.ring.Reset()
	e.seq.Store(&owned)
	return nil
}

// Start begins playback. Starting while already playing is a no-op. Without
// a sequence Start reports an empty-sequence error and leaves state
// untouched.
func (e *Engine) Start() error {
	seq := e.seq.Load()
	if seq == nil {
		return core.ErrEmptySequence
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock.Start(seq.Len())
}

// Stop halts playback, resets the clock to 0 and clears the preview ring.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.clock.Stop()
	e.ring.Reset()
}

// Playing reports whether playback is active.
func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock.Playing()
}

// Position returns the current sample position.
func (e *Engine) Position() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock.Position()
}

// Underruns returns how many pulled frames had no sequence data and were
// recovered by repeating the last emitted frame.
func (e *Engine) Underruns() uint64 { return e.underruns.Load() }

// Render fills dst with interleaved stereo float32 frames (left = X,
// right = Y) and returns the frame count. A stopped engine emits silence.
// If the sequence disappears mid-pull the last frame is repeated; the audio
// context is never blocked.
func (e *Engine) Render(dst []float32) int {
	frames := len(dst) / 2

	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.clock.Playing() {
		for i := range dst {
			dst[i] = 0
		}
		return frames
	}

	seq := e.seq.Load()
	for f := 0; f < frames; f++ {
		x, y := e.lastX, e.lastY
		if seq != nil && seq.Len() > 0 {
			pos := e.clock.Advance(1)
			x = seq.X[pos%seq.Len()]
			y = seq.Y[pos%seq.Len()]
		} else {
			// Recovery path for core.ErrBufferUnderrun conditions.
			e.underruns.Add(1)
		}
		e.lastX, e.lastY = x, y
		dst[2*f] = float32(x)
		dst[2*f+1] = float32(y)
		e.ring.PushPair(x, y)
	}
	return frames
}

// Snapshot returns the ring's valid window in chronological order.
func (e *Engine) Snapshot() (x, y []float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ring.Snapshot()
}

// ResizeRing reallocates the preview ring, discarding its content.
func (e *Engine) ResizeRing(capacity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ring.Resize(capacity)
}

// Read implements io.Reader for audio players that pull little-endian
// float32 stereo frames, such as an oto player. Partial frames at the end
// of p are left unfilled.
func (e *Engine) Read(p []byte) (int, error) {
	const frameBytes = 8
	frames := len(p) / frameBytes
	if frames == 0 {
		return 0, nil
	}
	if cap(e.scratch) < frames*2 {
		e.scratch = make([]float32, frames*2)
	}
	buf := e.scratch[:frames*2]
	e.Render(buf)
	for i, v := range buf {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	return frames * frameBytes, nil
}
