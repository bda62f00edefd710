package playback

import (
	"github.com/cwbudde/algo-scope/scope/core"
)

// Ring is a fixed-capacity circular buffer of XY pairs. It holds the most
// recent samples consumed by playback and is the data source for the live
// preview. Push never allocates after construction.
type Ring struct {
	x        []float64
	y        []float64
	writePos int
	valid    int
}

// NewRing returns a ring of fixed capacity in XY pairs.
func NewRing(capacity int) (*Ring, error) {
	if capacity <= 0 {
		return nil, core.InvalidParamf("ring capacity must be > 0: %d", capacity)
	}
	return &Ring{
		x: make([]float64, capacity),
		y: make([]float64, capacity),
	}, nil
}

// Cap returns the fixed capacity.
func (r *Ring) Cap() int { return len(r.x) }

// Len returns the number of valid pairs, at most Cap. Once the ring fills,
// Len stays at Cap and pushes overwrite oldest-first.
func (r *Ring) Len() int { return r.valid }

// Push appends k pairs in O(k), overwriting the oldest once full.
func (r *Ring) Push(x, y []float64) error {
	if len(x) != len(y) {
		return core.InvalidParamf("ring push x/y length mismatch: %d != %d", len(x), len(y))
	}
	capacity := len(r.x)
	for i := range x {
		r.x[r.writePos] = x[i]
		r.y[r.writePos] = y[i]
		r.writePos++
		if r.writePos >= capacity {
			r.writePos = 0
		}
	}
	r.valid += len(x)
	if r.valid > capacity {
		r.valid = capacity
	}
	return nil
}

// PushPair appends one pair.
func (r *Ring) PushPair(x, y float64) {
	r.x[r.writePos] = x
	r.y[r.writePos] = y
	r.writePos++
	if r.writePos >= len(r.x) {
		r.writePos = 0
	}
	if r.valid < len(r.x) {
		r.valid++
	}
}

// Snapshot copies the valid window in chronological order, oldest to
// newest. When the ring is full the window is the rotation
// [writePos, cap) ++ [0, writePos).
func (r *Ring) Snapshot() (x, y []float64) {
	x = make([]float64, r.valid)
	y = make([]float64, r.valid)
	if r.valid < len(r.x) {
		copy(x, r.x[:r.valid])
		copy(y, r.y[:r.valid])
		return x, y
	}
	n := copy(x, r.x[r.writePos:])
	copy(x[n:], r.x[:r.writePos])
	n = copy(y, r.y[r.writePos:])
	copy(y[n:], r.y[:r.writePos])
	return x, y
}

// Resize reallocates storage with a new capacity, discarding all content.
func (r *Ring) Resize(capacity int) error {
	if capacity <= 0 {
		return core.InvalidParamf("ring capacity must be > 0: %d", capacity)
	}
	r.x = make([]float64, capacity)
	r.y = make([]float64, capacity)
	r.writePos = 0
	r.valid = 0
	return nil
}

// Reset discards all content without reallocating.
func (r *Ring) Reset() {
	r.writePos = 0
	r.valid = 0
}
