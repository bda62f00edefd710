package pattern

import (
	"github.com/cwbudde/algo-scope/scope/core"
)

const (
	// SequencerSlots is the fixed number of step slots.
	SequencerSlots = 16

	defaultSegmentSamples = 128
	minSegmentSamples     = 2
	maxSegmentSamples     = 65536
)

// Slot is one step-sequencer position: an optional target point plus a dwell
// offset. Offset is the fraction of the slot's segment spent holding the
// previous target before interpolating toward this one.
type Slot struct {
	Active bool
	X      float64
	Y      float64
	Offset float64
}

// StepSequencer builds a looping sequence from up to 16 target points,
// concatenating linearly interpolated segments between populated slots in
// index order. Empty slots are skipped.
type StepSequencer struct {
	slots          [SequencerSlots]Slot
	segmentSamples int
}

// SequencerOption mutates step sequencer construction parameters.
type SequencerOption func(*StepSequencer) error

// WithSegmentSamples sets the per-segment sample count.
func WithSegmentSamples(samples int) SequencerOption {
	return func(s *StepSequencer) error {
		if samples < minSegmentSamples || samples > maxSegmentSamples {
			return core.InvalidParamf("sequencer segment samples must be in [%d, %d]: %d",
				minSegmentSamples, maxSegmentSamples, samples)
		}
		s.segmentSamples = samples
		return nil
	}
}

// NewStepSequencer creates an empty sequencer.
func NewStepSequencer(opts ...SequencerOption) (*StepSequencer, error) {
	s := &StepSequencer{segmentSamples: defaultSegmentSamples}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SetSlot populates slot i with a target point. Offset must be in [0, 1).
func (s *StepSequencer) SetSlot(i int, x, y, offset float64) error {
	if i < 0 || i >= SequencerSlots {
		return core.InvalidParamf("sequencer slot index must be in [0, %d): %d", SequencerSlots, i)
	}
	if !isFinite(x) || !isFinite(y) {
		return core.InvalidParamf("sequencer slot %d target must be finite", i)
	}
	if offset < 0 || offset >= 1 || !isFinite(offset) {
		return core.InvalidParamf("sequencer slot %d offset must be in [0, 1): %f", i, offset)
	}
	s.slots[i] = Slot{Active: true, X: x, Y: y, Offset: offset}
	return nil
}

// ClearSlot empties slot i.
func (s *StepSequencer) ClearSlot(i int) error {
	if i < 0 || i >= SequencerSlots {
		return core.InvalidParamf("sequencer slot index must be in [0, %d): %d", SequencerSlots, i)
	}
	s.slots[i] = Slot{}
	return nil
}

// Slot returns slot i. Out-of-range indices return an inactive slot.
func (s *StepSequencer) Slot(i int) Slot {
	if i < 0 || i >= SequencerSlots {
		return Slot{}
	}
	return s.slots[i]
}

// SegmentSamples returns the per-segment sample count.
func (s *StepSequencer) SegmentSamples() int { return s.segmentSamples }

// Sequence renders the populated slots into a closed looping sequence. One
// segment is emitted per populated slot, interpolating from the previous
// populated target (wrapping from the last back to the first, so the loop
// closes). A single populated slot yields that point held for one segment.
// All slots empty is an empty-sequence error.
func (s *StepSequencer) Sequence() (Sequence, error) {
	var active []Slot
	for _, slot := range s.slots {
		if slot.Active {
			active = append(active, slot)
		}
	}
	if len(active) == 0 {
		return Sequence{}, core.ErrEmptySequence
	}

	out := NewSequence(len(active) * s.segmentSamples)
	pos := 0
	for i, slot := range active {
		prev := active[(i-1+len(active))%len(active)]
		dwell := int(slot.Offset * float64(s.segmentSamples))
		for j := 0; j < s.segmentSamples; j++ {
			var t float64
			if j >= dwell && s.segmentSamples > dwell+1 {
				t = float64(j-dwell) / float64(s.segmentSamples-dwell-1)
			}
			out.X[pos] = prev.X + (slot.X-prev.X)*t
			out.Y[pos] = prev.Y + (slot.Y-prev.Y)*t
			pos++
		}
	}
	return out, nil
}
