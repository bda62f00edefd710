package pattern

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-scope/scope/core"
)

func TestStepSequencerEmptyIsError(t *testing.T) {
	s, err := NewStepSequencer()
	if err != nil {
		t.Fatalf("NewStepSequencer() error = %v", err)
	}
	if _, err := s.Sequence(); !errors.Is(err, core.ErrEmptySequence) {
		t.Fatalf("Sequence() error = %v, want ErrEmptySequence", err)
	}
}

func TestStepSequencerSingleSlotHoldsPoint(t *testing.T) {
	s, err := NewStepSequencer(WithSegmentSamples(64))
	if err != nil {
		t.Fatalf("NewStepSequencer() error = %v", err)
	}
	if err := s.SetSlot(5, 0.25, -0.5, 0); err != nil {
		t.Fatalf("SetSlot() error = %v", err)
	}
	seq, err := s.Sequence()
	if err != nil {
		t.Fatalf("Sequence() error = %v", err)
	}
	if seq.Len() != 64 {
		t.Fatalf("Sequence() length = %d, want 64", seq.Len())
	}
	for i := range seq.X {
		if seq.X[i] != 0.25 || seq.Y[i] != -0.5 {
			t.Fatalf("sample %d = (%v, %v), want held (0.25, -0.5)", i, seq.X[i], seq.Y[i])
		}
	}
}

func TestStepSequencerSkipsEmptySlots(t *testing.T) {
	s, err := NewStepSequencer(WithSegmentSamples(10))
	if err != nil {
		t.Fatalf("NewStepSequencer() error = %v", err)
	}
	if err := s.SetSlot(0, -1, 0, 0); err != nil {
		t.Fatalf("SetSlot() error = %v", err)
	}
	if err := s.SetSlot(9, 1, 0, 0); err != nil {
		t.Fatalf("SetSlot() error = %v", err)
	}
	seq, err := s.Sequence()
	if err != nil {
		t.Fatalf("Sequence() error = %v", err)
	}
	if seq.Len() != 20 {
		t.Fatalf("Sequence() length = %d, want 20 (two populated slots)", seq.Len())
	}

	// First segment interpolates from the last populated target back to the
	// first, so the loop closes.
	if seq.X[0] != 1 {
		t.Fatalf("first sample x = %v, want 1 (wrap from last slot)", seq.X[0])
	}
	if seq.X[9] != -1 {
		t.Fatalf("segment end x = %v, want -1", seq.X[9])
	}
	if seq.X[19] != 1 {
		t.Fatalf("last sample x = %v, want 1", seq.X[19])
	}
}

func TestStepSequencerOffsetDwells(t *testing.T) {
	s, err := NewStepSequencer(WithSegmentSamples(10))
	if err != nil {
		t.Fatalf("NewStepSequencer() error = %v", err)
	}
	if err := s.SetSlot(0, 0, 0, 0); err != nil {
		t.Fatalf("SetSlot() error = %v", err)
	}
	if err := s.SetSlot(1, 1, 1, 0.5); err != nil {
		t.Fatalf("SetSlot() error = %v", err)
	}
	seq, err := s.Sequence()
	if err != nil {
		t.Fatalf("Sequence() error = %v", err)
	}
	// Second segment dwells at the previous target for half its length.
	for i := 10; i < 15; i++ {
		if seq.X[i] != 0 {
			t.Fatalf("sample %d x = %v, want dwell at 0", i, seq.X[i])
		}
	}
	if seq.X[19] != 1 {
		t.Fatalf("segment end x = %v, want 1", seq.X[19])
	}
}

func TestStepSequencerValidation(t *testing.T) {
	s, err := NewStepSequencer()
	if err != nil {
		t.Fatalf("NewStepSequencer() error = %v", err)
	}
	if err := s.SetSlot(-1, 0, 0, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SetSlot(-1) error = %v, want ErrInvalidParameter", err)
	}
	if err := s.SetSlot(SequencerSlots, 0, 0, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SetSlot(16) error = %v, want ErrInvalidParameter", err)
	}
	if err := s.SetSlot(0, 0, 0, 1); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("SetSlot(offset=1) error = %v, want ErrInvalidParameter", err)
	}
	if _, err := NewStepSequencer(WithSegmentSamples(1)); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("WithSegmentSamples(1) error = %v, want ErrInvalidParameter", err)
	}
}
