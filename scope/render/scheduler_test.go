package render

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cwbudde/algo-scope/scope/core"
)

type stubSource struct {
	x, y     []float64
	playing  bool
	position int
}

func (s *stubSource) Snapshot() (x, y []float64) { return s.x, s.y }
func (s *stubSource) Playing() bool              { return s.playing }
func (s *stubSource) Position() int              { return s.position }

func rampSource(n int) *stubSource {
	src := &stubSource{playing: true, position: 7}
	src.x = make([]float64, n)
	src.y = make([]float64, n)
	for i := range src.x {
		src.x[i] = float64(i)
		src.y[i] = float64(i)
	}
	return src
}

func TestDecimateUnderBudgetCopies(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	dx, dy := Decimate(x, y, 10)
	if len(dx) != 3 || len(dy) != 3 {
		t.Fatalf("Decimate() lengths = %d, %d, want 3, 3", len(dx), len(dy))
	}
	dx[0] = 42
	if x[0] == 42 {
		t.Fatalf("Decimate() aliases its input")
	}
}

func TestDecimateBoundsPointCount(t *testing.T) {
	src := rampSource(10000)
	dx, dy := Decimate(src.x, src.y, 2000)
	if len(dx) > 2000 {
		t.Fatalf("Decimate() produced %d points, budget 2000", len(dx))
	}
	if len(dx) != len(dy) {
		t.Fatalf("Decimate() x/y length mismatch: %d != %d", len(dx), len(dy))
	}
	// Endpoints region preserved: first point always kept.
	if dx[0] != 0 {
		t.Fatalf("first decimated point = %v, want 0", dx[0])
	}
}

func TestSchedulerPullDecimatesAndTagsState(t *testing.T) {
	src := rampSource(5000)
	s, err := NewScheduler(src, core.WithPreviewPoints(100))
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	frame := s.Pull()
	if len(frame.X) > 100 {
		t.Fatalf("frame holds %d points, budget 100", len(frame.X))
	}
	if !frame.Playing || frame.Position != 7 {
		t.Fatalf("frame state = (%v, %d), want (true, 7)", frame.Playing, frame.Position)
	}
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	src := rampSource(100)
	s, err := NewScheduler(src, core.WithPreviewRateHz(200))
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	frames := make(chan Frame, 64)
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx, func(f Frame) { frames <- f })
	}()

	select {
	case <-frames:
	case <-time.After(2 * time.Second):
		t.Fatalf("no frame produced within 2s")
	}
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Run() did not stop after cancel")
	}
}

func TestSchedulerValidation(t *testing.T) {
	if _, err := NewScheduler(nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("NewScheduler(nil) error = %v, want ErrInvalidParameter", err)
	}
	src := rampSource(10)
	s, err := NewScheduler(src)
	if err != nil {
		t.Fatalf("NewScheduler() error = %v", err)
	}
	if err := s.Run(context.Background(), nil); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Run(nil) error = %v, want ErrInvalidParameter", err)
	}
}
