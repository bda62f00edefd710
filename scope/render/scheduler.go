package render

import (
	"context"
	"time"

	"github.com/cwbudde/algo-scope/scope/core"
)

// Source is the playback-side view the scheduler reads. Snapshot must be
// safe to call concurrently with the audio context's pushes; the engine's
// copy-on-read snapshot satisfies this.
type Source interface {
	Snapshot() (x, y []float64)
	Playing() bool
	Position() int
}

// Frame is one decimated preview frame handed to the display layer.
type Frame struct {
	X, Y     []float64
	Playing  bool
	Position int
}

// FrameFunc consumes preview frames on the scheduler's goroutine.
type FrameFunc func(Frame)

// Scheduler runs the fixed-rate preview loop: pull the current ring window,
// decimate to the point budget, hand to the frame consumer. It never
// mutates audio-side state.
type Scheduler struct {
	src    Source
	rateHz float64
	budget int
}

// NewScheduler creates a preview scheduler over src.
func NewScheduler(src Source, opts ...core.Option) (*Scheduler, error) {
	if src == nil {
		return nil, core.InvalidParamf("scheduler source must not be nil")
	}
	cfg := core.ApplyOptions(opts...)
	return &Scheduler{
		src:    src,
		rateHz: cfg.PreviewRateHz,
		budget: cfg.PreviewPoints,
	}, nil
}

// RateHz returns the target frame rate.
func (s *Scheduler) RateHz() float64 { return s.rateHz }

// Budget returns the per-frame point budget.
func (s *Scheduler) Budget() int { return s.budget }

// Run drives fn at the configured rate until ctx is canceled. Frames are
// produced on the calling goroutine; a slow consumer skips ticks rather
// than queuing them.
func (s *Scheduler) Run(ctx context.Context, fn FrameFunc) error {
	if fn == nil {
		return core.InvalidParamf("scheduler frame func must not be nil")
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / s.rateHz))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(s.Pull())
		}
	}
}

// Pull produces a single decimated frame from the current ring window.
func (s *Scheduler) Pull() Frame {
	x, y := s.src.Snapshot()
	dx, dy := Decimate(x, y, s.budget)
	return Frame{
		X:        dx,
		Y:        dy,
		Playing:  s.src.Playing(),
		Position: s.src.Position(),
	}
}
