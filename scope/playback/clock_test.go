package playback

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-scope/scope/core"
)

func TestClockRoundTripModulo(t *testing.T) {
	c, err := NewClock(1000)
	if err != nil {
		t.Fatalf("NewClock() error = %v", err)
	}
	if err := c.Start(333); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	// One simulated second: sampleRate * duration samples.
	advanced := 0
	for advanced < 1000 {
		c.Advance(100)
		advanced += 100
	}
	if got, want := c.Position(), 1000%333; got != want {
		t.Fatalf("Position() = %d, want %d", got, want)
	}
}

func TestClockStartIsIdempotent(t *testing.T) {
	c, err := NewClock(44100)
	if err != nil {
		t.Fatalf("NewClock() error = %v", err)
	}
	if err := c.Start(100); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	c.Advance(42)
	if err := c.Start(100); err != nil {
		t.Fatalf("Start() while playing error = %v", err)
	}
	if c.Position() != 42 {
		t.Fatalf("Start() while playing moved position to %d, want 42", c.Position())
	}
}

func TestClockStopResetsPosition(t *testing.T) {
	c, err := NewClock(44100)
	if err != nil {
		t.Fatalf("NewClock() error = %v", err)
	}
	if err := c.Start(100); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	c.Advance(50)
	c.Stop()
	if c.Playing() {
		t.Fatalf("Playing() = true after Stop()")
	}
	if c.Position() != 0 {
		t.Fatalf("Position() = %d after Stop(), want 0", c.Position())
	}
	// A stopped clock does not advance.
	c.Advance(10)
	if c.Position() != 0 {
		t.Fatalf("stopped clock advanced to %d", c.Position())
	}
}

func TestClockRejectsEmptyLoop(t *testing.T) {
	c, err := NewClock(44100)
	if err != nil {
		t.Fatalf("NewClock() error = %v", err)
	}
	if err := c.Start(0); !errors.Is(err, core.ErrEmptySequence) {
		t.Fatalf("Start(0) error = %v, want ErrEmptySequence", err)
	}
}
