package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

func TestWriteHeaderAndPayload(t *testing.T) {
	seq := pattern.Sequence{
		X: []float64{0, 1, -1},
		Y: []float64{0.5, -0.5, 0},
	}
	var buf bytes.Buffer
	if err := Write(&buf, seq, 44100); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data := buf.Bytes()
	if got, want := len(data), 44+3*4; got != want {
		t.Fatalf("output size = %d, want %d", got, want)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		t.Fatalf("missing RIFF/WAVE markers")
	}
	if rate := binary.LittleEndian.Uint32(data[24:]); rate != 44100 {
		t.Fatalf("sample rate = %d, want 44100", rate)
	}
	if ch := binary.LittleEndian.Uint16(data[22:]); ch != 2 {
		t.Fatalf("channels = %d, want 2", ch)
	}

	// Frame 1: left = full scale, right = half negative.
	left := int16(binary.LittleEndian.Uint16(data[48:]))
	right := int16(binary.LittleEndian.Uint16(data[50:]))
	if left != 32767 {
		t.Fatalf("frame 1 left = %d, want 32767", left)
	}
	if right != -16383 {
		t.Fatalf("frame 1 right = %d, want -16383", right)
	}
}

func TestWriteClampsOutOfRange(t *testing.T) {
	seq := pattern.Sequence{X: []float64{2}, Y: []float64{-2}}
	var buf bytes.Buffer
	if err := Write(&buf, seq, 8000); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	data := buf.Bytes()
	left := int16(binary.LittleEndian.Uint16(data[44:]))
	right := int16(binary.LittleEndian.Uint16(data[46:]))
	if left != 32767 || right != -32767 {
		t.Fatalf("clamped frame = (%d, %d), want (32767, -32767)", left, right)
	}
}

func TestWriteValidation(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, pattern.Sequence{}, 44100); !errors.Is(err, core.ErrEmptySequence) {
		t.Fatalf("Write(empty) error = %v, want ErrEmptySequence", err)
	}
	if err := Write(&buf, pattern.Sequence{X: []float64{0}, Y: []float64{0}}, 0); !errors.Is(err, core.ErrInvalidParameter) {
		t.Fatalf("Write(rate=0) error = %v, want ErrInvalidParameter", err)
	}
}
