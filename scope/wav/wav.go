// Package wav exports coordinate sequences as 16-bit PCM stereo WAV data.
// The left channel carries X and the right channel carries Y, matching the
// live audio output boundary.
package wav

import (
	"encoding/binary"
	"io"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

const (
	bitsPerSample = 16
	channels      = 2
	headerBytes   = 44
)

// Write encodes seq to w. Values outside [-1, 1] are clamped to the PCM
// range.
func Write(w io.Writer, seq pattern.Sequence, sampleRate int) error {
	if sampleRate <= 0 {
		return core.InvalidParamf("wav sample rate must be > 0: %d", sampleRate)
	}
	if err := seq.Validate(); err != nil {
		return err
	}

	dataBytes := seq.Len() * channels * bitsPerSample / 8
	if err := writeHeader(w, sampleRate, dataBytes); err != nil {
		return err
	}

	buf := make([]byte, 4)
	for i := 0; i < seq.Len(); i++ {
		binary.LittleEndian.PutUint16(buf[0:], uint16(pcm16(seq.X[i])))
		binary.LittleEndian.PutUint16(buf[2:], uint16(pcm16(seq.Y[i])))
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(w io.Writer, sampleRate, dataBytes int) error {
	blockAlign := channels * bitsPerSample / 8
	byteRate := sampleRate * blockAlign

	header := make([]byte, headerBytes)
	copy(header[0:], "RIFF")
	binary.LittleEndian.PutUint32(header[4:], uint32(headerBytes-8+dataBytes))
	copy(header[8:], "WAVE")
	copy(header[12:], "fmt ")
	binary.LittleEndian.PutUint32(header[16:], 16)
	binary.LittleEndian.PutUint16(header[20:], 1) // PCM
	binary.LittleEndian.PutUint16(header[22:], channels)
	binary.LittleEndian.PutUint32(header[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(header[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(header[34:], bitsPerSample)
	copy(header[36:], "data")
	binary.LittleEndian.PutUint32(header[40:], uint32(dataBytes))

	_, err := w.Write(header)
	return err
}

// pcm16 converts a float sample in [-1, 1] to a signed 16-bit PCM value.
func pcm16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(v * 32767)
}
