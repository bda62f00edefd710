// Package spectrum computes single-sided magnitude spectra of the generated
// channels for the scope's FFT display mode.
package spectrum

import (
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-scope/scope/core"
	"github.com/cwbudde/algo-scope/scope/pattern"
)

// Analyzer windows a channel with a Hann window, runs a forward FFT and
// returns single-sided magnitudes.
type Analyzer struct {
	sampleRate float64
	fftSize    int
	coeffs     []float64
}

// NewAnalyzer creates an analyzer. fftSize must be a power of two; 0 picks
// 4096.
func NewAnalyzer(sampleRate float64, fftSize int) (*Analyzer, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, core.InvalidParamf("analyzer sample rate must be > 0 and finite: %f", sampleRate)
	}
	if fftSize == 0 {
		fftSize = 4096
	}
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, core.InvalidParamf("analyzer fft size must be a power of two >= 2: %d", fftSize)
	}
	return &Analyzer{
		sampleRate: sampleRate,
		fftSize:    fftSize,
		coeffs:     hann(fftSize),
	}, nil
}

// SampleRate returns the sample rate in Hz.
func (a *Analyzer) SampleRate() float64 { return a.sampleRate }

// FFTSize returns the transform size.
func (a *Analyzer) FFTSize() int { return a.fftSize }

// BinWidth returns the frequency resolution in Hz per bin.
func (a *Analyzer) BinWidth() float64 {
	return a.sampleRate / float64(a.fftSize)
}

// Magnitudes returns |X[k]| for the non-negative-frequency bins
// [0..Nyquist] of one channel. Inputs shorter than the FFT size are
// zero-padded; longer inputs use the leading fftSize samples.
func (a *Analyzer) Magnitudes(channel []float64) ([]float64, error) {
	if len(channel) == 0 {
		return nil, core.ErrEmptySequence
	}

	windowed := make([]float64, a.fftSize)
	n := copy(windowed, channel)
	vecmath.MulBlockInPlace(windowed[:n], a.coeffs[:n])

	in := make([]complex128, a.fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}
	plan, err := algofft.NewPlan64(a.fftSize)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, a.fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	half := a.fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := 0; i < half; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	mags := make([]float64, half)
	vecmath.Magnitude(mags, re, im)
	return mags, nil
}

// Channels analyzes both axes of a sequence.
func (a *Analyzer) Channels(seq pattern.Sequence) (magX, magY []float64, err error) {
	if err := seq.Validate(); err != nil {
		return nil, nil, err
	}
	magX, err = a.Magnitudes(seq.X)
	if err != nil {
		return nil, nil, err
	}
	magY, err = a.Magnitudes(seq.Y)
	if err != nil {
		return nil, nil, err
	}
	return magX, magY, nil
}

// PeakBin returns the bin index and frequency of the largest magnitude.
// An empty input reports bin 0 at 0 Hz.
func (a *Analyzer) PeakBin(mags []float64) (bin int, freqHz float64) {
	if len(mags) == 0 {
		return 0, 0
	}
	for i, m := range mags {
		if m > mags[bin] {
			bin = i
		}
	}
	return bin, float64(bin) * a.BinWidth()
}

func hann(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return out
}
