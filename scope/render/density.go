// Package render converts point clouds into display-ready frames: density
// weighting for static renders, decimation and fixed-rate scheduling for the
// live preview.
package render

import (
	"math"

	"github.com/cwbudde/algo-scope/scope/core"
)

const (
	// DefaultGridSize is the density histogram resolution per axis.
	DefaultGridSize = 200
	// DefaultGamma compresses the density dynamic range.
	DefaultGamma = 0.5
	// DefaultBaseOpacity is the floor opacity of the faintest points.
	DefaultBaseOpacity = 0.3

	maxGridSize = 4096

	// The histogram covers a fixed window slightly beyond the nominal
	// [-1, 1] signal range so effect overshoot stays visible.
	gridMin = -1.5
	gridMax = 1.5
)

// DensityRenderer maps a point cloud to per-point brightness and opacity,
// approximating phosphor persistence: points in densely revisited bins glow
// brighter. This weighting runs only for static renders; the live preview
// draws flat-colored points for frame-rate stability.
type DensityRenderer struct {
	gridSize    int
	gamma       float64
	baseOpacity float64
}

// DensityOption mutates density renderer construction parameters.
type DensityOption func(*DensityRenderer) error

// WithGridSize sets the histogram resolution per axis.
func WithGridSize(size int) DensityOption {
	return func(d *DensityRenderer) error {
		if size < 1 || size > maxGridSize {
			return core.InvalidParamf("density grid size must be in [1, %d]: %d", maxGridSize, size)
		}
		d.gridSize = size
		return nil
	}
}

// WithGamma sets the dynamic-range compression exponent.
func WithGamma(gamma float64) DensityOption {
	return func(d *DensityRenderer) error {
		if gamma <= 0 || math.IsNaN(gamma) || math.IsInf(gamma, 0) {
			return core.InvalidParamf("density gamma must be > 0 and finite: %f", gamma)
		}
		d.gamma = gamma
		return nil
	}
}

// WithBaseOpacity sets the opacity floor in [0, 1].
func WithBaseOpacity(base float64) DensityOption {
	return func(d *DensityRenderer) error {
		if base < 0 || base > 1 || math.IsNaN(base) {
			return core.InvalidParamf("density base opacity must be in [0, 1]: %f", base)
		}
		d.baseOpacity = base
		return nil
	}
}

// NewDensityRenderer creates a renderer with the documented defaults.
func NewDensityRenderer(opts ...DensityOption) (*DensityRenderer, error) {
	d := &DensityRenderer{
		gridSize:    DefaultGridSize,
		gamma:       DefaultGamma,
		baseOpacity: DefaultBaseOpacity,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// GridSize returns the histogram resolution per axis.
func (d *DensityRenderer) GridSize() int { return d.gridSize }

// Gamma returns the compression exponent.
func (d *DensityRenderer) Gamma() float64 { return d.gamma }

// BaseOpacity returns the opacity floor.
func (d *DensityRenderer) BaseOpacity() float64 { return d.baseOpacity }

// Render computes per-point brightness and opacity for the cloud. The
// histogram is transient; nothing persists between calls. A degenerate
// cloud (empty, or all points in one bin) degrades to uniform full
// brightness rather than failing.
func (d *DensityRenderer) Render(x, y []float64) (brightness, opacity []float64, err error) {
	if len(x) != len(y) {
		return nil, nil, core.InvalidParamf("density x/y length mismatch: %d != %d", len(x), len(y))
	}
	n := len(x)
	brightness = make([]float64, n)
	opacity = make([]float64, n)
	if n == 0 {
		return brightness, opacity, nil
	}

	counts := make([]int, d.gridSize*d.gridSize)
	bins := make([]int, n)
	for i := 0; i < n; i++ {
		bx := d.binIndex(x[i])
		by := d.binIndex(y[i])
		bin := by*d.gridSize + bx
		bins[i] = bin
		counts[bin]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	for i := 0; i < n; i++ {
		norm := 1.0
		if maxCount > 0 {
			norm = float64(counts[bins[i]]) / float64(maxCount)
		}
		norm = math.Pow(norm, d.gamma)
		brightness[i] = 0.5 + 0.5*norm
		opacity[i] = d.baseOpacity + (1-d.baseOpacity)*norm
	}
	return brightness, opacity, nil
}

// binIndex maps a coordinate into [0, gridSize). Out-of-window values land
// in the edge bins.
func (d *DensityRenderer) binIndex(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	idx := int((v - gridMin) / (gridMax - gridMin) * float64(d.gridSize))
	if idx < 0 {
		return 0
	}
	if idx >= d.gridSize {
		return d.gridSize - 1
	}
	return idx
}
