package render

// Decimate reduces a point list to at most budget points by stride
// selection, preserving overall shape. Inputs at or under budget are copied
// unchanged. Decimation is the scheduler's responsibility so the renderer's
// cost stays bounded regardless of window size.
func Decimate(x, y []float64, budget int) (dx, dy []float64) {
	n := len(x)
	if budget <= 0 || n == 0 {
		return nil, nil
	}
	if n <= budget {
		dx = make([]float64, n)
		dy = make([]float64, n)
		copy(dx, x)
		copy(dy, y)
		return dx, dy
	}

	stride := (n + budget - 1) / budget
	count := (n + stride - 1) / stride
	dx = make([]float64, 0, count)
	dy = make([]float64, 0, count)
	for i := 0; i < n; i += stride {
		dx = append(dx, x[i])
		dy = append(dy, y[i])
	}
	return dx, dy
}
