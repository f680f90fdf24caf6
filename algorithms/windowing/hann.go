package windowing

import (
	"fmt"
	"math"
)

// Hann is a Hann (raised-cosine) window with precomputed coefficients.
type Hann struct {
	size         int
	coefficients []float64
}

// NewHann creates a periodic Hann window of the given size.
func NewHann(size int) *Hann {
	h := &Hann{size: size}
	h.coefficients = make([]float64, size)
	for i := range size {
		h.coefficients[i] = 0.5 * (1.0 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}

	return h
}

// Apply returns a windowed copy of the signal.
func (h *Hann) Apply(signal []float64) ([]float64, error) {
	if len(signal) != h.size {
		return nil, fmt.Errorf("windowing: signal length %d does not match window size %d", len(signal), h.size)
	}

	windowed := make([]float64, h.size)
	for i, sample := range signal {
		windowed[i] = sample * h.coefficients[i]
	}

	return windowed, nil
}

// Size returns the window length in samples.
func (h *Hann) Size() int {
	return h.size
}
