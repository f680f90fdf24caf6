package stats

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"
)

// AutoCorrelation computes the auto-correlation of a signal with itself.
// The full two-sided correlation is computed via the convolution theorem
// (FFT of the zero-padded signal, squared magnitude, inverse FFT), which
// keeps the cost at O(n log n) for long signals.
type AutoCorrelation struct{}

// NewAutoCorrelation creates a new auto-correlation calculator.
func NewAutoCorrelation() *AutoCorrelation {
	return &AutoCorrelation{}
}

// Compute returns the non-negative-lag half of the full auto-correlation.
// The result has one entry per lag 0..len(signal)-1; lag 0 carries the
// signal's self-energy and is the global maximum.
func (ac *AutoCorrelation) Compute(signal []float64) ([]float64, error) {
	n := len(signal)
	if n == 0 {
		return nil, fmt.Errorf("stats: empty signal provided")
	}

	// Zero-pad to at least 2n-1 to avoid circular wrap-around.
	fftSize := nextPowerOf2(2*n - 1)
	padded := make([]float64, fftSize)
	copy(padded, signal)

	spectrum := fft.FFTReal(padded)

	power := make([]complex128, fftSize)
	for i, bin := range spectrum {
		mag := real(bin)*real(bin) + imag(bin)*imag(bin)
		power[i] = complex(mag, 0)
	}

	correlation := fft.IFFT(power)

	result := make([]float64, n)
	for i := range n {
		result[i] = real(correlation[i])
	}

	return result, nil
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}

	return size
}
