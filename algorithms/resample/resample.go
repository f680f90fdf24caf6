package resample

import (
	"fmt"

	"github.com/mjibson/go-dsp/fft"
)

// Downsampler reduces a signal's sample rate with an ideal brick-wall
// low-pass in the frequency domain followed by decimation. When the
// original rate is not an exact multiple of the target rate, the floor
// of the ratio is used and the effective output rate is approximate.
type Downsampler struct {
	originalRate int
	targetRate   int
}

// NewDownsampler creates a downsampler from originalRate to targetRate.
func NewDownsampler(originalRate, targetRate int) (*Downsampler, error) {
	if originalRate <= 0 {
		return nil, fmt.Errorf("resample: original rate must be positive, got %d", originalRate)
	}
	if targetRate <= 0 {
		return nil, fmt.Errorf("resample: target rate must be positive, got %d", targetRate)
	}
	if targetRate > originalRate {
		return nil, fmt.Errorf("resample: target rate %d exceeds original rate %d", targetRate, originalRate)
	}

	return &Downsampler{
		originalRate: originalRate,
		targetRate:   targetRate,
	}, nil
}

// Factor returns the decimation factor, floor(original/target).
func (d *Downsampler) Factor() int {
	return d.originalRate / d.targetRate
}

// Process returns the downsampled signal: every bin above the target
// Nyquist is zeroed (symmetrically, preserving conjugate symmetry), the
// spectrum is inverted back to the time domain, and every Factor()-th
// sample is kept.
func (d *Downsampler) Process(signal []float64) []float64 {
	n := len(signal)
	if n == 0 {
		return []float64{}
	}

	spectrum := fft.FFTReal(signal)

	cutoff := float64(d.targetRate) / 2.0
	for i := range spectrum {
		// Bin i and bin n-i carry the same absolute frequency.
		bin := min(i, n-i)
		freq := float64(bin) * float64(d.originalRate) / float64(n)
		if freq > cutoff {
			spectrum[i] = 0
		}
	}

	filtered := fft.IFFT(spectrum)

	step := d.Factor()
	downsampled := make([]float64, 0, (n+step-1)/step)
	for i := 0; i < n; i += step {
		downsampled = append(downsampled, real(filtered[i]))
	}

	return downsampled
}
