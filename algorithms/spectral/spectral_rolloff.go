package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// SpectralRolloff computes the frequency below which a given fraction
// of the total spectral magnitude is contained.
type SpectralRolloff struct {
	spectrum *Spectrum
}

// NewSpectralRolloff creates a spectral rolloff analyzer.
func NewSpectralRolloff(sampleRate int) (*SpectralRolloff, error) {
	spectrum, err := NewSpectrum(sampleRate)
	if err != nil {
		return nil, err
	}

	return &SpectralRolloff{spectrum: spectrum}, nil
}

// Compute returns the frequency of the first bin whose cumulative
// magnitude reaches percent of the spectrum total. percent must lie in
// (0, 1]. A silent signal yields NaN.
func (sr *SpectralRolloff) Compute(signal []float64, percent float64) (float64, error) {
	if percent <= 0 || percent > 1 {
		return 0, fmt.Errorf("spectral: rolloff percent must be in (0, 1], got %g", percent)
	}

	magnitude := sr.spectrum.Magnitude(signal)
	total := floats.Sum(magnitude)
	if total == 0 {
		return math.NaN(), nil
	}

	cumulative := make([]float64, len(magnitude))
	floats.CumSum(cumulative, magnitude)

	freqs := sr.spectrum.FrequencyBins(len(signal))
	target := percent * total
	for i, sum := range cumulative {
		if sum >= target {
			return freqs[i], nil
		}
	}

	// Reached only through floating-point shortfall on the last bin.
	return freqs[len(freqs)-1], nil
}
