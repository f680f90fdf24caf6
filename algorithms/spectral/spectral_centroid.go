package spectral

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SpectralCentroid computes the magnitude-weighted mean frequency of a
// signal's spectrum, a brightness measure.
type SpectralCentroid struct {
	spectrum *Spectrum
}

// NewSpectralCentroid creates a spectral centroid analyzer.
func NewSpectralCentroid(sampleRate int) (*SpectralCentroid, error) {
	spectrum, err := NewSpectrum(sampleRate)
	if err != nil {
		return nil, err
	}

	return &SpectralCentroid{spectrum: spectrum}, nil
}

// Compute returns the spectral centroid of the signal in Hz. A silent
// (or empty) signal has no spectral mass and yields NaN.
func (sc *SpectralCentroid) Compute(signal []float64) float64 {
	magnitude := sc.spectrum.Magnitude(signal)
	total := floats.Sum(magnitude)
	if total == 0 {
		return math.NaN()
	}

	freqs := sc.spectrum.FrequencyBins(len(signal))
	weighted := 0.0
	for i, mag := range magnitude {
		weighted += freqs[i] * mag
	}

	return weighted / total
}
