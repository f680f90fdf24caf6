package spectral

import (
	"fmt"
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// Spectrum computes one-sided magnitude spectra and their frequency
// bins, with rfft semantics: for a length-n signal the spectrum holds
// n/2+1 bins and bin i sits at frequency i*sampleRate/n.
type Spectrum struct {
	sampleRate int
}

// NewSpectrum creates a spectrum calculator for the given sample rate.
func NewSpectrum(sampleRate int) (*Spectrum, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectral: sample rate must be positive, got %d", sampleRate)
	}

	return &Spectrum{sampleRate: sampleRate}, nil
}

// SampleRate returns the sample rate the calculator was built for.
func (s *Spectrum) SampleRate() int {
	return s.sampleRate
}

// Magnitude returns the one-sided magnitude spectrum of the signal.
func (s *Spectrum) Magnitude(signal []float64) []float64 {
	if len(signal) == 0 {
		return []float64{}
	}

	bins := fft.FFTReal(signal)
	half := len(signal)/2 + 1

	magnitude := make([]float64, half)
	for i := range half {
		magnitude[i] = math.Hypot(real(bins[i]), imag(bins[i]))
	}

	return magnitude
}

// FrequencyBins returns the center frequency of each one-sided bin for
// a signal of the given length.
func (s *Spectrum) FrequencyBins(signalLen int) []float64 {
	if signalLen <= 0 {
		return []float64{}
	}

	half := signalLen/2 + 1
	freqs := make([]float64, half)
	for i := range half {
		freqs[i] = float64(i) * float64(s.sampleRate) / float64(signalLen)
	}

	return freqs
}
