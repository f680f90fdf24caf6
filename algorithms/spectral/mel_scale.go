package spectral

import (
	"math"
)

// MelScale provides mel frequency conversion and mel filter banks for
// cepstral analysis.
type MelScale struct{}

// NewMelScale creates a new mel scale converter.
func NewMelScale() *MelScale {
	return &MelScale{}
}

// HzToMel converts a frequency in Hz to the mel scale.
func (ms *MelScale) HzToMel(hz float64) float64 {
	return 2595.0 * math.Log10(1.0+hz/700.0)
}

// MelToHz converts a mel value back to Hz.
func (ms *MelScale) MelToHz(mel float64) float64 {
	return 700.0 * (math.Pow(10.0, mel/2595.0) - 1.0)
}

// FilterBank builds numFilters triangular filters equally spaced on the
// mel scale between lowFreq and highFreq, each spanning fftSize/2+1
// one-sided bins.
func (ms *MelScale) FilterBank(numFilters, fftSize, sampleRate int, lowFreq, highFreq float64) [][]float64 {
	if numFilters <= 0 || fftSize <= 0 {
		return nil
	}

	lowMel := ms.HzToMel(lowFreq)
	highMel := ms.HzToMel(highFreq)
	melStep := (highMel - lowMel) / float64(numFilters+1)

	binPoints := make([]int, numFilters+2)
	for i := range binPoints {
		hz := ms.MelToHz(lowMel + float64(i)*melStep)
		bin := int(math.Floor((float64(fftSize)+1.0)*hz/float64(sampleRate) + 0.5))
		binPoints[i] = min(bin, fftSize/2)
	}

	bank := make([][]float64, numFilters)
	for m := range numFilters {
		filter := make([]float64, fftSize/2+1)
		left, center, right := binPoints[m], binPoints[m+1], binPoints[m+2]

		for k := left; k < center && k < len(filter); k++ {
			if center != left {
				filter[k] = float64(k-left) / float64(center-left)
			}
		}
		for k := center; k < right && k < len(filter); k++ {
			if right != center {
				filter[k] = float64(right-k) / float64(right-center)
			}
		}

		bank[m] = filter
	}

	return bank
}

// Apply projects a power spectrum onto the filter bank, returning one
// energy per filter.
func (ms *MelScale) Apply(powerSpectrum []float64, bank [][]float64) []float64 {
	melSpectrum := make([]float64, len(bank))
	for i, filter := range bank {
		sum := 0.0
		for j := 0; j < len(filter) && j < len(powerSpectrum); j++ {
			sum += powerSpectrum[j] * filter[j]
		}
		melSpectrum[i] = sum
	}

	return melSpectrum
}
