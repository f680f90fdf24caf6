package spectral

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-metrics/algorithms/framing"
	"github.com/RyanBlaney/sonido-metrics/algorithms/windowing"
)

// MFCC computes mel-frequency cepstral coefficients: mel filter bank
// energies, log compression, then a DCT-II to decorrelate.
type MFCC struct {
	sampleRate int
	params     MFCCParams

	spectrum   *Spectrum
	melScale   *MelScale
	filterBank [][]float64
	dctMatrix  [][]float64
	fftSize    int
}

// MFCCParams contains parameters for MFCC computation.
type MFCCParams struct {
	NumCoefficients int     `json:"num_coefficients"` // number of cepstral coefficients (default 13)
	NumMelFilters   int     `json:"num_mel_filters"`  // mel filter bank size (default 26)
	FrameSize       int     `json:"frame_size"`       // analysis frame in samples (default 2048)
	HopSize         int     `json:"hop_size"`         // hop between frames (default 512)
	LowFreq         float64 `json:"low_freq"`         // filter bank lower bound (default 0)
	HighFreq        float64 `json:"high_freq"`        // filter bank upper bound (default Nyquist)
	UseLiftering    bool    `json:"use_liftering"`    // sinusoidal liftering of higher coefficients
	LifterCoeff     float64 `json:"lifter_coeff"`     // liftering strength (default 22)
}

// NewMFCC creates an MFCC analyzer with default parameters.
func NewMFCC(sampleRate, numCoefficients int) (*MFCC, error) {
	return NewMFCCWithParams(sampleRate, MFCCParams{
		NumCoefficients: numCoefficients,
		UseLiftering:    true,
	})
}

// NewMFCCWithParams creates an MFCC analyzer with custom parameters,
// filling zero values with defaults.
func NewMFCCWithParams(sampleRate int, params MFCCParams) (*MFCC, error) {
	if params.NumCoefficients <= 0 {
		params.NumCoefficients = 13
	}
	if params.NumMelFilters <= 0 {
		params.NumMelFilters = 26
	}
	if params.FrameSize <= 0 {
		params.FrameSize = 2048
	}
	if params.HopSize <= 0 {
		params.HopSize = 512
	}
	if params.HighFreq <= 0 {
		params.HighFreq = float64(sampleRate) / 2.0
	}
	if params.LifterCoeff <= 0 {
		params.LifterCoeff = 22.0
	}

	spectrum, err := NewSpectrum(sampleRate)
	if err != nil {
		return nil, err
	}

	return &MFCC{
		sampleRate: sampleRate,
		params:     params,
		spectrum:   spectrum,
		melScale:   NewMelScale(),
	}, nil
}

// Params returns the effective parameters in use.
func (m *MFCC) Params() MFCCParams {
	return m.params
}

// ComputeSignal frames the signal (Hann window), computes per-frame
// coefficients, and returns them coefficient-major: result[c][t] is
// coefficient c of frame t. A signal shorter than one frame yields
// NumCoefficients empty rows.
func (m *MFCC) ComputeSignal(signal []float64) ([][]float64, error) {
	segmenter, err := framing.NewSegmenter(m.params.FrameSize, m.params.HopSize)
	if err != nil {
		return nil, err
	}
	window := windowing.NewHann(m.params.FrameSize)

	matrix := make([][]float64, m.params.NumCoefficients)
	for c := range matrix {
		matrix[c] = make([]float64, 0, segmenter.NumFrames(len(signal)))
	}

	for frame := range segmenter.Frames(signal) {
		windowed, err := window.Apply(frame)
		if err != nil {
			return nil, err
		}

		coeffs, err := m.Compute(m.spectrum.Magnitude(windowed))
		if err != nil {
			return nil, err
		}

		for c := range matrix {
			matrix[c] = append(matrix[c], coeffs[c])
		}
	}

	return matrix, nil
}

// Compute calculates the cepstral coefficients of a single one-sided
// magnitude spectrum.
func (m *MFCC) Compute(magnitudeSpectrum []float64) ([]float64, error) {
	if len(magnitudeSpectrum) == 0 {
		return nil, fmt.Errorf("spectral: empty magnitude spectrum")
	}

	fftSize := (len(magnitudeSpectrum) - 1) * 2
	if m.filterBank == nil || m.fftSize != fftSize {
		m.initialize(fftSize)
	}

	power := make([]float64, len(magnitudeSpectrum))
	for i, mag := range magnitudeSpectrum {
		power[i] = mag * mag
	}

	melSpectrum := m.melScale.Apply(power, m.filterBank)

	// Log compression with a floor to avoid log(0).
	logMel := make([]float64, len(melSpectrum))
	for i, mel := range melSpectrum {
		if mel > 0 {
			logMel[i] = math.Log(mel)
		} else {
			logMel[i] = math.Log(1e-10)
		}
	}

	coeffs := make([]float64, m.params.NumCoefficients)
	for k := range coeffs {
		sum := 0.0
		for n := 0; n < len(logMel) && n < len(m.dctMatrix[k]); n++ {
			sum += logMel[n] * m.dctMatrix[k][n]
		}
		coeffs[k] = sum
	}

	if m.params.UseLiftering {
		m.lifter(coeffs)
	}

	return coeffs, nil
}

// initialize builds the filter bank and DCT matrix for an FFT size.
func (m *MFCC) initialize(fftSize int) {
	m.filterBank = m.melScale.FilterBank(
		m.params.NumMelFilters, fftSize, m.sampleRate,
		m.params.LowFreq, m.params.HighFreq,
	)

	m.dctMatrix = make([][]float64, m.params.NumCoefficients)
	for k := range m.dctMatrix {
		row := make([]float64, m.params.NumMelFilters)
		scale := math.Sqrt(2.0 / float64(m.params.NumMelFilters))
		if k == 0 {
			scale = math.Sqrt(1.0 / float64(m.params.NumMelFilters))
		}
		for n := range row {
			row[n] = scale * math.Cos(math.Pi*float64(k)*(float64(n)+0.5)/float64(m.params.NumMelFilters))
		}
		m.dctMatrix[k] = row
	}

	m.fftSize = fftSize
}

// lifter applies sinusoidal liftering in place, leaving C0 untouched.
func (m *MFCC) lifter(coeffs []float64) {
	for i := 1; i < len(coeffs); i++ {
		coeffs[i] *= 1.0 + (m.params.LifterCoeff/2.0)*math.Sin(math.Pi*float64(i)/m.params.LifterCoeff)
	}
}
