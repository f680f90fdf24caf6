package features

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-metrics/algorithms/speech"
	"github.com/RyanBlaney/sonido-metrics/algorithms/spectral"
	"github.com/RyanBlaney/sonido-metrics/algorithms/temporal"
	"github.com/RyanBlaney/sonido-metrics/algorithms/tonal"
	"github.com/RyanBlaney/sonido-metrics/logging"
)

// Features holds the descriptors computed for one signal. Scalar
// descriptors use NaN for numerically degenerate inputs (silent signal)
// and pitch uses 0.0 when no periodicity was detected.
type Features struct {
	Pitch            float64     `json:"pitch"`              // fundamental frequency (Hz), 0.0 if undetected
	ShortTermEnergy  []float64   `json:"short_term_energy"`  // per-frame sum of squares
	EnergyMean       float64     `json:"energy_mean"`        // mean of the energy sequence
	EnergyVariance   float64     `json:"energy_variance"`    // variance of the energy sequence
	ZeroCrossingRate []float64   `json:"zero_crossing_rate"` // per-frame crossing fraction
	SpectralCentroid float64     `json:"spectral_centroid"`  // brightness (Hz)
	SpectralRolloff  float64     `json:"spectral_rolloff"`   // rolloff frequency (Hz)
	MFCC             [][]float64 `json:"mfcc"`               // coefficient-major matrix [coeff][frame]
	Formants         []float64   `json:"formants"`           // up to 4 ascending resonances (Hz)
	HNR              float64     `json:"hnr"`                // harmonics-to-noise ratio (dB), NaN if undefined
}

// Params contains extraction parameters.
type Params struct {
	FrameSize      int     `json:"frame_size"`      // frame for energy/ZCR (default 1024)
	HopSize        int     `json:"hop_size"`        // hop for energy/ZCR (default 512)
	RolloffPercent float64 `json:"rolloff_percent"` // spectral rolloff fraction (default 0.85)
	NumMFCC        int     `json:"num_mfcc"`        // cepstral coefficients (default 13)
	HNR            speech.HNRParams
}

// Extractor computes the full descriptor set for mono signals at a
// fixed sample rate.
type Extractor struct {
	sampleRate int
	params     Params
	logger     logging.Logger

	energy   *temporal.ShortTermEnergy
	zcr      *temporal.ZeroCrossingRate
	pitch    *tonal.PitchEstimator
	centroid *spectral.SpectralCentroid
	rolloff  *spectral.SpectralRolloff
	mfcc     *spectral.MFCC
	formants *speech.FormantEstimator
	hnr      *speech.HNRAnalyzer
}

// NewExtractor creates an extractor with default parameters.
func NewExtractor(sampleRate int) (*Extractor, error) {
	return NewExtractorWithParams(sampleRate, Params{})
}

// NewExtractorWithParams creates an extractor with custom parameters,
// filling zero values with defaults.
func NewExtractorWithParams(sampleRate int, params Params) (*Extractor, error) {
	if params.FrameSize <= 0 {
		params.FrameSize = 1024
	}
	if params.HopSize <= 0 {
		params.HopSize = 512
	}
	if params.RolloffPercent <= 0 {
		params.RolloffPercent = 0.85
	}
	if params.NumMFCC <= 0 {
		params.NumMFCC = 13
	}

	energy, err := temporal.NewShortTermEnergy(params.FrameSize, params.HopSize)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	zcr, err := temporal.NewZeroCrossingRate(params.FrameSize, params.HopSize)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	pitch, err := tonal.NewPitchEstimator(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	centroid, err := spectral.NewSpectralCentroid(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	rolloff, err := spectral.NewSpectralRolloff(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	mfcc, err := spectral.NewMFCC(sampleRate, params.NumMFCC)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	formants, err := speech.NewFormantEstimator(sampleRate)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	hnr, err := speech.NewHNRAnalyzerWithParams(sampleRate, params.HNR)
	if err != nil {
		return nil, fmt.Errorf("features: %w", err)
	}

	return &Extractor{
		sampleRate: sampleRate,
		params:     params,
		logger: logging.GetGlobalLogger().WithFields(logging.Fields{
			"component":   "feature_extractor",
			"sample_rate": sampleRate,
		}),
		energy:     energy,
		zcr:        zcr,
		pitch:      pitch,
		centroid:   centroid,
		rolloff:    rolloff,
		mfcc:       mfcc,
		formants:   formants,
		hnr:        hnr,
	}, nil
}

// Extract computes all descriptors for a mono signal.
func (e *Extractor) Extract(signal []float64) (*Features, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("features: empty signal provided")
	}

	pitch, err := e.pitch.Compute(signal)
	if err != nil {
		return nil, fmt.Errorf("features: pitch estimation failed: %w", err)
	}
	if pitch == 0 {
		e.logger.Debug("no periodicity detected", logging.Fields{"samples": len(signal)})
	}

	energies := e.energy.Compute(signal)
	crossings := e.zcr.Compute(signal)

	centroid := e.centroid.Compute(signal)
	if math.IsNaN(centroid) {
		e.logger.Warn("silent signal, spectral descriptors undefined", logging.Fields{"samples": len(signal)})
	}

	rolloff, err := e.rolloff.Compute(signal, e.params.RolloffPercent)
	if err != nil {
		return nil, fmt.Errorf("features: rolloff computation failed: %w", err)
	}

	mfcc, err := e.mfcc.ComputeSignal(signal)
	if err != nil {
		return nil, fmt.Errorf("features: MFCC computation failed: %w", err)
	}

	// Root solving is cubic in the window length, so resonances come
	// from one centered analysis window rather than the whole buffer.
	formants, err := e.formants.Compute(centerWindow(signal, e.params.FrameSize))
	if err != nil {
		return nil, fmt.Errorf("features: formant estimation failed: %w", err)
	}

	result := &Features{
		Pitch:            pitch,
		ShortTermEnergy:  energies,
		EnergyMean:       math.NaN(),
		EnergyVariance:   math.NaN(),
		ZeroCrossingRate: crossings,
		SpectralCentroid: centroid,
		SpectralRolloff:  rolloff,
		MFCC:             mfcc,
		Formants:         formants,
		HNR:              e.hnr.Compute(signal),
	}

	if len(energies) > 0 {
		result.EnergyMean = stat.Mean(energies, nil)
		result.EnergyVariance = stat.Variance(energies, nil)
	}

	return result, nil
}

// ComputeSNR returns the signal-to-noise ratio in dB between a clean
// signal and a noise buffer. A silent noise buffer yields +Inf.
func ComputeSNR(signal, noise []float64) (float64, error) {
	if len(signal) == 0 || len(noise) == 0 {
		return 0, fmt.Errorf("features: empty signal or noise buffer")
	}

	signalPower := meanPower(signal)
	noisePower := meanPower(noise)
	if noisePower == 0 {
		return math.Inf(1), nil
	}

	return 10 * math.Log10(signalPower/noisePower), nil
}

// centerWindow returns a length-size view at the middle of the signal,
// or the whole signal when it is no longer than size.
func centerWindow(signal []float64, size int) []float64 {
	if len(signal) <= size {
		return signal
	}

	start := (len(signal) - size) / 2
	return signal[start : start+size]
}

func meanPower(samples []float64) float64 {
	sum := 0.0
	for _, s := range samples {
		sum += s * s
	}

	return sum / float64(len(samples))
}
