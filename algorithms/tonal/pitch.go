package tonal

import (
	"fmt"

	"github.com/RyanBlaney/sonido-metrics/algorithms/stats"
)

// PitchEstimator detects the fundamental frequency of a quasi-periodic
// signal from its autocorrelation. The lag of the strongest secondary
// autocorrelation peak approximates the fundamental period.
type PitchEstimator struct {
	sampleRate int
	autocorr   *stats.AutoCorrelation
}

// NewPitchEstimator creates a pitch estimator for the given sample rate.
func NewPitchEstimator(sampleRate int) (*PitchEstimator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("tonal: sample rate must be positive, got %d", sampleRate)
	}

	return &PitchEstimator{
		sampleRate: sampleRate,
		autocorr:   stats.NewAutoCorrelation(),
	}, nil
}

// Compute returns the detected pitch in Hz, or 0.0 when the signal shows
// no periodicity (fewer than two autocorrelation peaks). 0.0 is a
// sentinel, not an error.
func (pe *PitchEstimator) Compute(signal []float64) (float64, error) {
	if len(signal) == 0 {
		return 0, fmt.Errorf("tonal: empty signal provided")
	}

	correlation, err := pe.autocorr.Compute(signal)
	if err != nil {
		return 0, err
	}

	// Lag 0 holds the self-energy and never qualifies as an interior
	// local maximum, so the peak list starts with secondary peaks.
	peaks := stats.FindPeaks(correlation)
	if len(peaks) < 2 {
		return 0.0, nil
	}

	lag := peaks[1]
	return float64(pe.sampleRate) / float64(lag), nil
}
