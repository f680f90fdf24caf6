package speech

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-metrics/algorithms/framing"
	"github.com/RyanBlaney/sonido-metrics/algorithms/resample"
	"github.com/RyanBlaney/sonido-metrics/algorithms/stats"
)

// hnrEpsilon guards the ratio denominator against vanishing noise
// estimates on nearly perfect periodic frames.
const hnrEpsilon = 1e-6

// HNRAnalyzer computes the harmonics-to-noise ratio of a signal: the
// signal is band-limited and decimated, then each frame's
// autocorrelation supplies a harmonic energy (the lag-0 maximum) and a
// noise energy (mean absolute correlation over nonzero lags).
type HNRAnalyzer struct {
	downsampler *resample.Downsampler
	segmenter   *framing.Segmenter
	autocorr    *stats.AutoCorrelation
}

// HNRParams contains parameters for HNR computation.
type HNRParams struct {
	TargetRate int `json:"target_rate"` // downsampling target (default 11025)
	FrameSize  int `json:"frame_size"`  // analysis frame in samples (default 1024)
	HopSize    int `json:"hop_size"`    // hop between frames (default 512)
}

// NewHNRAnalyzer creates an HNR analyzer with default parameters.
func NewHNRAnalyzer(originalRate int) (*HNRAnalyzer, error) {
	return NewHNRAnalyzerWithParams(originalRate, HNRParams{})
}

// NewHNRAnalyzerWithParams creates an HNR analyzer with custom
// parameters, filling zero values with defaults.
func NewHNRAnalyzerWithParams(originalRate int, params HNRParams) (*HNRAnalyzer, error) {
	if params.TargetRate <= 0 {
		params.TargetRate = 11025
	}
	if params.FrameSize <= 0 {
		params.FrameSize = 1024
	}
	if params.HopSize <= 0 {
		params.HopSize = 512
	}

	downsampler, err := resample.NewDownsampler(originalRate, params.TargetRate)
	if err != nil {
		return nil, err
	}

	segmenter, err := framing.NewSegmenter(params.FrameSize, params.HopSize)
	if err != nil {
		return nil, err
	}

	return &HNRAnalyzer{
		downsampler: downsampler,
		segmenter:   segmenter,
		autocorr:    stats.NewAutoCorrelation(),
	}, nil
}

// Compute returns the mean per-frame HNR in dB. Frames whose harmonic
// or noise energy is not strictly positive are undefined and excluded;
// when no frame qualifies the result is NaN.
func (h *HNRAnalyzer) Compute(signal []float64) float64 {
	downsampled := h.downsampler.Process(signal)

	var frameValues []float64
	for frame := range h.segmenter.Frames(downsampled) {
		correlation, err := h.autocorr.Compute(frame)
		if err != nil || len(correlation) < 2 {
			continue
		}

		harmonicEnergy := floats.Max(correlation)

		magnitudes := make([]float64, len(correlation)-1)
		for i, value := range correlation[1:] {
			magnitudes[i] = math.Abs(value)
		}
		noiseEnergy := stat.Mean(magnitudes, nil)

		if harmonicEnergy > 0 && noiseEnergy > 0 {
			frameValues = append(frameValues, 10*math.Log10(harmonicEnergy/(noiseEnergy+hnrEpsilon)))
		}
	}

	if len(frameValues) == 0 {
		return math.NaN()
	}

	return stat.Mean(frameValues, nil)
}
