package temporal

import (
	"github.com/RyanBlaney/sonido-metrics/algorithms/framing"
)

// ShortTermEnergy computes per-frame signal energy. High short-term
// energy marks voiced regions and transients; near-zero energy marks
// silence.
type ShortTermEnergy struct {
	segmenter *framing.Segmenter
}

// NewShortTermEnergy creates a short-term energy analyzer.
func NewShortTermEnergy(frameSize, hopSize int) (*ShortTermEnergy, error) {
	segmenter, err := framing.NewSegmenter(frameSize, hopSize)
	if err != nil {
		return nil, err
	}

	return &ShortTermEnergy{segmenter: segmenter}, nil
}

// Compute returns the sum of squared samples for each frame, one entry
// per frame produced by the segmenter. A signal shorter than one frame
// yields an empty sequence.
func (e *ShortTermEnergy) Compute(signal []float64) []float64 {
	energies := make([]float64, 0, e.segmenter.NumFrames(len(signal)))

	for frame := range e.segmenter.Frames(signal) {
		sum := 0.0
		for _, sample := range frame {
			sum += sample * sample
		}
		energies = append(energies, sum)
	}

	return energies
}
