package temporal

import (
	"github.com/RyanBlaney/sonido-metrics/algorithms/framing"
)

// ZeroCrossingRate computes per-frame zero-crossing statistics. High ZCR
// indicates fricatives or noise, low ZCR indicates voiced content.
type ZeroCrossingRate struct {
	segmenter *framing.Segmenter
}

// NewZeroCrossingRate creates a zero-crossing rate analyzer.
func NewZeroCrossingRate(frameSize, hopSize int) (*ZeroCrossingRate, error) {
	segmenter, err := framing.NewSegmenter(frameSize, hopSize)
	if err != nil {
		return nil, err
	}

	return &ZeroCrossingRate{segmenter: segmenter}, nil
}

// Compute returns, for each frame, the count of adjacent sample pairs
// whose product is negative, divided by the frame size. The divisor is
// the frame size rather than the pair count (frameSize-1); downstream
// consumers depend on that normalization.
func (z *ZeroCrossingRate) Compute(signal []float64) []float64 {
	frameSize := float64(z.segmenter.FrameSize())
	rates := make([]float64, 0, z.segmenter.NumFrames(len(signal)))

	for frame := range z.segmenter.Frames(signal) {
		crossings := 0
		for i := 0; i+1 < len(frame); i++ {
			if frame[i]*frame[i+1] < 0 {
				crossings++
			}
		}
		rates = append(rates, float64(crossings)/frameSize)
	}

	return rates
}
