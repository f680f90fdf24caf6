package framing

import (
	"fmt"
	"iter"
)

// Segmenter splits a signal into fixed-size, possibly overlapping frames.
// Frames are non-owning subslices of the input; a trailing partial window
// is dropped, never zero-padded.
type Segmenter struct {
	frameSize int
	hopSize   int
}

// NewSegmenter creates a segmenter with the given frame and hop sizes.
func NewSegmenter(frameSize, hopSize int) (*Segmenter, error) {
	if frameSize <= 0 {
		return nil, fmt.Errorf("framing: frame size must be positive, got %d", frameSize)
	}
	if hopSize <= 0 {
		return nil, fmt.Errorf("framing: hop size must be positive, got %d", hopSize)
	}

	return &Segmenter{
		frameSize: frameSize,
		hopSize:   hopSize,
	}, nil
}

// FrameSize returns the configured frame size in samples.
func (s *Segmenter) FrameSize() int {
	return s.frameSize
}

// HopSize returns the configured hop size in samples.
func (s *Segmenter) HopSize() int {
	return s.hopSize
}

// NumFrames returns the number of frames produced for a signal of the
// given length. Zero when the signal is shorter than one full hop past
// the frame size.
func (s *Segmenter) NumFrames(signalLen int) int {
	remaining := signalLen - s.frameSize
	if remaining <= 0 {
		return 0
	}

	return (remaining + s.hopSize - 1) / s.hopSize
}

// Frames returns a lazy, restartable sequence of frames at start offsets
// 0, hop, 2*hop, ... while start < len(signal) - frameSize. Each yielded
// slice aliases the input signal.
func (s *Segmenter) Frames(signal []float64) iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		for start := 0; start < len(signal)-s.frameSize; start += s.hopSize {
			if !yield(signal[start : start+s.frameSize]) {
				return
			}
		}
	}
}

// Split materializes all frames of the signal. The returned slices alias
// the input.
func (s *Segmenter) Split(signal []float64) [][]float64 {
	frames := make([][]float64, 0, s.NumFrames(len(signal)))
	for frame := range s.Frames(signal) {
		frames = append(frames, frame)
	}

	return frames
}
