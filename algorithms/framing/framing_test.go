package framing

import (
	"testing"
)

func TestNewSegmenter_InvalidArgs(t *testing.T) {
	if _, err := NewSegmenter(0, 160); err == nil {
		t.Error("expected error for zero frame size")
	}
	if _, err := NewSegmenter(-1, 160); err == nil {
		t.Error("expected error for negative frame size")
	}
	if _, err := NewSegmenter(320, 0); err == nil {
		t.Error("expected error for zero hop size")
	}
}

func TestSegmenter_FrameCount(t *testing.T) {
	s, err := NewSegmenter(320, 160)
	if err != nil {
		t.Fatalf("NewSegmenter: %v", err)
	}

	signal := make([]float64, 1600)

	if got := s.NumFrames(len(signal)); got != 8 {
		t.Errorf("NumFrames: got %d, want 8", got)
	}
	if got := len(s.Split(signal)); got != 8 {
		t.Errorf("Split: got %d frames, want 8", got)
	}
}

func TestSegmenter_Offsets(t *testing.T) {
	s, err := NewSegmenter(4, 2)
	if err != nil {
		t.Fatalf("NewSegmenter: %v", err)
	}

	signal := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	frames := s.Split(signal)

	// Starts run while start < len-frame: 0, 2, 4.
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	for i, frame := range frames {
		if len(frame) != 4 {
			t.Fatalf("frame %d: length %d, want 4", i, len(frame))
		}
		if frame[0] != float64(2*i) {
			t.Errorf("frame %d: starts at %g, want %d", i, frame[0], 2*i)
		}
	}
}

func TestSegmenter_ShortSignal(t *testing.T) {
	s, err := NewSegmenter(320, 160)
	if err != nil {
		t.Fatalf("NewSegmenter: %v", err)
	}

	// Shorter than one frame: empty sequence, not an error.
	if got := len(s.Split(make([]float64, 100))); got != 0 {
		t.Errorf("short signal: got %d frames, want 0", got)
	}

	// Exactly one frame long: the trailing window is dropped.
	if got := len(s.Split(make([]float64, 320))); got != 0 {
		t.Errorf("exact-length signal: got %d frames, want 0", got)
	}
}

func TestSegmenter_Restartable(t *testing.T) {
	s, err := NewSegmenter(4, 2)
	if err != nil {
		t.Fatalf("NewSegmenter: %v", err)
	}

	signal := make([]float64, 16)
	seq := s.Frames(signal)

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}

	if first != second {
		t.Errorf("sequence not restartable: first pass %d frames, second pass %d", first, second)
	}
}

func TestSegmenter_FramesAliasSignal(t *testing.T) {
	s, err := NewSegmenter(2, 1)
	if err != nil {
		t.Fatalf("NewSegmenter: %v", err)
	}

	signal := []float64{1, 2, 3, 4}
	frames := s.Split(signal)

	signal[1] = 99
	if frames[0][1] != 99 {
		t.Error("frames should alias the input signal, not copy it")
	}
}
