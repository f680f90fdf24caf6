package speech

import (
	"math"
	"sort"
	"testing"
)

// generateVoiced creates a deterministic harmonic signal with a touch
// of LCG noise, loosely resembling voiced speech.
func generateVoiced(freq float64, sampleRate, length int) []float64 {
	out := make([]float64, length)
	seed := uint32(12345)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = math.Sin(2*math.Pi*freq*t) +
			0.5*math.Sin(4*math.Pi*freq*t) +
			0.25*math.Sin(6*math.Pi*freq*t)

		seed = seed*1664525 + 1013904223
		out[i] += 0.01 * (float64(seed%1000)/500.0 - 1.0)
	}
	return out
}

func TestFormantEstimator_Order(t *testing.T) {
	fe, err := NewFormantEstimator(16000)
	if err != nil {
		t.Fatalf("NewFormantEstimator: %v", err)
	}
	if fe.Order() != 18 {
		t.Errorf("Order: got %d, want 18", fe.Order())
	}

	fe8k, err := NewFormantEstimator(8000)
	if err != nil {
		t.Fatalf("NewFormantEstimator: %v", err)
	}
	if fe8k.Order() != 10 {
		t.Errorf("Order: got %d, want 10", fe8k.Order())
	}
}

func TestFormantEstimator_Contract(t *testing.T) {
	fe, err := NewFormantEstimator(8000)
	if err != nil {
		t.Fatalf("NewFormantEstimator: %v", err)
	}

	formants, err := fe.Compute(generateVoiced(150, 8000, 128))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(formants) > 4 {
		t.Fatalf("got %d formants, want at most 4", len(formants))
	}
	if !sort.Float64sAreSorted(formants) {
		t.Errorf("formants not ascending: %v", formants)
	}
	for i, f := range formants {
		if f < 0 || f > 4000+1e-9 {
			t.Errorf("formant %d out of [0, Nyquist]: %g", i, f)
		}
	}
}

func TestFormantEstimator_Deterministic(t *testing.T) {
	fe, err := NewFormantEstimator(8000)
	if err != nil {
		t.Fatalf("NewFormantEstimator: %v", err)
	}

	signal := generateVoiced(150, 8000, 128)
	first, err := fe.Compute(signal)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	second, err := fe.Compute(signal)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("formant %d: %g != %g", i, first[i], second[i])
		}
	}
}

func TestFormantEstimator_InvalidArgs(t *testing.T) {
	if _, err := NewFormantEstimator(0); err == nil {
		t.Error("expected error for zero sample rate")
	}

	fe, err := NewFormantEstimator(8000)
	if err != nil {
		t.Fatalf("NewFormantEstimator: %v", err)
	}
	if _, err := fe.Compute(nil); err == nil {
		t.Error("expected error for empty signal")
	}
}

func TestMovingSum(t *testing.T) {
	got := movingSum([]float64{1, 2, 3, 4, 5}, 3)
	want := []float64{1, 3, 6, 9, 12}

	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("index %d: got %g, want %g", i, got[i], want[i])
		}
	}
}
