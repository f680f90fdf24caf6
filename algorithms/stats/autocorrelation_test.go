package stats

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// directAutocorr computes the non-negative-lag autocorrelation by the
// O(n^2) definition, as a reference for the FFT-based path.
func directAutocorr(signal []float64) []float64 {
	n := len(signal)
	out := make([]float64, n)
	for lag := range n {
		sum := 0.0
		for i := 0; i+lag < n; i++ {
			sum += signal[i] * signal[i+lag]
		}
		out[lag] = sum
	}
	return out
}

func TestAutoCorrelation_MatchesDirect(t *testing.T) {
	ac := NewAutoCorrelation()

	signals := [][]float64{
		{1, 2, 3},
		{1, -1, 1, -1, 1},
		{0.5, 0.25, -0.75, 1.5, -0.1, 0.9, 0.3},
	}

	for _, signal := range signals {
		got, err := ac.Compute(signal)
		if err != nil {
			t.Fatalf("Compute: %v", err)
		}

		want := directAutocorr(signal)
		if len(got) != len(want) {
			t.Fatalf("length: got %d, want %d", len(got), len(want))
		}
		for lag := range want {
			if !almostEqual(got[lag], want[lag], tolerance) {
				t.Errorf("lag %d: got %g, want %g", lag, got[lag], want[lag])
			}
		}
	}
}

func TestAutoCorrelation_LagZeroIsEnergy(t *testing.T) {
	ac := NewAutoCorrelation()
	signal := []float64{3, -4, 2, 1}

	got, err := ac.Compute(signal)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if !almostEqual(got[0], 9+16+4+1, tolerance) {
		t.Errorf("lag 0: got %g, want 30", got[0])
	}
	for lag := 1; lag < len(got); lag++ {
		if got[lag] > got[0]+tolerance {
			t.Errorf("lag %d exceeds lag-0 energy: %g > %g", lag, got[lag], got[0])
		}
	}
}

func TestAutoCorrelation_Empty(t *testing.T) {
	ac := NewAutoCorrelation()
	if _, err := ac.Compute(nil); err == nil {
		t.Error("expected error for empty signal")
	}
}
