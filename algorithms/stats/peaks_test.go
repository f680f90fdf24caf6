package stats

import (
	"slices"
	"testing"
)

func TestFindPeaks_StrictMaxima(t *testing.T) {
	cases := []struct {
		name   string
		values []float64
		want   []int
	}{
		{"two peaks", []float64{0, 3, 1, 5, 2}, []int{1, 3}},
		{"plateau is not a peak", []float64{0, 1, 0, 2, 2, 0, 1}, []int{1}},
		{"monotone has no peaks", []float64{5, 4, 3, 2, 1}, nil},
		{"endpoints never qualify", []float64{5, 1, 5}, nil},
		{"too short", []float64{1, 2}, nil},
		{"empty", nil, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindPeaks(tc.values)
			if !slices.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}
