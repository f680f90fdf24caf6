package stats

// FindPeaks returns the indices of strict local maxima in values, in
// ascending index order. An interior index i qualifies when
// values[i] > values[i-1] and values[i] > values[i+1]; endpoints never
// qualify. Equal-valued candidates resolve to the first (lowest) index
// encountered, since a plateau sample is not strictly greater than its
// equal neighbor.
func FindPeaks(values []float64) []int {
	var peaks []int
	for i := 1; i < len(values)-1; i++ {
		if values[i] > values[i-1] && values[i] > values[i+1] {
			peaks = append(peaks, i)
		}
	}

	return peaks
}
