package common

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// PolyRoots returns the complex roots of a real-coefficient polynomial
// given in descending power order: coeffs[0]*x^(n-1) + ... + coeffs[n-1].
// Roots are the eigenvalues of the polynomial's companion matrix.
// Leading zero coefficients are stripped; a polynomial of degree < 1
// has no roots and returns an empty slice.
func PolyRoots(coeffs []float64) ([]complex128, error) {
	// Strip leading zeros; they do not change the root set.
	start := 0
	for start < len(coeffs) && coeffs[start] == 0 {
		start++
	}
	coeffs = coeffs[start:]

	degree := len(coeffs) - 1
	if degree < 1 {
		return []complex128{}, nil
	}

	companion := mat.NewDense(degree, degree, nil)
	lead := coeffs[0]
	for j := range degree {
		companion.Set(0, j, -coeffs[j+1]/lead)
	}
	for i := 1; i < degree; i++ {
		companion.Set(i, i-1, 1)
	}

	var eigen mat.Eigen
	if ok := eigen.Factorize(companion, mat.EigenNone); !ok {
		return nil, fmt.Errorf("common: eigendecomposition of degree-%d companion matrix failed", degree)
	}

	return eigen.Values(nil), nil
}
