package astro

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Least-squares fitting over sampled quantities. Used to smooth noisy or
// sparsely tabulated values before handing a bracket to the interpolation
// routines.

// LinearFit is the result of a straight-line least-squares fit.
type LinearFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// Predict evaluates the fitted line at x.
func (f LinearFit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// FitLinear fits y = intercept + slope*x by unweighted least squares.
func FitLinear(xs, ys []float64) (LinearFit, error) {
	if len(xs) != len(ys) {
		return LinearFit{}, fmt.Errorf("mismatched sample lengths: %d vs %d", len(xs), len(ys))
	}
	if len(xs) < 2 {
		return LinearFit{}, fmt.Errorf("need at least 2 samples, got %d", len(xs))
	}
	slope, intercept := stat.LinearRegression(xs, ys, nil, false)
	r := stat.Correlation(xs, ys, nil)
	return LinearFit{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  r * r,
	}, nil
}

// PolyFit is the result of a polynomial least-squares fit. Coefficients are
// in increasing powers of x.
type PolyFit struct {
	Coefficients []float64
}

// Predict evaluates the fitted polynomial at x.
func (f PolyFit) Predict(x float64) float64 {
	return poly(x, f.Coefficients...)
}

// FitPolynomial fits a polynomial of the given degree by least squares over
// the Vandermonde system, solved by QR.
func FitPolynomial(xs, ys []float64, degree int) (PolyFit, error) {
	if len(xs) != len(ys) {
		return PolyFit{}, fmt.Errorf("mismatched sample lengths: %d vs %d", len(xs), len(ys))
	}
	if degree < 1 {
		return PolyFit{}, fmt.Errorf("degree must be >= 1, got %d", degree)
	}
	if len(xs) < degree+1 {
		return PolyFit{}, fmt.Errorf("need at least %d samples for degree %d, got %d", degree+1, degree, len(xs))
	}

	rows := len(xs)
	cols := degree + 1
	v := mat.NewDense(rows, cols, nil)
	for i, x := range xs {
		p := 1.0
		for jc := 0; jc < cols; jc++ {
			v.Set(i, jc, p)
			p *= x
		}
	}
	b := mat.NewVecDense(rows, ys)

	var qr mat.QR
	qr.Factorize(v)
	var sol mat.VecDense
	if err := qr.SolveVecTo(&sol, false, b); err != nil {
		return PolyFit{}, fmt.Errorf("solve least squares: %w", err)
	}

	coeffs := make([]float64, cols)
	for i := range coeffs {
		coeffs[i] = sol.AtVec(i)
	}
	return PolyFit{Coefficients: coeffs}, nil
}
