package astro

import (
	"errors"
	"fmt"
	"math"
)

// Interpolation over a handful of equally spaced samples. Astronomical events
// (node passages, extrema of declination, phase instants) are located by
// sampling the relevant quantity around an approximate time and refining with
// the classical difference formulas. The function is assumed locally
// quadratic (3 points) or quartic (5 points); the caller chooses a spacing
// small enough, and a bracket containing at most one event.

// ErrNoConvergence signals that the interpolation iteration did not settle
// inside the sample window within the allotted iterations. It means the
// initial guess or spacing was unsuitable, not that the formula failed
// numerically.
var ErrNoConvergence = errors.New("interpolation did not converge")

// Sample is one (time offset, value) pair. Offsets within a call must be
// equally spaced and ascending.
type Sample struct {
	Offset float64
	Value  float64
}

// InterpConfig bounds the interpolation iteration. Callers own the outer
// convergence loop (bracket narrowing); these only bound the inner solve.
type InterpConfig struct {
	MaxIterations int
	Epsilon       float64
}

// DefaultInterpConfig returns the iteration bounds used unless the caller
// overrides them. The values are empirical: the inner iterations contract
// fast whenever the local-polynomial assumption holds at all.
func DefaultInterpConfig() InterpConfig {
	return InterpConfig{
		MaxIterations: 50,
		Epsilon:       1e-12,
	}
}

// InterpolateZero returns the time offset at which the quadratic through
// three samples crosses zero. The iteration solves
//
//	y = y2 + n/2*(a+b) + n^2/2*c = 0
//
// for the fractional step n from the middle sample, with a, b the first
// differences and c the second difference. ErrNoConvergence is returned if
// the iteration does not settle, or settles outside the sample window.
func InterpolateZero(samples [3]Sample, cfg InterpConfig) (float64, error) {
	a := samples[1].Value - samples[0].Value
	b := samples[2].Value - samples[1].Value
	c := b - a
	y2 := samples[1].Value

	n := 0.0
	for i := 0; i < cfg.MaxIterations; i++ {
		denom := a + b + c*n
		if denom == 0 {
			return 0, fmt.Errorf("%w: flat quadratic, no zero crossing in window", ErrNoConvergence)
		}
		next := -2 * y2 / denom
		if math.Abs(next-n) < cfg.Epsilon {
			if math.Abs(next) > 1 {
				return 0, fmt.Errorf("%w: root at %.4f steps lies outside the sample window", ErrNoConvergence, next)
			}
			h := samples[1].Offset - samples[0].Offset
			return samples[1].Offset + next*h, nil
		}
		n = next
	}
	return 0, fmt.Errorf("%w: after %d iterations", ErrNoConvergence, cfg.MaxIterations)
}

// InterpolateExtremum3 returns the time offset and value of the turning
// point of the quadratic through three samples.
func InterpolateExtremum3(samples [3]Sample, cfg InterpConfig) (offset, value float64, err error) {
	a := samples[1].Value - samples[0].Value
	b := samples[2].Value - samples[1].Value
	c := b - a
	if math.Abs(c) < cfg.Epsilon {
		return 0, 0, fmt.Errorf("%w: no curvature in sample window", ErrNoConvergence)
	}
	n := -(a + b) / (2 * c)
	if math.Abs(n) > 1 {
		return 0, 0, fmt.Errorf("%w: extremum at %.4f steps lies outside the sample window", ErrNoConvergence, n)
	}
	h := samples[1].Offset - samples[0].Offset
	ym := samples[1].Value - (a+b)*(a+b)/(8*c)
	return samples[1].Offset + n*h, ym, nil
}

// InterpolateExtremum5 returns the time offset and value of the turning
// point of the quartic through five samples, using differences up to fourth
// order. Preferred near sharp extrema (e.g. lunar declination maxima) where
// the quadratic fit is too crude.
func InterpolateExtremum5(samples [5]Sample, cfg InterpConfig) (offset, value float64, err error) {
	bb, cc, f, h, j, k := fourthDifferences(samples)

	denom := k - 12*f
	if math.Abs(denom) < cfg.Epsilon {
		return 0, 0, fmt.Errorf("%w: no curvature in sample window", ErrNoConvergence)
	}

	n := 0.0
	for i := 0; i < cfg.MaxIterations; i++ {
		next := (6*bb + 6*cc - h - j + 3*n*n*(h+j) + 2*n*n*n*k) / denom
		if math.Abs(next-n) < cfg.Epsilon {
			if math.Abs(next) > 2 {
				return 0, 0, fmt.Errorf("%w: extremum at %.4f steps lies outside the sample window", ErrNoConvergence, next)
			}
			step := samples[1].Offset - samples[0].Offset
			return samples[2].Offset + next*step, value5(samples, next), nil
		}
		n = next
	}
	return 0, 0, fmt.Errorf("%w: after %d iterations", ErrNoConvergence, cfg.MaxIterations)
}

// InterpolateValue3 evaluates the quadratic through three samples at the
// given absolute offset.
func InterpolateValue3(samples [3]Sample, offset float64) float64 {
	a := samples[1].Value - samples[0].Value
	b := samples[2].Value - samples[1].Value
	c := b - a
	h := samples[1].Offset - samples[0].Offset
	n := (offset - samples[1].Offset) / h
	return samples[1].Value + n/2*(a+b) + n*n/2*c
}

// InterpolateValue5 evaluates the quartic through five samples at the given
// absolute offset.
func InterpolateValue5(samples [5]Sample, offset float64) float64 {
	h := samples[1].Offset - samples[0].Offset
	n := (offset - samples[2].Offset) / h
	return value5(samples, n)
}

// fourthDifferences computes the difference table of five samples:
// first differences aa..dd, second ee..gg, third h, j and fourth k.
// Only the quantities the formulas need are returned.
func fourthDifferences(samples [5]Sample) (bb, cc, f, h, j, k float64) {
	aa := samples[1].Value - samples[0].Value
	bb = samples[2].Value - samples[1].Value
	cc = samples[3].Value - samples[2].Value
	dd := samples[4].Value - samples[3].Value
	ee := bb - aa
	f = cc - bb
	gg := dd - cc
	h = f - ee
	j = gg - f
	k = j - h
	return bb, cc, f, h, j, k
}

// value5 evaluates the five-point interpolation polynomial at fractional
// step n from the middle sample.
func value5(samples [5]Sample, n float64) float64 {
	bb, cc, f, h, j, k := fourthDifferences(samples)
	return samples[2].Value +
		n/2*(bb+cc) +
		n*n/2*f +
		n*(n*n-1)/12*(h+j) +
		n*n*(n*n-1)/24*k
}
