package ephem

import (
	"fmt"
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Outer refinement loops around the interpolation primitives. The inner
// formulas assume the sampled function is locally polynomial; these loops
// re-center on each estimate and halve the sample spacing until the
// correction falls below it, which is the convergence signal.

// eventTimeTol is the refinement target in days (~0.1 s).
const eventTimeTol = 1e-6

// refineZero locates a zero crossing of f near center, starting with sample
// spacing h days.
func refineZero(f func(astro.Epoch) float64, center astro.Epoch, h float64, cfg astro.InterpConfig) (astro.Epoch, error) {
	for i := 0; i < cfg.MaxIterations; i++ {
		samples := [3]astro.Sample{
			{Offset: -h, Value: f(center.Add(-h))},
			{Offset: 0, Value: f(center)},
			{Offset: h, Value: f(center.Add(h))},
		}
		off, err := astro.InterpolateZero(samples, cfg)
		if err != nil {
			return astro.Epoch{}, fmt.Errorf("refine zero at %s: %w", center, err)
		}
		center = center.Add(off)
		if math.Abs(off) < eventTimeTol {
			return center, nil
		}
		if math.Abs(off) < h/2 {
			h /= 2
		}
	}
	return astro.Epoch{}, fmt.Errorf("%w: zero refinement did not settle near %s", astro.ErrNoConvergence, center)
}

// refineExtremum locates a turning point of f near center, starting with
// sample spacing h days. Returns the instant and the extremal value.
func refineExtremum(f func(astro.Epoch) float64, center astro.Epoch, h float64, cfg astro.InterpConfig) (astro.Epoch, float64, error) {
	value := f(center)
	for i := 0; i < cfg.MaxIterations; i++ {
		samples := [3]astro.Sample{
			{Offset: -h, Value: f(center.Add(-h))},
			{Offset: 0, Value: f(center)},
			{Offset: h, Value: f(center.Add(h))},
		}
		off, v, err := astro.InterpolateExtremum3(samples, cfg)
		if err != nil {
			return astro.Epoch{}, 0, fmt.Errorf("refine extremum at %s: %w", center, err)
		}
		center = center.Add(off)
		value = v
		if math.Abs(off) < eventTimeTol {
			return center, value, nil
		}
		if math.Abs(off) < h/2 {
			h /= 2
		}
	}
	return astro.Epoch{}, 0, fmt.Errorf("%w: extremum refinement did not settle near %s", astro.ErrNoConvergence, center)
}
