package astro

// Periodic series evaluation. Planetary and lunar theories, nutation and
// aberration are all sums of the same shape: an optional low-order polynomial
// in centuries plus a weighted sum of sinusoids with linearly advancing
// arguments. The coefficient tables belong to the body modules; this
// evaluator only fixes the term shape.

// TrigBasis selects the trigonometric function applied to each term argument.
type TrigBasis int

const (
	// BasisCos evaluates terms as A*cos(phase + rate*t). Default.
	BasisCos TrigBasis = iota
	// BasisSin evaluates terms as A*sin(phase + rate*t).
	BasisSin
)

// SeriesTerm is one periodic term. Phase and Rate are in degrees and degrees
// per time unit; the time unit (normally Julian centuries since J2000) is
// whatever the caller passes to Evaluate.
type SeriesTerm struct {
	Amplitude float64
	Phase     float64
	Rate      float64
}

// Series is an immutable periodic series with an optional polynomial part.
// Poly holds coefficients in increasing powers of the time argument.
type Series struct {
	Terms []SeriesTerm
	Poly  []float64
	Basis TrigBasis
}

// Evaluate returns the series value at time argument t. The trigonometric
// argument of each term is folded into [0,360) before the trig call, so
// precision holds even when rate*t spans many thousands of turns. Terms are
// summed in the order supplied, for reproducibility.
func (s Series) Evaluate(t float64) float64 {
	v := poly(t, s.Poly...)
	for _, term := range s.Terms {
		arg := NewAngle(term.Phase + term.Rate*t).Normalize360()
		if s.Basis == BasisSin {
			v += term.Amplitude * arg.Sin()
		} else {
			v += term.Amplitude * arg.Cos()
		}
	}
	return v
}
