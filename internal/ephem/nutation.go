package ephem

import (
	"github.com/litescript/ls-almanac/internal/astro"
)

// Nutation from a truncated IAU 1980 theory. Each term's argument is an
// integer combination of the five fundamental lunisolar arguments; the
// combinations are flattened into (phase, rate) pairs once at package init
// and evaluated through the generic series machinery. Terms below 0.01
// arcsecond and the slow time drift of the amplitudes are dropped, which
// keeps the result within a few hundredths of an arcsecond of the full
// theory over several centuries around J2000.

// fundamentalArg is the linear part (degrees, degrees/century) of one of
// the five lunisolar arguments: D, M, M', F, Omega.
type fundamentalArg struct {
	phase float64
	rate  float64
}

var nutationArgs = [5]fundamentalArg{
	{297.85036, 445267.111480}, // D: mean elongation of the Moon
	{357.52772, 35999.050340},  // M: mean anomaly of the Sun
	{134.96298, 477198.867398}, // M': mean anomaly of the Moon
	{93.27191, 483202.017538},  // F: Moon's argument of latitude
	{125.04452, -1934.136261},  // Omega: longitude of the ascending node
}

// nutationTerm holds the argument multipliers and the longitude/obliquity
// amplitudes in units of 0.0001 arcsecond.
type nutationTerm struct {
	mult [5]int
	psi  float64
	eps  float64
}

var nutationTable = []nutationTerm{
	{[5]int{0, 0, 0, 0, 1}, -171996, 92025},
	{[5]int{-2, 0, 0, 2, 2}, -13187, 5736},
	{[5]int{0, 0, 0, 2, 2}, -2274, 977},
	{[5]int{0, 0, 0, 0, 2}, 2062, -895},
	{[5]int{0, 1, 0, 0, 0}, 1426, 54},
	{[5]int{0, 0, 1, 0, 0}, 712, -7},
	{[5]int{-2, 1, 0, 2, 2}, -517, 224},
	{[5]int{0, 0, 0, 2, 1}, -386, 200},
	{[5]int{0, 0, 1, 2, 2}, -301, 129},
	{[5]int{-2, -1, 0, 2, 2}, 217, -95},
	{[5]int{-2, 0, 1, 0, 0}, -158, 0},
	{[5]int{-2, 0, 0, 2, 1}, 129, -70},
	{[5]int{0, 0, -1, 2, 2}, 123, -53},
	{[5]int{2, 0, 0, 0, 0}, 63, 0},
	{[5]int{0, 0, 1, 0, 1}, 63, -33},
	{[5]int{2, 0, -1, 2, 2}, -59, 26},
	{[5]int{0, 0, -1, 0, 1}, -58, 32},
	{[5]int{0, 0, 1, 2, 1}, -51, 27},
	{[5]int{-2, 0, 2, 0, 0}, 48, 0},
	{[5]int{0, 0, -2, 2, 1}, 46, -24},
	{[5]int{2, 0, 0, 2, 2}, -38, 16},
	{[5]int{0, 0, 2, 2, 2}, -31, 13},
	{[5]int{0, 0, 2, 0, 0}, 29, 0},
	{[5]int{-2, 0, 1, 2, 2}, 29, -12},
	{[5]int{0, 0, 0, 2, 0}, 26, 0},
	{[5]int{-2, 0, 0, 2, 0}, -22, 0},
	{[5]int{0, 0, -1, 2, 1}, 21, -10},
}

var (
	nutationLongitudeSeries astro.Series
	nutationObliquitySeries astro.Series
)

func init() {
	psiTerms := make([]astro.SeriesTerm, 0, len(nutationTable))
	epsTerms := make([]astro.SeriesTerm, 0, len(nutationTable))
	for _, term := range nutationTable {
		var phase, rate float64
		for i, m := range term.mult {
			phase += float64(m) * nutationArgs[i].phase
			rate += float64(m) * nutationArgs[i].rate
		}
		// Amplitudes converted from 0.0001'' to degrees.
		if term.psi != 0 {
			psiTerms = append(psiTerms, astro.SeriesTerm{
				Amplitude: term.psi * 1e-4 / 3600,
				Phase:     phase,
				Rate:      rate,
			})
		}
		if term.eps != 0 {
			epsTerms = append(epsTerms, astro.SeriesTerm{
				Amplitude: term.eps * 1e-4 / 3600,
				Phase:     phase,
				Rate:      rate,
			})
		}
	}
	nutationLongitudeSeries = astro.Series{Terms: psiTerms, Basis: astro.BasisSin}
	nutationObliquitySeries = astro.Series{Terms: epsTerms, Basis: astro.BasisCos}
}

// NutationLongitude returns the nutation in longitude (delta psi).
func NutationLongitude(e astro.Epoch) astro.Angle {
	return astro.NewAngle(nutationLongitudeSeries.Evaluate(e.JulianCenturies()))
}

// NutationObliquity returns the nutation in obliquity (delta epsilon).
func NutationObliquity(e astro.Epoch) astro.Angle {
	return astro.NewAngle(nutationObliquitySeries.Evaluate(e.JulianCenturies()))
}

// MeanObliquity returns the mean obliquity of the ecliptic (Laskar-style
// cubic, adequate for a few millennia around J2000).
func MeanObliquity(e astro.Epoch) astro.Angle {
	t := e.JulianCenturies()
	arcsec := 21.448 - t*(46.8150+t*(0.00059-t*0.001813))
	return astro.NewAngle(23 + 26.0/60 + arcsec/3600)
}

// TrueObliquity returns the instantaneous obliquity, mean plus nutation.
func TrueObliquity(e astro.Epoch) astro.Angle {
	return MeanObliquity(e).Add(NutationObliquity(e))
}
