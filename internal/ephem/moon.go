package ephem

import (
	"fmt"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Lunar theory, truncated to the principal longitude terms. Each term's
// argument is an integer combination of the mean elongation D, the solar
// and lunar mean anomalies M and M', and the argument of latitude F;
// as with nutation the combinations are flattened into a generic series at
// package init. Terms below about 0.01 degree are dropped, so longitudes
// are good to roughly a minute of arc, which places phase instants within
// a few minutes of time.

// moonArgs holds the linear part (degrees, degrees/century) of L', D, M,
// M', F in that order.
var moonArgs = [5]fundamentalArg{
	{218.3164477, 481267.88123421}, // L': mean longitude
	{297.8501921, 445267.1114034},  // D: mean elongation from the Sun
	{357.5291092, 35999.0502909},   // M: Sun's mean anomaly
	{134.9633964, 477198.8675055},  // M': Moon's mean anomaly
	{93.2720950, 483202.0175233},   // F: argument of latitude
}

// moonLongitudeTerm: argument multipliers of (D, M, M', F) and the
// amplitude in 1e-6 degree.
type moonLongitudeTerm struct {
	mult [4]int
	amp  float64
}

var moonLongitudeTable = []moonLongitudeTerm{
	{[4]int{0, 0, 1, 0}, 6288774},
	{[4]int{2, 0, -1, 0}, 1274027},
	{[4]int{2, 0, 0, 0}, 658314},
	{[4]int{0, 0, 2, 0}, 213618},
	{[4]int{0, 1, 0, 0}, -185116},
	{[4]int{0, 0, 0, 2}, -114332},
	{[4]int{2, 0, -2, 0}, 58793},
	{[4]int{2, -1, -1, 0}, 57066},
	{[4]int{2, 0, 1, 0}, 53322},
	{[4]int{2, -1, 0, 0}, 45758},
	{[4]int{0, 1, -1, 0}, -40923},
	{[4]int{1, 0, 0, 0}, -34720},
	{[4]int{0, 1, 1, 0}, -30383},
	{[4]int{2, 0, 0, -2}, 15327},
	{[4]int{0, 0, 1, 2}, -12528},
	{[4]int{0, 0, 1, -2}, 10980},
	{[4]int{4, 0, -1, 0}, 10675},
	{[4]int{0, 0, 3, 0}, 10034},
}

var moonLongitudeSeries astro.Series

func init() {
	terms := make([]astro.SeriesTerm, 0, len(moonLongitudeTable))
	for _, term := range moonLongitudeTable {
		var phase, rate float64
		for i, m := range term.mult {
			phase += float64(m) * moonArgs[i+1].phase
			rate += float64(m) * moonArgs[i+1].rate
		}
		terms = append(terms, astro.SeriesTerm{
			Amplitude: term.amp * 1e-6,
			Phase:     phase,
			Rate:      rate,
		})
	}
	moonLongitudeSeries = astro.Series{
		Terms: terms,
		Poly:  []float64{moonArgs[0].phase, moonArgs[0].rate},
		Basis: astro.BasisSin,
	}
}

// MoonTrueLongitude returns the Moon's true ecliptical longitude of date.
func MoonTrueLongitude(e astro.Epoch) astro.Angle {
	return astro.NewAngle(moonLongitudeSeries.Evaluate(e.JulianCenturies())).Normalize360()
}

// MoonSunElongation returns the angular distance in longitude from the Sun
// to the Moon, folded into [0,360): 0 at new moon, 180 at full moon.
func MoonSunElongation(e astro.Epoch) astro.Angle {
	sunLon, _ := SunTrueLongitudeCoarse(e)
	return MoonTrueLongitude(e).Sub(sunLon).Normalize360()
}

// Phase designates one of the four principal lunar phases.
type Phase int

const (
	NewMoon Phase = iota
	FirstQuarter
	FullMoon
	LastQuarter
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case NewMoon:
		return "new moon"
	case FirstQuarter:
		return "first quarter"
	case FullMoon:
		return "full moon"
	case LastQuarter:
		return "last quarter"
	default:
		return "unknown"
	}
}

// Elongation returns the Moon-Sun elongation at which the phase occurs.
func (p Phase) Elongation() astro.Angle {
	return astro.NewAngle(float64(p) * 90)
}

// meanSynodicMonth is the mean length of a lunation in days.
const meanSynodicMonth = 29.530588861

// NextMoonPhase locates the first instant of the given phase after start.
// The elongation is sampled around a day-level bracket and refined by
// quadratic interpolation with the bracket halved until it collapses below
// the result. Returns ErrNoConvergence (wrapped) if no bracket is found
// within one synodic month plus margin.
func NextMoonPhase(start astro.Epoch, p Phase, cfg astro.InterpConfig) (astro.Epoch, error) {
	target := p.Elongation()
	f := func(e astro.Epoch) float64 {
		return MoonSunElongation(e).Sub(target).Normalize180().Deg()
	}

	// The elongation gains ~12.2 deg/day on the Sun, so f increases through
	// zero at the phase instant. Scan for a negative-to-positive day bracket.
	const scanDays = 33
	prev := f(start)
	for day := 1; day <= scanDays; day++ {
		cur := f(start.Add(float64(day)))
		if prev < 0 && cur >= 0 {
			center := start.Add(float64(day) - 0.5)
			return refineZero(f, center, 0.5, cfg)
		}
		prev = cur
	}
	return astro.Epoch{}, fmt.Errorf("%w: no %s within %d days of %s",
		astro.ErrNoConvergence, p, scanDays, start)
}

// MoonPhases returns the next four principal phase instants after start, in
// chronological order.
func MoonPhases(start astro.Epoch, cfg astro.InterpConfig) ([]PhaseInstant, error) {
	instants := make([]PhaseInstant, 0, 4)
	for p := NewMoon; p <= LastQuarter; p++ {
		e, err := NextMoonPhase(start, p, cfg)
		if err != nil {
			return nil, err
		}
		instants = append(instants, PhaseInstant{Phase: p, Epoch: e})
	}
	sortPhaseInstants(instants)
	return instants, nil
}

// PhaseInstant pairs a phase with the epoch it occurs.
type PhaseInstant struct {
	Phase Phase
	Epoch astro.Epoch
}

func sortPhaseInstants(instants []PhaseInstant) {
	// Four elements; insertion sort keeps it dependency-free.
	for i := 1; i < len(instants); i++ {
		for j := i; j > 0 && instants[j].Epoch.JD() < instants[j-1].Epoch.JD(); j-- {
			instants[j], instants[j-1] = instants[j-1], instants[j]
		}
	}
}
