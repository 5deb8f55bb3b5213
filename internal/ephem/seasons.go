package ephem

import (
	"fmt"
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
)

// SeasonType designates an equinox or solstice.
type SeasonType int

const (
	MarchEquinox SeasonType = iota
	JuneSolstice
	SeptemberEquinox
	DecemberSolstice
)

// String returns the event name.
func (s SeasonType) String() string {
	switch s {
	case MarchEquinox:
		return "March equinox"
	case JuneSolstice:
		return "June solstice"
	case SeptemberEquinox:
		return "September equinox"
	case DecemberSolstice:
		return "December solstice"
	default:
		return "unknown"
	}
}

// Longitude returns the apparent solar longitude at which the event occurs.
func (s SeasonType) Longitude() astro.Angle {
	return astro.NewAngle(float64(s) * 90)
}

// SeasonEvent is a located equinox or solstice instant.
type SeasonEvent struct {
	Type  SeasonType
	Epoch astro.Epoch
}

// meanSolarMotion is the Sun's mean daily motion in longitude, deg/day.
const meanSolarMotion = 0.9856474

// NextSeasonEvent locates the first equinox or solstice after start. The
// crossing of the apparent solar longitude through the next multiple of 90
// degrees is estimated from the mean motion and refined by interpolation.
func NextSeasonEvent(start astro.Epoch, cfg astro.InterpConfig) (SeasonEvent, error) {
	lon := SunApparentLongitude(start).Deg()
	k := int(lon/90) + 1
	season := SeasonType(k % 4)
	target := astro.NewAngle(float64(k) * 90)

	f := func(e astro.Epoch) float64 {
		return SunApparentLongitude(e).Sub(target).Normalize180().Deg()
	}

	// First guess from the mean motion; the equation of the center keeps
	// the true crossing within about two days of it.
	guessDays := (float64(k)*90 - lon) / meanSolarMotion
	center := start.Add(guessDays)

	e, err := refineZero(f, center, 3, cfg)
	if err != nil {
		return SeasonEvent{}, fmt.Errorf("locate %s: %w", season, err)
	}
	return SeasonEvent{Type: season, Epoch: e}, nil
}

// sunRadius is the sampled quantity for apsis location.
func sunRadius(e astro.Epoch) float64 {
	_, r := SunTrueLongitudeCoarse(e)
	return r
}

// NextPerihelion locates the next minimum of the Sun-Earth distance after
// start, returning the instant and the distance in AU.
func NextPerihelion(start astro.Epoch, cfg astro.InterpConfig) (astro.Epoch, float64, error) {
	return nextRadiusExtremum(start, true, cfg)
}

// NextAphelion locates the next maximum of the Sun-Earth distance after
// start, returning the instant and the distance in AU.
func NextAphelion(start astro.Epoch, cfg astro.InterpConfig) (astro.Epoch, float64, error) {
	return nextRadiusExtremum(start, false, cfg)
}

// smoothExtremumGuess fits a quadratic through radius samples around the
// bracketed grid point and moves the center to the parabola's vertex. The
// scan grid is coarse, so the bracketed point can sit half a step from the
// apsis; the least-squares fit over the wider window pulls the starting
// point to within a day of it before refinement.
func smoothExtremumGuess(center astro.Epoch, h float64) astro.Epoch {
	const wings = 3
	xs := make([]float64, 0, 2*wings+1)
	ys := make([]float64, 0, 2*wings+1)
	for k := -wings; k <= wings; k++ {
		xs = append(xs, float64(k)*h)
		ys = append(ys, sunRadius(center.Add(float64(k)*h)))
	}

	fit, err := astro.FitPolynomial(xs, ys, 2)
	if err != nil || fit.Coefficients[2] == 0 {
		return center
	}
	vertex := -fit.Coefficients[1] / (2 * fit.Coefficients[2])
	if math.Abs(vertex) > wings*h {
		return center
	}
	return center.Add(vertex)
}

func nextRadiusExtremum(start astro.Epoch, minimum bool, cfg astro.InterpConfig) (astro.Epoch, float64, error) {
	const step = 5.0
	const scanSteps = 80 // just over a year

	prev := sunRadius(start)
	cur := sunRadius(start.Add(step))
	for i := 2; i <= scanSteps; i++ {
		next := sunRadius(start.Add(step * float64(i)))
		bracketed := (minimum && cur <= prev && cur <= next) ||
			(!minimum && cur >= prev && cur >= next)
		if bracketed {
			center := smoothExtremumGuess(start.Add(step*float64(i-1)), step)
			return refineExtremum(sunRadius, center, step, cfg)
		}
		prev, cur = cur, next
	}
	kind := "aphelion"
	if minimum {
		kind = "perihelion"
	}
	return astro.Epoch{}, 0, fmt.Errorf("%w: no %s within %g days of %s",
		astro.ErrNoConvergence, kind, step*scanSteps, start)
}
