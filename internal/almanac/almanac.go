// Package almanac assembles computed quantities for a single date into a
// report consumed by the terminal UI and the headless output modes.
package almanac

import (
	"fmt"
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/ephem"
)

// Options holds configuration for report computation.
type Options struct {
	// UTCOffset is the local civil offset in hours east of Greenwich,
	// applied only when formatting local calendar dates.
	UTCOffset float64
	// Interp bounds the iterative event searches.
	Interp astro.InterpConfig
}

// DefaultOptions returns sensible default configuration.
func DefaultOptions() Options {
	return Options{
		UTCOffset: 0,
		Interp:    astro.DefaultInterpConfig(),
	}
}

// SunReport holds the solar quantities for the report instant.
type SunReport struct {
	ApparentLongitude astro.Angle
	RA                astro.Angle // hours mode
	Dec               astro.Angle
	Distance          float64 // AU
}

// MoonReport holds the lunar quantities for the report instant.
type MoonReport struct {
	Elongation  astro.Angle
	Illuminated float64 // fraction of disk, 0..1
	Description string
	NextPhases  []ephem.PhaseInstant
}

// Apsis is a located orbital distance extremum.
type Apsis struct {
	Epoch    astro.Epoch
	Distance float64 // AU
}

// Report is an immutable snapshot of everything computed for one instant.
type Report struct {
	// UT is the civil instant the report was requested for; TT is the
	// same instant on the dynamical scale used by the theories.
	UT     astro.Epoch
	TT     astro.Epoch
	DeltaT astro.DeltaTResult

	Year      int
	Month     int
	Day       float64
	DayOfYear int
	Weekday   int

	Sun SunReport

	MeanObliquity     astro.Angle
	TrueObliquity     astro.Angle
	NutationLongitude astro.Angle
	NutationObliquity astro.Angle

	Moon MoonReport

	NextSeason ephem.SeasonEvent
	Perihelion Apsis
	Aphelion   Apsis
}

// Compute builds the report for a civil (UT) instant. Event searches that
// fail to converge abort the whole report.
func Compute(ut astro.Epoch, opts Options) (*Report, error) {
	tt := ut.UTToTT()

	r := &Report{
		UT:     ut,
		TT:     tt,
		DeltaT: ut.DeltaT(),
	}
	r.Year, r.Month, r.Day = ut.LocalDate(opts.UTCOffset, astro.CalendarAuto)
	r.DayOfYear = ut.DayOfYear()
	r.Weekday = ut.Weekday()

	_, dist := ephem.SunTrueLongitudeCoarse(tt)
	ra, dec := ephem.SunApparentRADec(tt)
	r.Sun = SunReport{
		ApparentLongitude: ephem.SunApparentLongitude(tt),
		RA:                ra,
		Dec:               dec,
		Distance:          dist,
	}

	r.MeanObliquity = ephem.MeanObliquity(tt)
	r.TrueObliquity = ephem.TrueObliquity(tt)
	r.NutationLongitude = ephem.NutationLongitude(tt)
	r.NutationObliquity = ephem.NutationObliquity(tt)

	elong := ephem.MoonSunElongation(tt)
	phases, err := ephem.MoonPhases(tt, opts.Interp)
	if err != nil {
		return nil, fmt.Errorf("moon phases: %w", err)
	}
	r.Moon = MoonReport{
		Elongation:  elong,
		Illuminated: illuminatedFraction(elong),
		Description: describeMoon(elong),
		NextPhases:  phases,
	}

	season, err := ephem.NextSeasonEvent(tt, opts.Interp)
	if err != nil {
		return nil, fmt.Errorf("next season: %w", err)
	}
	r.NextSeason = season

	periEpoch, periDist, err := ephem.NextPerihelion(tt, opts.Interp)
	if err != nil {
		return nil, fmt.Errorf("next perihelion: %w", err)
	}
	r.Perihelion = Apsis{Epoch: periEpoch, Distance: periDist}

	aphEpoch, aphDist, err := ephem.NextAphelion(tt, opts.Interp)
	if err != nil {
		return nil, fmt.Errorf("next aphelion: %w", err)
	}
	r.Aphelion = Apsis{Epoch: aphEpoch, Distance: aphDist}

	return r, nil
}

// illuminatedFraction approximates the illuminated fraction of the lunar
// disk from the elongation alone, ignoring the finite lunar distance.
func illuminatedFraction(elong astro.Angle) float64 {
	return (1 - elong.Cos()) / 2
}

// describeMoon names the octant of the lunation the elongation falls in.
func describeMoon(elong astro.Angle) string {
	d := elong.Normalize360().Deg()
	switch {
	case d < 22.5:
		return "new moon"
	case d < 67.5:
		return "waxing crescent"
	case d < 112.5:
		return "first quarter"
	case d < 157.5:
		return "waxing gibbous"
	case d < 202.5:
		return "full moon"
	case d < 247.5:
		return "waning gibbous"
	case d < 292.5:
		return "last quarter"
	case d < 337.5:
		return "waning crescent"
	default:
		return "new moon"
	}
}

// WeekdayName returns the English name for a Weekday index.
func WeekdayName(wd int) string {
	names := [...]string{
		"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday",
	}
	if wd < 0 || wd >= len(names) {
		return "unknown"
	}
	return names[wd]
}

// NextPhaseOf returns the first instant of the requested phase from the
// report's phase list, or false when it is absent.
func (r *Report) NextPhaseOf(p ephem.Phase) (astro.Epoch, bool) {
	for _, pi := range r.Moon.NextPhases {
		if pi.Phase == p {
			return pi.Epoch, true
		}
	}
	return astro.Epoch{}, false
}

// DaysUntilSeason returns the interval from the report instant to the next
// equinox or solstice.
func (r *Report) DaysUntilSeason() float64 {
	return math.Max(0, r.NextSeason.Epoch.Sub(r.TT))
}
