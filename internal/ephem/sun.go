// Package ephem computes positions and events for celestial bodies from
// classical closed-form and series-based theories. Coefficient tables live
// here, next to the bodies they describe; the generic numeric machinery is
// in internal/astro.
package ephem

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
)

// J2000 obliquity of the ecliptic, degrees.
const obliquityJ2000 = 23.4392911

// generalPrecession is the accumulated general precession in longitude,
// degrees per Julian century.
const generalPrecession = 1.3969713

// SunTrueLongitudeCoarse returns the Sun's true (ecliptical, of date)
// longitude and its radius vector in AU. Accuracy about 0.01 degree.
func SunTrueLongitudeCoarse(e astro.Epoch) (astro.Angle, float64) {
	t := e.JulianCenturies()

	l0 := astro.NewAngle(280.46646 + t*(36000.76983+t*0.0003032)).Normalize360()
	m := SunMeanAnomaly(e)
	ecc := EarthEccentricity(e)

	// Equation of the center.
	c := astro.NewAngle((1.914602-t*(0.004817+t*0.000014))*m.Sin() +
		(0.019993-t*0.000101)*math.Sin(2*m.Rad()) +
		0.000289*math.Sin(3*m.Rad()))

	trueLon := l0.Add(c)
	trueAnom := m.Add(c)
	r := (1.000001018 * (1.0 - ecc*ecc)) / (1.0 + ecc*trueAnom.Cos())
	return trueLon, r
}

// SunMeanAnomaly returns the Sun's mean anomaly, unnormalized.
func SunMeanAnomaly(e astro.Epoch) astro.Angle {
	t := e.JulianCenturies()
	return astro.NewAngle(357.52911 + t*(35999.05029-t*0.0001537))
}

// EarthEccentricity returns the eccentricity of the Earth's orbit.
func EarthEccentricity(e astro.Epoch) float64 {
	t := e.JulianCenturies()
	return 0.016708634 - t*(0.000042037+t*0.0000001267)
}

// SunApparentLongitude returns the Sun's apparent longitude, corrected for
// aberration and the principal nutation term.
func SunApparentLongitude(e astro.Epoch) astro.Angle {
	t := e.JulianCenturies()
	trueLon, _ := SunTrueLongitudeCoarse(e)
	omega := astro.NewAngle(125.04 - 1934.136*t)
	return astro.NewAngle(trueLon.Deg() - 0.00569 - 0.00478*omega.Sin()).Normalize360()
}

// SunApparentRADec returns the Sun's apparent right ascension (hours-mode)
// and declination for the epoch.
func SunApparentRADec(e astro.Epoch) (ra, dec astro.Angle) {
	t := e.JulianCenturies()
	lam := SunApparentLongitude(e)

	omega := astro.NewAngle(125.04 - 1934.136*t)
	eps := astro.NewAngle(MeanObliquity(e).Deg() + 0.00256*omega.Cos())

	ra = astro.AngleFromRadians(math.Atan2(eps.Cos()*lam.Sin(), lam.Cos())).
		Normalize360().AsHours()
	dec = astro.AngleFromRadians(math.Asin(eps.Sin() * lam.Sin()))
	return ra, dec
}

// SunRectangularJ2000 returns the Sun's geocentric rectangular equatorial
// coordinates referred to J2000.0, in AU. Derived from the coarse longitude
// with a linear precession correction and the solar latitude neglected, so
// the accuracy is a few units in the fourth decimal.
func SunRectangularJ2000(e astro.Epoch) (x, y, z float64) {
	t := e.JulianCenturies()
	trueLon, r := SunTrueLongitudeCoarse(e)

	// Reduce the longitude of date to the J2000 equinox.
	lam := trueLon.Sub(astro.NewAngle(generalPrecession * t)).Normalize360()
	eps := astro.NewAngle(obliquityJ2000)

	x = r * lam.Cos()
	y = r * lam.Sin() * eps.Cos()
	z = r * lam.Sin() * eps.Sin()
	return x, y, z
}
