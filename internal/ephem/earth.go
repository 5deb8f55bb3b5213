package ephem

import (
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
)

// Ellipsoid encapsulates a reference ellipsoid for the Earth's globe.
type Ellipsoid struct {
	A     float64 // equatorial radius, km
	F     float64 // flattening
	Omega float64 // angular velocity, rad/s
}

// IAU76 is the reference ellipsoid of the IAU (1976) system of constants.
var IAU76 = Ellipsoid{A: 6378.140, F: 1.0 / 298.257, Omega: 7.292114992e-5}

// WGS84 is the World Geodetic System 1984 ellipsoid.
var WGS84 = Ellipsoid{A: 6378.137, F: 1.0 / 298.257223563, Omega: 7.292115e-5}

// B returns the polar radius in km.
func (el Ellipsoid) B() float64 {
	return el.A * (1 - el.F)
}

// Eccentricity returns the eccentricity of the ellipsoid's meridian.
func (el Ellipsoid) Eccentricity() float64 {
	return math.Sqrt(2*el.F - el.F*el.F)
}

// RhoSinPhiPrime and RhoCosPhiPrime return the geocentric quantities used in
// diurnal parallax work: rho is the observer's distance from the Earth's
// center in equatorial radii and phi' the geocentric latitude. height is the
// observer's altitude above sea level in meters.
func (el Ellipsoid) RhoSinPhiPrime(lat astro.Angle, height float64) float64 {
	u := el.geocentricU(lat)
	return el.B()/el.A*math.Sin(u) + height/(el.A*1000)*lat.Sin()
}

// RhoCosPhiPrime is the companion of RhoSinPhiPrime.
func (el Ellipsoid) RhoCosPhiPrime(lat astro.Angle, height float64) float64 {
	u := el.geocentricU(lat)
	return math.Cos(u) + height/(el.A*1000)*lat.Cos()
}

// LinearVelocity returns the linear rotation speed of a point at the given
// geodetic latitude, in km/s.
func (el Ellipsoid) LinearVelocity(lat astro.Angle) float64 {
	n := el.A / math.Sqrt(1-math.Pow(el.Eccentricity()*lat.Sin(), 2))
	return el.Omega * n * lat.Cos()
}

func (el Ellipsoid) geocentricU(lat astro.Angle) float64 {
	return math.Atan(el.B() / el.A * math.Tan(lat.Rad()))
}
