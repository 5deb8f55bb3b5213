package ephem

import (
	"fmt"
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
)

// OrbitalElements describes the heliocentric orbit of a minor body (comet
// or minor planet), referred to the standard equinox J2000.0.
type OrbitalElements struct {
	A               float64     // semi-major axis, AU
	E               float64     // eccentricity
	I               astro.Angle // inclination
	Omega           astro.Angle // longitude of the ascending node
	W               astro.Angle // argument of the perihelion
	PerihelionEpoch astro.Epoch // epoch of passage through perihelion
}

// Sine and cosine of the J2000 obliquity, used to rotate orbital-plane
// coordinates into the equatorial frame.
const (
	sinEps0 = 0.397777156
	cosEps0 = 0.917482062
)

// lightTimeDays is the light travel time for 1 AU, in days.
const lightTimeDays = 0.0057755183

// MinorGeocentricPosition computes the geocentric right ascension
// (hours-mode) and declination of a minor body at the given epoch, referred
// to J2000.0, including a single light-time correction pass.
func MinorGeocentricPosition(el OrbitalElements, epoch astro.Epoch) (ra, dec astro.Angle, err error) {
	if el.A <= 0 {
		return astro.Angle{}, astro.Angle{}, fmt.Errorf("semi-major axis must be positive, got %g", el.A)
	}

	// Gaussian constants of the orbit orientation.
	omer := el.Omega.Rad()
	ir := el.I.Rad()
	f := math.Cos(omer)
	g := math.Sin(omer) * cosEps0
	h := math.Sin(omer) * sinEps0
	p := -math.Sin(omer) * math.Cos(ir)
	q := math.Cos(omer)*math.Cos(ir)*cosEps0 - math.Sin(ir)*sinEps0
	r := math.Cos(omer)*math.Cos(ir)*sinEps0 + math.Sin(ir)*cosEps0
	aa := math.Atan2(f, p)
	bb := math.Atan2(g, q)
	cc := math.Atan2(h, r)
	am := math.Sqrt(f*f + p*p)
	bm := math.Sqrt(g*g + q*q)
	cm := math.Sqrt(h*h + r*r)

	// Mean motion in degrees/day.
	n := 0.9856076686 / (el.A * math.Sqrt(el.A))

	xs, ys, zs := SunRectangularJ2000(epoch)

	heliocentric := func(tPeri float64) (x, y, z float64, err error) {
		m := astro.NewAngle(tPeri * n)
		ecc, v, err := SolveKepler(el.E, m)
		if err != nil {
			return 0, 0, 0, err
		}
		rr := el.A * (1 - el.E*ecc.Normalize360().Cos())
		arg := el.W.Rad() + v.Rad()
		x = rr * am * math.Sin(aa+arg)
		y = rr * bm * math.Sin(bb+arg)
		z = rr * cm * math.Sin(cc+arg)
		return x, y, z, nil
	}

	tPeri := epoch.Sub(el.PerihelionEpoch)
	x, y, z, err := heliocentric(tPeri)
	if err != nil {
		return astro.Angle{}, astro.Angle{}, err
	}
	xi := x + xs
	eta := y + ys
	zeta := z + zs
	delta := math.Sqrt(xi*xi + eta*eta + zeta*zeta)

	// Antedate for light time and recompute.
	tau := lightTimeDays * delta
	x, y, z, err = heliocentric(tPeri - tau)
	if err != nil {
		return astro.Angle{}, astro.Angle{}, err
	}
	xi = x + xs
	eta = y + ys
	zeta = z + zs

	ra = astro.AngleFromRadians(math.Atan2(eta, xi)).Normalize360().AsHours()
	dec = astro.AngleFromRadians(math.Atan2(zeta, math.Sqrt(xi*xi+eta*eta)))
	return ra, dec, nil
}
