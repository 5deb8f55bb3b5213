package ephem

import (
	"fmt"
	"math"

	"github.com/litescript/ls-almanac/internal/astro"
)

// SolveKepler solves Kepler's equation E - e*sin(E) = M for the eccentric
// anomaly E and derives the true anomaly v. ecc must be in [0,1); the
// Newton iteration converges quadratically for all elliptical orbits.
func SolveKepler(ecc float64, m astro.Angle) (eccentric, trueAnomaly astro.Angle, err error) {
	if ecc < 0 || ecc >= 1 {
		return astro.Angle{}, astro.Angle{}, fmt.Errorf("eccentricity %g outside [0,1)", ecc)
	}

	mRad := m.Normalize360().Rad()
	e0 := mRad
	if ecc > 0.8 {
		// High eccentricity: M is a poor starting point near perihelion.
		e0 = math.Pi
	}

	for i := 0; i < 50; i++ {
		delta := (mRad + ecc*math.Sin(e0) - e0) / (1 - ecc*math.Cos(e0))
		e0 += delta
		if math.Abs(delta) < 1e-14 {
			break
		}
	}

	v := 2 * math.Atan2(math.Sqrt(1+ecc)*math.Sin(e0/2), math.Sqrt(1-ecc)*math.Cos(e0/2))
	return astro.AngleFromRadians(e0), astro.AngleFromRadians(v), nil
}
