package astro

// Delta-T model: the difference TT - UT in seconds, from the piecewise
// polynomial fits by Espenak and Meeus. Each segment is a least-squares fit
// to historical observations; the joins are continuous only to within the
// fit's own accuracy, so TT/UT round-trips are consistent to the model
// tolerance rather than bit-exact.

// deltaTFittedMin and deltaTFittedMax bound the years covered by the fitted
// segments. Outside them the parabolic long-term trend is used and results
// carry lower confidence.
const (
	deltaTFittedMin = -500
	deltaTFittedMax = 2150
)

// DeltaTResult is a Delta-T value in seconds plus a confidence flag.
type DeltaTResult struct {
	Seconds float64
	// Extrapolated is true when the epoch's year lies outside the fitted
	// historical range and only the long-term parabola applies.
	Extrapolated bool
}

// DeltaT returns the TT - UT offset for the epoch's year. It never fails:
// outside the fitted range the long-term extrapolation is returned with the
// Extrapolated flag set.
func (e Epoch) DeltaT() DeltaTResult {
	year, month, _ := e.CalendarDate(CalendarAuto)
	// Decimal year at mid-month, the argument the fits were built for.
	y := float64(year) + (float64(month)-0.5)/12
	return DeltaTResult{
		Seconds:      deltaTSeconds(y),
		Extrapolated: y < deltaTFittedMin || y > deltaTFittedMax,
	}
}

// TTToUT returns the epoch shifted from Dynamical Time to Universal Time.
func (e Epoch) TTToUT() Epoch {
	return e.Add(-e.DeltaT().Seconds / 86400)
}

// UTToTT returns the epoch shifted from Universal Time to Dynamical Time.
func (e Epoch) UTToTT() Epoch {
	return e.Add(e.DeltaT().Seconds / 86400)
}

func deltaTSeconds(y float64) float64 {
	switch {
	case y < -500:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 500:
		u := y / 100
		return poly(u, 10583.6, -1014.41, 33.78311, -5.952053,
			-0.1798452, 0.022174192, 0.0090316521)
	case y < 1600:
		u := (y - 1000) / 100
		return poly(u, 1574.2, -556.01, 71.23472, 0.319781,
			-0.8503463, -0.005050998, 0.0083572073)
	case y < 1700:
		t := y - 1600
		return poly(t, 120, -0.9808, -0.01532, 1.0/7129)
	case y < 1800:
		t := y - 1700
		return poly(t, 8.83, 0.1603, -0.0059285, 0.00013336, -1.0/1174000)
	case y < 1860:
		t := y - 1800
		return poly(t, 13.72, -0.332447, 0.0068612, 0.0041116, -0.00037436,
			0.0000121272, -0.0000001699, 0.000000000875)
	case y < 1900:
		t := y - 1860
		return poly(t, 7.62, 0.5737, -0.251754, 0.01680668, -0.0004473624, 1.0/233174)
	case y < 1920:
		t := y - 1900
		return poly(t, -2.79, 1.494119, -0.0598939, 0.0061966, -0.000197)
	case y < 1941:
		t := y - 1920
		return poly(t, 21.20, 0.84493, -0.076100, 0.0020936)
	case y < 1961:
		t := y - 1950
		return poly(t, 29.07, 0.407, -1.0/233, 1.0/2547)
	case y < 1986:
		t := y - 1975
		return poly(t, 45.45, 1.067, -1.0/260, -1.0/718)
	case y < 2005:
		t := y - 2000
		return poly(t, 63.86, 0.3345, -0.060374, 0.0017275, 0.000651814, 0.00002373599)
	case y < 2050:
		t := y - 2000
		return poly(t, 62.92, 0.32217, 0.005589)
	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

// poly evaluates c0 + c1*x + c2*x^2 + ... by Horner's rule.
func poly(x float64, coeffs ...float64) float64 {
	v := 0.0
	for i := len(coeffs) - 1; i >= 0; i-- {
		v = v*x + coeffs[i]
	}
	return v
}
