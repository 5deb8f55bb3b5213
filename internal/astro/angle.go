// Package astro provides the numerical primitives shared by every ephemeris
// module: angles, epochs, periodic series evaluation and event interpolation.
package astro

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tol is the tolerance used for angle and epoch equality, in degrees or days.
const Tol = 1e-10

// ErrInvalidAngleFormat is returned for malformed sexagesimal input.
var ErrInvalidAngleFormat = errors.New("invalid angle format")

// Angle is an immutable angular value stored internally in decimal degrees.
//
// Arithmetic never wraps the result: normalization to [0,360) or (-180,180]
// is always an explicit call, so raw sums keep their physical meaning (e.g.
// cumulative rotation) until the caller reduces them.
type Angle struct {
	deg   float64
	hours bool // render as hours (right ascension style)
}

// NewAngle creates an Angle from decimal degrees.
func NewAngle(deg float64) Angle {
	return Angle{deg: deg}
}

// AngleFromRadians creates an Angle from a value in radians.
func AngleFromRadians(rad float64) Angle {
	return Angle{deg: rad * 180 / math.Pi}
}

// AngleFromHours creates an hours-mode Angle from decimal hours
// (1 hour = 15 degrees).
func AngleFromHours(h float64) Angle {
	return Angle{deg: h * 15, hours: true}
}

// AngleFromDMS creates an Angle from sexagesimal components. sign must be
// +1 or -1 and applies to the whole angle; degrees, minutes and seconds are
// given as non-negative magnitudes, with minutes and seconds in [0,60).
func AngleFromDMS(sign int, degrees int, minutes int, seconds float64) (Angle, error) {
	if sign != 1 && sign != -1 {
		return Angle{}, fmt.Errorf("%w: sign must be +1 or -1, got %d", ErrInvalidAngleFormat, sign)
	}
	if degrees < 0 {
		return Angle{}, fmt.Errorf("%w: degrees must be non-negative, got %d", ErrInvalidAngleFormat, degrees)
	}
	if minutes < 0 || minutes >= 60 {
		return Angle{}, fmt.Errorf("%w: minutes out of [0,60): %d", ErrInvalidAngleFormat, minutes)
	}
	if seconds < 0 || seconds >= 60 {
		return Angle{}, fmt.Errorf("%w: seconds out of [0,60): %g", ErrInvalidAngleFormat, seconds)
	}
	deg := float64(degrees) + float64(minutes)/60 + seconds/3600
	return Angle{deg: float64(sign) * deg}, nil
}

// ParseAngle parses sexagesimal text of the form "dd mm ss.s", with an
// optional leading sign on the degrees field. A single field is read as
// decimal degrees.
func ParseAngle(s string) (Angle, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	switch len(fields) {
	case 1:
		deg, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return Angle{}, fmt.Errorf("%w: %q", ErrInvalidAngleFormat, s)
		}
		return NewAngle(deg), nil
	case 3:
		sign := 1
		dField := fields[0]
		if strings.HasPrefix(dField, "-") {
			sign = -1
			dField = dField[1:]
		} else if strings.HasPrefix(dField, "+") {
			dField = dField[1:]
		}
		d, errD := strconv.Atoi(dField)
		m, errM := strconv.Atoi(fields[1])
		sec, errS := strconv.ParseFloat(fields[2], 64)
		if errD != nil || errM != nil || errS != nil {
			return Angle{}, fmt.Errorf("%w: %q", ErrInvalidAngleFormat, s)
		}
		return AngleFromDMS(sign, d, m, sec)
	default:
		return Angle{}, fmt.Errorf("%w: %q, want 1 or 3 fields", ErrInvalidAngleFormat, s)
	}
}

// AsHours returns a copy flagged for hours-mode rendering. The stored value
// is unchanged; only String() output is affected.
func (a Angle) AsHours() Angle {
	a.hours = true
	return a
}

// IsHours reports whether the angle renders in hours mode.
func (a Angle) IsHours() bool { return a.hours }

// Deg returns the angle in decimal degrees.
func (a Angle) Deg() float64 { return a.deg }

// Rad returns the angle in radians.
func (a Angle) Rad() float64 { return a.deg * math.Pi / 180 }

// Hours returns the angle in decimal hours (degrees / 15).
func (a Angle) Hours() float64 { return a.deg / 15 }

// DMS decomposes the angle into sign and sexagesimal magnitudes.
// sign is +1 or -1; degrees, minutes are integral, seconds carries the
// fraction. Inverse of AngleFromDMS up to floating-point rounding.
func (a Angle) DMS() (sign int, degrees int, minutes int, seconds float64) {
	return sexagesimal(a.deg)
}

// HMS decomposes the angle into sign, hours, minutes and seconds of time.
func (a Angle) HMS() (sign int, hours int, minutes int, seconds float64) {
	return sexagesimal(a.deg / 15)
}

func sexagesimal(v float64) (sign int, whole int, minutes int, seconds float64) {
	sign = 1
	if v < 0 {
		sign = -1
		v = -v
	}
	whole = int(v)
	rem := (v - float64(whole)) * 60
	minutes = int(rem)
	seconds = (rem - float64(minutes)) * 60
	// Guard against 60.0 seconds from rounding up.
	if seconds >= 60-1e-9 {
		seconds = 0
		minutes++
	}
	if minutes >= 60 {
		minutes = 0
		whole++
	}
	return sign, whole, minutes, seconds
}

// Normalize360 returns the angle folded into [0,360).
func (a Angle) Normalize360() Angle {
	d := math.Mod(a.deg, 360)
	if d < 0 {
		d += 360
	}
	return Angle{deg: d, hours: a.hours}
}

// Normalize180 returns the angle folded into (-180,180].
func (a Angle) Normalize180() Angle {
	d := math.Mod(a.deg, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return Angle{deg: d, hours: a.hours}
}

// Add returns a + b, unnormalized.
func (a Angle) Add(b Angle) Angle {
	return Angle{deg: a.deg + b.deg, hours: a.hours}
}

// Sub returns a - b, unnormalized.
func (a Angle) Sub(b Angle) Angle {
	return Angle{deg: a.deg - b.deg, hours: a.hours}
}

// Neg returns -a.
func (a Angle) Neg() Angle {
	return Angle{deg: -a.deg, hours: a.hours}
}

// Mul returns the angle scaled by k.
func (a Angle) Mul(k float64) Angle {
	return Angle{deg: a.deg * k, hours: a.hours}
}

// Div returns the angle divided by k.
func (a Angle) Div(k float64) Angle {
	return Angle{deg: a.deg / k, hours: a.hours}
}

// Sin returns the sine of the angle.
func (a Angle) Sin() float64 { return math.Sin(a.Rad()) }

// Cos returns the cosine of the angle.
func (a Angle) Cos() float64 { return math.Cos(a.Rad()) }

// Equal reports whether two angles agree within Tol degrees.
func (a Angle) Equal(b Angle) bool {
	return math.Abs(a.deg-b.deg) < Tol
}

// Less reports whether a is smaller than b by more than Tol.
func (a Angle) Less(b Angle) bool {
	return a.deg < b.deg-Tol
}

// String renders the angle in sexagesimal form, using hours notation when
// the angle is hours-mode.
func (a Angle) String() string {
	if a.hours {
		sign, h, m, s := a.HMS()
		prefix := ""
		if sign < 0 {
			prefix = "-"
		}
		return fmt.Sprintf("%s%dh %d' %.1f''", prefix, h, m, s)
	}
	sign, d, m, s := a.DMS()
	prefix := ""
	if sign < 0 {
		prefix = "-"
	}
	return fmt.Sprintf("%s%dd %d' %.1f''", prefix, d, m, s)
}
