package astro

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidCalendarDate is returned for out-of-range calendar components,
// including dates falling in the 1582 Gregorian cutover gap.
var ErrInvalidCalendarDate = errors.New("invalid calendar date")

// Calendar selects which calendar rules apply to a civil date.
type Calendar int

const (
	// CalendarAuto picks Julian or Gregorian from the 1582-10-15 cutover.
	CalendarAuto Calendar = iota
	// CalendarGregorian forces proleptic Gregorian rules.
	CalendarGregorian
	// CalendarJulian forces Julian rules.
	CalendarJulian
)

// String returns the calendar name.
func (c Calendar) String() string {
	switch c {
	case CalendarGregorian:
		return "gregorian"
	case CalendarJulian:
		return "julian"
	default:
		return "auto"
	}
}

const (
	// J2000 is the Julian Day of the standard epoch J2000.0 (2000-01-01 12:00 TT).
	J2000 = 2451545.0

	// JulianCentury is the number of days in a Julian century.
	JulianCentury = 36525.0

	// gregorianCutoverJD is the Julian Day of 1582-10-15.0, the first
	// Gregorian calendar date.
	gregorianCutoverJD = 2299160.5
)

// Epoch is an immutable instant on the uniform Julian Day axis. The value is
// assumed to be Dynamical Time (TT); TTToUT/UTToTT convert explicitly.
type Epoch struct {
	jde float64
}

// EpochFromJD wraps a raw Julian Day number.
func EpochFromJD(jd float64) Epoch {
	return Epoch{jde: jd}
}

// NewEpoch creates an Epoch from a civil date, picking the calendar
// automatically at the 1582-10-15 cutover. day carries the time of day in
// its fractional part.
func NewEpoch(year, month int, day float64) (Epoch, error) {
	return NewEpochCalendar(year, month, day, CalendarAuto)
}

// NewEpochCalendar creates an Epoch from a civil date under explicit
// calendar rules.
func NewEpochCalendar(year, month int, day float64, cal Calendar) (Epoch, error) {
	if month < 1 || month > 12 {
		return Epoch{}, fmt.Errorf("%w: month %d out of [1,12]", ErrInvalidCalendarDate, month)
	}
	if cal == CalendarAuto {
		switch {
		case afterCutover(year, month, day):
			cal = CalendarGregorian
		case beforeCutover(year, month, day):
			cal = CalendarJulian
		default:
			// 1582-10-05 .. 1582-10-14 never existed.
			return Epoch{}, fmt.Errorf("%w: %d-%02d-%02d falls in the Gregorian cutover gap",
				ErrInvalidCalendarDate, year, month, int(day))
		}
	}
	maxDay := float64(monthLength(year, month, cal)) + 1
	if day < 1 || day >= maxDay {
		return Epoch{}, fmt.Errorf("%w: day %g out of [1,%g) for %d-%02d (%s)",
			ErrInvalidCalendarDate, day, maxDay, year, month, cal)
	}
	return Epoch{jde: calendarToJD(year, month, day, cal)}, nil
}

// EpochFromTime creates an Epoch from a time.Time (taken as UTC).
func EpochFromTime(t time.Time) Epoch {
	t = t.UTC()
	day := float64(t.Day()) +
		(float64(t.Hour())+float64(t.Minute())/60+
			(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600)/24
	return Epoch{jde: calendarToJD(t.Year(), int(t.Month()), day, CalendarGregorian)}
}

// Now returns the current instant as an Epoch.
func Now() Epoch {
	return EpochFromTime(time.Now())
}

// ParseEpoch parses "YYYY-MM-DD" with an optional fractional day, e.g.
// "1992-10-13" or "1992-10-13.1875". A leading '-' marks a negative year.
func ParseEpoch(s string) (Epoch, error) {
	s = strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Epoch{}, fmt.Errorf("%w: %q, want YYYY-MM-DD", ErrInvalidCalendarDate, s)
	}
	year, errY := strconv.Atoi(parts[0])
	month, errM := strconv.Atoi(parts[1])
	day, errD := strconv.ParseFloat(parts[2], 64)
	if errY != nil || errM != nil || errD != nil {
		return Epoch{}, fmt.Errorf("%w: %q, want YYYY-MM-DD", ErrInvalidCalendarDate, s)
	}
	if neg {
		year = -year
	}
	return NewEpoch(year, month, day)
}

// JD returns the raw Julian Day number.
func (e Epoch) JD() float64 { return e.jde }

// Add returns a new Epoch shifted by a real number of days.
func (e Epoch) Add(days float64) Epoch {
	return Epoch{jde: e.jde + days}
}

// Sub returns the day difference e - other.
func (e Epoch) Sub(other Epoch) float64 {
	return e.jde - other.jde
}

// Equal reports whether two epochs agree within Tol days.
func (e Epoch) Equal(other Epoch) bool {
	return math.Abs(e.jde-other.jde) < Tol
}

// JulianCenturies returns the time since J2000.0 in Julian centuries, the
// standard argument of series expansions.
func (e Epoch) JulianCenturies() float64 {
	return (e.jde - J2000) / JulianCentury
}

// CalendarDate decomposes the epoch into a civil date. With CalendarAuto the
// calendar in force at the epoch is used. Exact inverse of NewEpochCalendar
// for valid inputs.
func (e Epoch) CalendarDate(cal Calendar) (year, month int, day float64) {
	jd := e.jde + 0.5
	z := math.Floor(jd)
	f := jd - z

	gregorian := false
	switch cal {
	case CalendarGregorian:
		gregorian = true
	case CalendarJulian:
		gregorian = false
	default:
		gregorian = z >= 2299161
	}

	a := z
	if gregorian {
		alpha := math.Floor((z - 1867216.25) / 36524.25)
		a = z + 1 + alpha - math.Floor(alpha/4)
	}
	b := a + 1524
	c := math.Floor((b - 122.1) / 365.25)
	d := math.Floor(365.25 * c)
	el := math.Floor((b - d) / 30.6001)

	day = b - d - math.Floor(30.6001*el) + f
	if el < 14 {
		month = int(el) - 1
	} else {
		month = int(el) - 13
	}
	if month > 2 {
		year = int(c) - 4716
	} else {
		year = int(c) - 4715
	}
	return year, month, day
}

// LocalDate decomposes the epoch into a civil date after applying a static
// offset in hours from the reference meridian. Purely additive: no timezone
// database, no daylight saving.
func (e Epoch) LocalDate(offsetHours float64, cal Calendar) (year, month int, day float64) {
	return e.Add(offsetHours / 24).CalendarDate(cal)
}

// DayOfYear returns the 1-based ordinal day, respecting the epoch's calendar.
func (e Epoch) DayOfYear() int {
	year, month, day := e.CalendarDate(CalendarAuto)
	cal := CalendarGregorian
	if e.jde < gregorianCutoverJD {
		cal = CalendarJulian
	}
	k := 2
	if isLeap(year, cal) {
		k = 1
	}
	m := month
	return (275*m)/9 - k*((m+9)/12) + int(day) - 30
}

// Weekday returns the day of the week (0 = Sunday) of the epoch's civil date.
func (e Epoch) Weekday() int {
	return int(math.Mod(math.Floor(e.jde+1.5), 7))
}

// Time converts the epoch to a time.Time in UTC. Only meaningful for epochs
// within the range time.Time can represent.
func (e Epoch) Time() time.Time {
	year, month, day := e.CalendarDate(CalendarGregorian)
	d := int(day)
	frac := day - float64(d)
	secs := frac * 86400
	h := int(secs / 3600)
	m := int(secs/60) - h*60
	s := secs - float64(h*3600+m*60)
	si := int(s)
	ns := int((s - float64(si)) * 1e9)
	return time.Date(year, time.Month(month), d, h, m, si, ns, time.UTC)
}

// String renders the epoch as its auto-calendar civil date.
func (e Epoch) String() string {
	year, month, day := e.CalendarDate(CalendarAuto)
	return fmt.Sprintf("%d-%02d-%06.3f", year, month, day)
}

// calendarToJD implements the standard Julian Day formula (valid for the
// whole Julian and proleptic Gregorian ranges handled here).
func calendarToJD(year, month int, day float64, cal Calendar) float64 {
	y := float64(year)
	m := float64(month)
	if m <= 2 {
		y--
		m += 12
	}
	b := 0.0
	if cal == CalendarGregorian {
		a := math.Floor(y / 100)
		b = 2 - a + math.Floor(a/4)
	}
	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + day + b - 1524.5
}

// afterCutover reports whether a civil date is on or after 1582-10-15.
func afterCutover(year, month int, day float64) bool {
	switch {
	case year != 1582:
		return year > 1582
	case month != 10:
		return month > 10
	default:
		return day >= 15
	}
}

// beforeCutover reports whether a civil date is on or before the last Julian
// day, 1582-10-04 (inclusive of its whole day fraction).
func beforeCutover(year, month int, day float64) bool {
	switch {
	case year != 1582:
		return year < 1582
	case month != 10:
		return month < 10
	default:
		return day < 5
	}
}

func isLeap(year int, cal Calendar) bool {
	mod := func(a, n int) int { return ((a % n) + n) % n }
	if cal == CalendarJulian {
		return mod(year, 4) == 0
	}
	if mod(year, 4) != 0 {
		return false
	}
	if mod(year, 100) != 0 {
		return true
	}
	return mod(year, 400) == 0
}

func monthLength(year, month int, cal Calendar) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeap(year, cal) {
			return 29
		}
		return 28
	default:
		return 31
	}
}
