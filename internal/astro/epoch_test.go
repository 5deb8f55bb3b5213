package astro

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewEpochJulianDay(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   float64
		want  float64
	}{
		{"1992 Oct 13.0", 1992, 10, 13.0, 2448908.5},
		{"Sputnik launch 1957 Oct 4.81", 1957, 10, 4.81, 2436116.31},
		{"J2000.0", 2000, 1, 1.5, 2451545.0},
		{"333 Jan 27.5 (Julian calendar)", 333, 1, 27.5, 1842713.0},
		{"JD origin -4712 Jan 1.5", -4712, 1, 1.5, 0.0},
		{"Last Julian day 1582 Oct 4.0", 1582, 10, 4.0, 2299159.5},
		{"First Gregorian day 1582 Oct 15.0", 1582, 10, 15.0, 2299160.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEpoch(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatalf("NewEpoch() unexpected error: %v", err)
			}
			if math.Abs(e.JD()-tt.want) > 1e-6 {
				t.Errorf("NewEpoch() JD = %f, want %f", e.JD(), tt.want)
			}
		})
	}
}

func TestNewEpochInvalid(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   float64
	}{
		{"month 13", 1992, 13, 1},
		{"month 0", 1992, 0, 1},
		{"day 32 in January", 1992, 1, 32},
		{"Feb 30", 1992, 2, 30},
		{"Feb 29 in non-leap year", 1900, 2, 29},
		{"day 0", 1992, 1, 0},
		{"cutover gap 1582 Oct 5", 1582, 10, 5},
		{"cutover gap 1582 Oct 14.9", 1582, 10, 14.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEpoch(tt.year, tt.month, tt.day)
			if err == nil {
				t.Fatalf("NewEpoch(%d, %d, %g) error = nil, want error", tt.year, tt.month, tt.day)
			}
			if !errors.Is(err, ErrInvalidCalendarDate) {
				t.Errorf("error = %v, want ErrInvalidCalendarDate", err)
			}
		})
	}
}

func TestEpochLeapYears(t *testing.T) {
	tests := []struct {
		name string
		year int
		cal  Calendar
		leap bool
	}{
		{"2000 Gregorian", 2000, CalendarGregorian, true},
		{"1900 Gregorian", 1900, CalendarGregorian, false},
		{"1996 Gregorian", 1996, CalendarGregorian, true},
		{"1997 Gregorian", 1997, CalendarGregorian, false},
		{"1900 Julian", 1900, CalendarJulian, true},
		{"1000 Julian", 1000, CalendarJulian, true},
		{"-45 Julian", -45, CalendarJulian, false},
		{"-44 Julian", -44, CalendarJulian, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Feb 29 is constructible exactly when the year is leap.
			_, err := NewEpochCalendar(tt.year, 2, 29, tt.cal)
			if gotLeap := err == nil; gotLeap != tt.leap {
				t.Errorf("Feb 29 %d (%s): constructible = %v, want %v", tt.year, tt.cal, gotLeap, tt.leap)
			}
		})
	}
}

func TestEpochCalendarRoundTrip(t *testing.T) {
	tests := []struct {
		year  int
		month int
		day   float64
	}{
		{1992, 10, 13.0},
		{2000, 1, 1.5},
		{1957, 10, 4.81},
		{1582, 10, 4.0},
		{1582, 10, 15.0},
		{333, 1, 27.5},
		{-1000, 7, 12.5},
		{-4712, 1, 1.5},
		{2100, 12, 31.999},
	}

	for _, tt := range tests {
		e, err := NewEpoch(tt.year, tt.month, tt.day)
		if err != nil {
			t.Fatalf("NewEpoch(%d, %d, %g): %v", tt.year, tt.month, tt.day, err)
		}
		y, m, d := e.CalendarDate(CalendarAuto)
		if y != tt.year || m != tt.month || math.Abs(d-tt.day) > 1e-6 {
			t.Errorf("CalendarDate() = (%d, %d, %f), want (%d, %d, %f)",
				y, m, d, tt.year, tt.month, tt.day)
		}
	}
}

func TestEpochArithmetic(t *testing.T) {
	a, _ := NewEpoch(1991, 7, 11)
	b, _ := NewEpoch(1991, 7, 12.5)

	if got := b.Sub(a); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("Sub() = %g, want 1.5", got)
	}
	if got := a.Add(1.5); !got.Equal(b) {
		t.Errorf("Add(1.5) JD = %f, want %f", got.JD(), b.JD())
	}
}

func TestEpochDayOfYear(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   float64
		want  int
	}{
		{"1978 Nov 14", 1978, 11, 14, 318},
		{"1988 Apr 22 (leap)", 1988, 4, 22, 113},
		{"Jan 1", 2003, 1, 1, 1},
		{"Dec 31 common", 2003, 12, 31, 365},
		{"Dec 31 leap", 2004, 12, 31, 366},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEpoch(tt.year, tt.month, tt.day)
			if err != nil {
				t.Fatal(err)
			}
			if got := e.DayOfYear(); got != tt.want {
				t.Errorf("DayOfYear() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEpochWeekday(t *testing.T) {
	// 1954 June 30 was a Wednesday.
	e, _ := NewEpoch(1954, 6, 30)
	if got := e.Weekday(); got != 3 {
		t.Errorf("Weekday() = %d, want 3 (Wednesday)", got)
	}
}

func TestEpochTimeRoundTrip(t *testing.T) {
	orig := time.Date(2024, 3, 20, 6, 30, 15, 0, time.UTC)
	e := EpochFromTime(orig)
	back := e.Time()
	if diff := back.Sub(orig); diff < -time.Millisecond || diff > time.Millisecond {
		t.Errorf("Time() round trip drifted by %v", diff)
	}
}

func TestParseEpoch(t *testing.T) {
	tests := []struct {
		in      string
		wantJD  float64
		wantErr bool
	}{
		{"1992-10-13", 2448908.5, false},
		{"2000-01-1.5", 2451545.0, false},
		{"-1000-07-12.5", 1356001.0, false},
		{"1992/10/13", 0, true},
		{"1992-13-01", 0, true},
		{"not-a-date", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, err := ParseEpoch(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseEpoch(%q) error = nil, want error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseEpoch(%q) unexpected error: %v", tt.in, err)
			}
			if math.Abs(e.JD()-tt.wantJD) > 1e-6 {
				t.Errorf("ParseEpoch(%q) JD = %f, want %f", tt.in, e.JD(), tt.wantJD)
			}
		})
	}
}

func TestEpochLocalDate(t *testing.T) {
	// 1992 Oct 13.0 TT shifted -6h lands on Oct 12.75 local.
	e, _ := NewEpoch(1992, 10, 13.0)
	y, m, d := e.LocalDate(-6, CalendarAuto)
	if y != 1992 || m != 10 || math.Abs(d-12.75) > 1e-9 {
		t.Errorf("LocalDate(-6) = (%d, %d, %f), want (1992, 10, 12.75)", y, m, d)
	}
}
