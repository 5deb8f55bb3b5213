package almanac

import (
	"math"
	"testing"

	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/ephem"
)

func mustReport(t *testing.T, year, month int, day float64, opts Options) *Report {
	t.Helper()
	e, err := astro.NewEpoch(year, month, day)
	if err != nil {
		t.Fatalf("NewEpoch(%d, %d, %g): %v", year, month, day, err)
	}
	r, err := Compute(e, opts)
	if err != nil {
		t.Fatalf("Compute(): %v", err)
	}
	return r
}

func TestComputeBasics(t *testing.T) {
	r := mustReport(t, 1992, 10, 13.0, DefaultOptions())

	if r.Year != 1992 || r.Month != 10 || math.Abs(r.Day-13.0) > 1e-9 {
		t.Errorf("civil date = %d-%02d-%.4f, want 1992-10-13.0", r.Year, r.Month, r.Day)
	}
	if r.DayOfYear != 287 {
		t.Errorf("DayOfYear = %d, want 287", r.DayOfYear)
	}
	if r.Weekday != 2 {
		t.Errorf("Weekday = %d (%s), want 2 (Tuesday)", r.Weekday, WeekdayName(r.Weekday))
	}

	// TT leads UT by Delta-T.
	gotDT := r.TT.Sub(r.UT) * 86400
	if math.Abs(gotDT-r.DeltaT.Seconds) > 1e-6 {
		t.Errorf("TT-UT = %.6f s, want DeltaT %.6f s", gotDT, r.DeltaT.Seconds)
	}
	if r.DeltaT.Extrapolated {
		t.Error("DeltaT.Extrapolated = true for 1992, want false")
	}
}

func TestComputeSun(t *testing.T) {
	r := mustReport(t, 1992, 10, 13.0, DefaultOptions())

	// Meeus worked example values for this instant, with slack for the
	// 59 s Delta-T shift between the UT request and the tabulated TD.
	if got := r.Sun.ApparentLongitude.Deg(); math.Abs(got-199.909) > 0.05 {
		t.Errorf("apparent longitude = %.4f, want ~199.909", got)
	}
	if got := r.Sun.Dec.Deg(); math.Abs(got-(-7.785)) > 0.05 {
		t.Errorf("declination = %.4f, want ~-7.785", got)
	}
	if got := r.Sun.Distance; math.Abs(got-0.99766) > 5e-4 {
		t.Errorf("distance = %.5f AU, want ~0.99766", got)
	}
	if !r.Sun.RA.IsHours() {
		t.Error("RA not in hours mode")
	}
}

func TestComputeObliquityAndNutation(t *testing.T) {
	r := mustReport(t, 1992, 10, 13.0, DefaultOptions())

	if got := r.MeanObliquity.Deg(); math.Abs(got-23.44) > 0.01 {
		t.Errorf("mean obliquity = %.4f, want ~23.44", got)
	}
	diff := r.TrueObliquity.Sub(r.MeanObliquity).Deg() - r.NutationObliquity.Deg()
	if math.Abs(diff) > 1e-12 {
		t.Errorf("true - mean obliquity inconsistent with nutation by %g deg", diff)
	}
	if got := math.Abs(r.NutationLongitude.Deg()); got > 20.0/3600 {
		t.Errorf("nutation in longitude = %g deg, outside physical bounds", got)
	}
}

func TestComputeMoon(t *testing.T) {
	r := mustReport(t, 1992, 10, 13.0, DefaultOptions())

	if len(r.Moon.NextPhases) != 4 {
		t.Fatalf("NextPhases has %d entries, want 4", len(r.Moon.NextPhases))
	}
	for i := 1; i < 4; i++ {
		if !(r.Moon.NextPhases[i].Epoch.JD() > r.Moon.NextPhases[i-1].Epoch.JD()) {
			t.Errorf("phases out of order at index %d", i)
		}
	}
	if r.Moon.Illuminated < 0 || r.Moon.Illuminated > 1 {
		t.Errorf("Illuminated = %g, want within [0,1]", r.Moon.Illuminated)
	}
	wantFrac := (1 - r.Moon.Elongation.Cos()) / 2
	if math.Abs(r.Moon.Illuminated-wantFrac) > 1e-12 {
		t.Errorf("Illuminated = %g inconsistent with elongation", r.Moon.Illuminated)
	}
	// Full moon fell on 1992 Oct 11; two days later the moon is waning.
	if d := r.Moon.Description; d != "waning gibbous" && d != "full moon" {
		t.Errorf("Description = %q, want a just-past-full phase", d)
	}

	if _, ok := r.NextPhaseOf(ephem.NewMoon); !ok {
		t.Error("NextPhaseOf(NewMoon) not found in a full lunation")
	}
}

func TestComputeEvents(t *testing.T) {
	r := mustReport(t, 1992, 10, 13.0, DefaultOptions())

	if r.NextSeason.Type != ephem.DecemberSolstice {
		t.Errorf("NextSeason.Type = %s, want December solstice", r.NextSeason.Type)
	}
	if d := r.DaysUntilSeason(); d < 60 || d > 80 {
		t.Errorf("DaysUntilSeason() = %.1f, want ~69", d)
	}

	py, pm, _ := r.Perihelion.Epoch.CalendarDate(astro.CalendarAuto)
	if py != 1993 || pm != 1 {
		t.Errorf("perihelion at %d-%02d, want 1993-01", py, pm)
	}
	ay, am, _ := r.Aphelion.Epoch.CalendarDate(astro.CalendarAuto)
	if ay != 1993 || am != 7 {
		t.Errorf("aphelion at %d-%02d, want 1993-07", ay, am)
	}
	if r.Perihelion.Distance >= r.Aphelion.Distance {
		t.Errorf("perihelion distance %.5f not below aphelion %.5f",
			r.Perihelion.Distance, r.Aphelion.Distance)
	}
}

func TestComputeLocalOffset(t *testing.T) {
	opts := DefaultOptions()
	opts.UTCOffset = -6
	r := mustReport(t, 1992, 10, 13.0, opts)
	if r.Year != 1992 || r.Month != 10 || math.Abs(r.Day-12.75) > 1e-9 {
		t.Errorf("local date = %d-%02d-%.4f, want 1992-10-12.75", r.Year, r.Month, r.Day)
	}
}

func TestWeekdayName(t *testing.T) {
	if got := WeekdayName(0); got != "Sunday" {
		t.Errorf("WeekdayName(0) = %q, want Sunday", got)
	}
	if got := WeekdayName(7); got != "unknown" {
		t.Errorf("WeekdayName(7) = %q, want unknown", got)
	}
}
