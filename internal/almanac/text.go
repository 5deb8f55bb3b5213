package almanac

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/litescript/ls-almanac/internal/astro"
)

// WriteSummary writes a plain-text report summary for headless mode.
func WriteSummary(w io.Writer, r *Report) {
	fmt.Fprintf(w, "%s %s  (day %d)\n",
		FormatDate(r.Year, r.Month, r.Day), WeekdayName(r.Weekday), r.DayOfYear)
	fmt.Fprintf(w, "  JD  %.5f UT\n", r.UT.JD())
	fmt.Fprintf(w, "  JDE %.5f TT", r.TT.JD())
	if r.DeltaT.Extrapolated {
		fmt.Fprintf(w, "  (Delta-T %+.1f s, extrapolated)", r.DeltaT.Seconds)
	} else {
		fmt.Fprintf(w, "  (Delta-T %+.1f s)", r.DeltaT.Seconds)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "\nSun")
	fmt.Fprintf(w, "  longitude   %s\n", r.Sun.ApparentLongitude)
	fmt.Fprintf(w, "  RA / Dec    %s / %s\n", r.Sun.RA, r.Sun.Dec)
	fmt.Fprintf(w, "  distance    %.5f AU\n", r.Sun.Distance)

	fmt.Fprintln(w, "\nEcliptic")
	fmt.Fprintf(w, "  true obliquity  %s\n", r.TrueObliquity)
	fmt.Fprintf(w, "  nutation        %+.3f″ lon, %+.3f″ obl\n",
		r.NutationLongitude.Deg()*3600, r.NutationObliquity.Deg()*3600)

	fmt.Fprintln(w, "\nMoon")
	fmt.Fprintf(w, "  elongation  %s\n", r.Moon.Elongation)
	fmt.Fprintf(w, "  illuminated %.0f%%  (%s)\n", r.Moon.Illuminated*100, r.Moon.Description)
}

// WriteEvents writes the report's upcoming events in chronological order.
func WriteEvents(w io.Writer, r *Report) {
	type row struct {
		name  string
		epoch astro.Epoch
		note  string
	}

	rows := make([]row, 0, 7)
	for _, pi := range r.Moon.NextPhases {
		rows = append(rows, row{name: pi.Phase.String(), epoch: pi.Epoch})
	}
	rows = append(rows, row{name: r.NextSeason.Type.String(), epoch: r.NextSeason.Epoch})
	rows = append(rows, row{
		name: "Perihelion", epoch: r.Perihelion.Epoch,
		note: fmt.Sprintf("  %.5f AU", r.Perihelion.Distance),
	})
	rows = append(rows, row{
		name: "Aphelion", epoch: r.Aphelion.Epoch,
		note: fmt.Sprintf("  %.5f AU", r.Aphelion.Distance),
	})

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].epoch.JD() < rows[j].epoch.JD()
	})

	fmt.Fprintln(w, "Upcoming events (TT)")
	for _, ev := range rows {
		y, mo, d := ev.epoch.CalendarDate(astro.CalendarAuto)
		fmt.Fprintf(w, "  %-18s %s  in %6.2f d%s\n",
			ev.name, FormatDate(y, mo, d), ev.epoch.Sub(r.TT), ev.note)
	}
}

// FormatDate renders a civil date with the fractional day as hh:mm, the one
// formatter shared by the headless output and the TUI. The fraction rounds
// to the nearest minute and clamps at 23:59 so it never rolls the day.
func FormatDate(year, month int, day float64) string {
	d := int(day)
	mins := int(math.Round((day - float64(d)) * 1440))
	if mins >= 1440 {
		mins = 1439
	}
	return fmt.Sprintf("%d-%02d-%02d %02d:%02d", year, month, d, mins/60, mins%60)
}
