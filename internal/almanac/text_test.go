package almanac

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month int
		day   float64
		want  string
	}{
		{"midnight", 1992, 10, 13.0, "1992-10-13 00:00"},
		{"noon", 2024, 1, 1.5, "2024-01-01 12:00"},
		{"evening", 1957, 10, 4.81, "1957-10-04 19:26"},
		{"negative year", -1000, 7, 12.5, "-1000-07-12 12:00"},
		{"rounds up across the minute", 2024, 1, 1.4997, "2024-01-01 12:00"},
		{"clamps at end of day", 2024, 1, 1.99999, "2024-01-01 23:59"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("FormatDate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWriteSummary(t *testing.T) {
	r := mustReport(t, 1992, 10, 13.0, DefaultOptions())

	var buf bytes.Buffer
	WriteSummary(&buf, r)
	out := buf.String()

	for _, want := range []string{
		"1992-10-13 00:00 Tuesday",
		"JD  2448908.50000",
		"Sun",
		"Moon",
		"illuminated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteEvents(t *testing.T) {
	r := mustReport(t, 1992, 10, 13.0, DefaultOptions())

	var buf bytes.Buffer
	WriteEvents(&buf, r)
	out := buf.String()

	for _, want := range []string{
		"Upcoming events",
		"Perihelion",
		"Aphelion",
		"December solstice",
		"AU",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("events output missing %q:\n%s", want, out)
		}
	}

	// Rows come out chronologically: the first listed phase precedes the
	// solstice two months out.
	if strings.Index(out, "moon") > strings.Index(out, "December solstice") {
		t.Error("events output not in chronological order")
	}
}
