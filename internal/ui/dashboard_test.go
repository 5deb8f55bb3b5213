package ui

import (
	"math"
	"strings"
	"testing"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
)

func testReport(t *testing.T) *almanac.Report {
	t.Helper()
	e, err := astro.NewEpoch(1992, 10, 13.0)
	if err != nil {
		t.Fatalf("NewEpoch: %v", err)
	}
	r, err := almanac.Compute(e, almanac.DefaultOptions())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return r
}

func TestDashboardViewEmpty(t *testing.T) {
	m := NewDashboardModel()
	if got := m.View(); !strings.Contains(got, "Computing") {
		t.Errorf("empty view = %q, want a computing notice", got)
	}
}

func TestDashboardViewPanels(t *testing.T) {
	m := NewDashboardModel().SetSize(80, 30).UpdateData(testReport(t))
	out := m.View()

	for _, want := range []string{
		"Date & Time",
		"1992-10-13",
		"Tuesday",
		"2448908.5",
		"Sun",
		"Distance",
		"Ecliptic & Nutation",
		"Moon",
		"Illuminated",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard view missing %q", want)
		}
	}
}

func TestRenderPhaseBar(t *testing.T) {
	m := NewDashboardModel().UpdateData(testReport(t))
	bar := m.renderPhaseBar()
	if strings.Count(bar, "●") != 1 {
		t.Errorf("phase bar should carry exactly one marker, got %q", bar)
	}
}

func TestFmtEpoch(t *testing.T) {
	e, err := astro.NewEpoch(1992, 10, 13.5)
	if err != nil {
		t.Fatalf("NewEpoch: %v", err)
	}
	if got := fmtEpoch(e); got != "1992-10-13 12:00" {
		t.Errorf("fmtEpoch() = %q, want 1992-10-13 12:00", got)
	}
}

func TestFmtArcsec(t *testing.T) {
	a := astro.NewAngle(-3.788 / 3600)
	got := fmtArcsec(a)
	if !strings.HasPrefix(got, "-3.788") {
		t.Errorf("fmtArcsec() = %q, want -3.788″", got)
	}
	if !strings.Contains(got, "″") {
		t.Errorf("fmtArcsec() = %q missing arcsecond mark", got)
	}
}

func TestGradientColorInRange(t *testing.T) {
	for col := 0; col < 80; col += 7 {
		for row := 0; row < 6; row++ {
			c := gradientColor(col, row, 80, 6)
			if len(c) != 7 || c[0] != '#' {
				t.Fatalf("gradientColor(%d,%d) = %q, want #RRGGBB", col, row, c)
			}
		}
	}
	if clamp8(-5) != 0 || clamp8(300) != 255 || clamp8(128) != 128 {
		t.Error("clamp8 bounds wrong")
	}
}

func TestIlluminatedPercentRendered(t *testing.T) {
	r := testReport(t)
	m := NewDashboardModel().UpdateData(r)
	out := m.renderMoonPanel()

	pct := int(math.Round(r.Moon.Illuminated * 100))
	if !strings.Contains(out, "%") {
		t.Errorf("moon panel missing percent sign: %q", out)
	}
	if pct < 0 || pct > 100 {
		t.Errorf("illuminated percent %d out of range", pct)
	}
}
