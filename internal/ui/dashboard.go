package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
)

// Styles for the dashboard
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))
)

// DashboardModel is the single-date almanac view.
type DashboardModel struct {
	width  int
	height int
	report *almanac.Report
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// Init implements the Bubble Tea model interface.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new report.
func (m DashboardModel) UpdateData(r *almanac.Report) DashboardModel {
	m.report = r
	return m
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	if m.report == nil {
		return "  Computing almanac...\n"
	}

	left := m.renderDatePanel() + "\n" + m.renderSunPanel()
	right := m.renderSkyPanel() + "\n" + m.renderMoonPanel()

	if m.width >= 84 {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(m.width/2).Render(left),
			right,
		)
	}
	return left + "\n" + right
}

func (m DashboardModel) renderDatePanel() string {
	r := m.report
	var b strings.Builder

	b.WriteString(titleStyle.Render("Date & Time"))
	b.WriteString("\n")
	writeRow(&b, "Civil date", fmt.Sprintf("%s %s", almanac.FormatDate(r.Year, r.Month, r.Day), almanac.WeekdayName(r.Weekday)))
	writeRow(&b, "Day of year", fmt.Sprintf("%d", r.DayOfYear))
	writeRow(&b, "JD (UT)", fmt.Sprintf("%.5f", r.UT.JD()))
	writeRow(&b, "JDE (TT)", fmt.Sprintf("%.5f", r.TT.JD()))

	dt := fmt.Sprintf("%+.1f s", r.DeltaT.Seconds)
	if r.DeltaT.Extrapolated {
		dt = warnStyle.Render(dt + " (extrapolated)")
	}
	writeRow(&b, "Delta-T", dt)

	return b.String()
}

func (m DashboardModel) renderSunPanel() string {
	r := m.report
	var b strings.Builder

	b.WriteString(titleStyle.Render("Sun"))
	b.WriteString("\n")
	writeRow(&b, "Apparent longitude", r.Sun.ApparentLongitude.String())
	writeRow(&b, "Right ascension", r.Sun.RA.String())
	writeRow(&b, "Declination", r.Sun.Dec.String())
	writeRow(&b, "Distance", fmt.Sprintf("%.5f AU", r.Sun.Distance))

	return b.String()
}

func (m DashboardModel) renderSkyPanel() string {
	r := m.report
	var b strings.Builder

	b.WriteString(titleStyle.Render("Ecliptic & Nutation"))
	b.WriteString("\n")
	writeRow(&b, "Mean obliquity", r.MeanObliquity.String())
	writeRow(&b, "True obliquity", r.TrueObliquity.String())
	writeRow(&b, "Nutation in longitude", fmtArcsec(r.NutationLongitude))
	writeRow(&b, "Nutation in obliquity", fmtArcsec(r.NutationObliquity))

	return b.String()
}

func (m DashboardModel) renderMoonPanel() string {
	r := m.report
	var b strings.Builder

	b.WriteString(titleStyle.Render("Moon"))
	b.WriteString("\n")
	writeRow(&b, "Elongation", r.Moon.Elongation.String())
	writeRow(&b, "Illuminated", fmt.Sprintf("%.0f%%", r.Moon.Illuminated*100))
	writeRow(&b, "Phase", accentStyle.Render(r.Moon.Description))
	b.WriteString("\n")
	b.WriteString(m.renderPhaseBar())

	return b.String()
}

// renderPhaseBar draws the lunation as a bar with a marker at the current
// elongation.
func (m DashboardModel) renderPhaseBar() string {
	const width = 30
	pos := int(m.report.Moon.Elongation.Normalize360().Deg() / 360 * width)
	if pos >= width {
		pos = width - 1
	}

	var b strings.Builder
	b.WriteString("  " + labelStyle.Render("new "))
	for i := 0; i < width; i++ {
		if i == pos {
			b.WriteString(accentStyle.Render("●"))
		} else {
			b.WriteString(labelStyle.Render("·"))
		}
	}
	b.WriteString(labelStyle.Render(" new"))
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(fmt.Sprintf("  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-22s", label)),
		valueStyle.Render(value)))
}

// fmtEpoch renders an epoch as a civil date line.
func fmtEpoch(e astro.Epoch) string {
	y, mo, d := e.CalendarDate(astro.CalendarAuto)
	return almanac.FormatDate(y, mo, d)
}

// fmtArcsec renders a small angle in arcseconds.
func fmtArcsec(a astro.Angle) string {
	return fmt.Sprintf("%+.3f″", a.Deg()*3600)
}
