// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewDashboard ViewMode = iota
	ViewEvents
)

// Msg types for Bubble Tea
type (
	// ReportMsg carries a freshly computed report, or the failure.
	ReportMsg struct {
		Report *almanac.Report
		Err    error
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	opts almanac.Options

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	epoch    astro.Epoch // UT instant the views show
	pending  bool

	// Sub-models
	dashboard DashboardModel
	events    EventsModel

	// Current report (updated on ReportMsg)
	report  *almanac.Report
	lastErr error
}

// New creates a new root UI model showing the given UT instant.
func New(start astro.Epoch, opts almanac.Options) Model {
	return Model{
		opts:      opts,
		viewMode:  ViewDashboard,
		epoch:     start,
		dashboard: NewDashboardModel(),
		events:    NewEventsModel(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return computeCmd(m.epoch, m.opts)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "d":
			m.viewMode = ViewDashboard
		case "2", "e":
			m.viewMode = ViewEvents
		case "tab":
			m.viewMode = (m.viewMode + 1) % 2

		case "left", "h":
			cmds = append(cmds, m.step(-1))
		case "right", "l":
			cmds = append(cmds, m.step(1))
		case "shift+left", "H":
			cmds = append(cmds, m.step(-30))
		case "shift+right", "L":
			cmds = append(cmds, m.step(30))
		case "t":
			cmds = append(cmds, m.jumpToNow())

		default:
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Logo takes ~8 lines, footer ~2 lines
		contentHeight := msg.Height - 10
		m.dashboard = m.dashboard.SetSize(msg.Width, contentHeight)
		m.events = m.events.SetSize(msg.Width, contentHeight)

	case ReportMsg:
		m.pending = false
		m.lastErr = msg.Err
		if msg.Report != nil {
			m.report = msg.Report
			m.dashboard = m.dashboard.UpdateData(m.report)
			m.events = m.events.UpdateData(m.report)
		}

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) step(days float64) tea.Cmd {
	m.epoch = m.epoch.Add(days)
	m.pending = true
	return computeCmd(m.epoch, m.opts)
}

func (m *Model) jumpToNow() tea.Cmd {
	m.epoch = astro.Now()
	m.pending = true
	return computeCmd(m.epoch, m.opts)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewEvents:
		m.events, cmd = m.events.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewDashboard:
		content = m.dashboard.View()
	case ViewEvents:
		content = m.events.View()
	}

	return m.renderHeader() + "\n" + content + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	logo := []string{
		`   ██╗     ███████╗      █████╗ ██╗     ███╗   ███╗ █████╗ ███╗   ██╗ █████╗  ██████╗`,
		`   ██║     ██╔════╝     ██╔══██╗██║     ████╗ ████║██╔══██╗████╗  ██║██╔══██╗██╔════╝`,
		`   ██║     ███████╗█████║███████║██║    ██╔████╔██║███████║██╔██╗ ██║███████║██║`,
		`   ██║     ╚════██║╚════╝██╔══██║██║    ██║╚██╔╝██║██╔══██║██║╚██╗██║██╔══██║██║`,
		`   ███████╗███████║      ██║  ██║███████╗██║ ╚═╝ ██║██║  ██║██║ ╚████║██║  ██║╚██████╗`,
		`   ╚══════╝╚══════╝      ╚═╝  ╚═╝╚══════╝╚═╝     ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝ ╚═════╝`,
	}

	var b strings.Builder
	b.WriteString("\n")
	for row, line := range logo {
		runes := []rune(line)
		for col, r := range runes {
			color := gradientColor(col, row, len(runes), len(logo))
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(r)))
		}
		b.WriteString("\n")
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Positional Astronomy Almanac"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  (c) 2026 litescript.net | v%s", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the logo gradient,
// amber at dawn-left fading through orange into deep violet.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(width)
	yRatio := float64(row) / float64(height)

	var r, g, b float64
	if xRatio < 0.5 {
		// Amber (#F59E0B) to Orange-red (#EF4444)
		t := xRatio / 0.5
		r = 245 + t*(239-245)
		g = 158 + t*(68-158)
		b = 11 + t*(68-11)
	} else {
		// Orange-red (#EF4444) to Violet (#7C3AED)
		t := (xRatio - 0.5) / 0.5
		r = 239 + t*(124-239)
		g = 68 + t*(58-68)
		b = 68 + t*(237-68)
	}

	bright := 1.0 - yRatio*0.4
	ri := clamp8(int(r * bright))
	gi := clamp8(int(g * bright))
	bi := clamp8(int(b * bright))

	return fmt.Sprintf("#%02X%02X%02X", ri, gi, bi)
}

func clamp8(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Dashboard", "[2] Events"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))

	var status string
	switch {
	case m.lastErr != nil:
		status = errStyle.Render("ERROR: " + m.lastErr.Error())
	case m.pending:
		status = dimStyle.Render("computing...")
	case m.report != nil:
		status = dimStyle.Render(fmt.Sprintf("JD %.5f UT", m.report.UT.JD()))
	default:
		status = dimStyle.Render("no data")
	}

	help := dimStyle.Render("←/→: day | H/L: 30 days | t: today | tab: switch view | q: quit")
	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func computeCmd(e astro.Epoch, opts almanac.Options) tea.Cmd {
	return func() tea.Msg {
		r, err := almanac.Compute(e, opts)
		return ReportMsg{Report: r, Err: err}
	}
}
