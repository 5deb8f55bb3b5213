package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
)

var (
	eventHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("39")).
				Background(lipgloss.Color("235")).
				Padding(0, 1)

	eventRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	selectedEventStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
)

// eventEntry is one upcoming event row.
type eventEntry struct {
	name  string
	epoch astro.Epoch
	note  string
}

// EventsModel lists the upcoming astronomical events after the report date.
type EventsModel struct {
	width   int
	height  int
	cursor  int
	report  *almanac.Report
	entries []eventEntry
}

// NewEventsModel creates a new events model.
func NewEventsModel() EventsModel {
	return EventsModel{}
}

// Init implements the Bubble Tea model interface.
func (m EventsModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m EventsModel) SetSize(width, height int) EventsModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new report.
func (m EventsModel) UpdateData(r *almanac.Report) EventsModel {
	m.report = r
	m.entries = collectEvents(r)
	if m.cursor >= len(m.entries) {
		m.cursor = 0
	}
	return m
}

// collectEvents flattens the report's located events into chronological rows.
func collectEvents(r *almanac.Report) []eventEntry {
	if r == nil {
		return nil
	}

	entries := make([]eventEntry, 0, 7)
	for _, pi := range r.Moon.NextPhases {
		entries = append(entries, eventEntry{
			name:  pi.Phase.String(),
			epoch: pi.Epoch,
		})
	}
	entries = append(entries, eventEntry{
		name:  r.NextSeason.Type.String(),
		epoch: r.NextSeason.Epoch,
	})
	entries = append(entries, eventEntry{
		name:  "Perihelion",
		epoch: r.Perihelion.Epoch,
		note:  fmt.Sprintf("%.5f AU", r.Perihelion.Distance),
	})
	entries = append(entries, eventEntry{
		name:  "Aphelion",
		epoch: r.Aphelion.Epoch,
		note:  fmt.Sprintf("%.5f AU", r.Aphelion.Distance),
	})

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].epoch.JD() < entries[j].epoch.JD()
	})
	return entries
}

// Update handles messages.
func (m EventsModel) Update(msg tea.Msg) (EventsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

// View renders the events table.
func (m EventsModel) View() string {
	if m.report == nil {
		return "  Computing almanac...\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Upcoming Events"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-18s %-18s %-10s %s", "Event", "Date (TT)", "In", "")
	b.WriteString(eventHeaderStyle.Render(header))
	b.WriteString("\n")

	for i, ev := range m.entries {
		days := ev.epoch.Sub(m.report.TT)
		row := fmt.Sprintf("%-18s %-18s %7.2f d  %s",
			ev.name, fmtEpoch(ev.epoch), days, ev.note)
		if i == m.cursor {
			b.WriteString(selectedEventStyle.Render(row))
		} else {
			b.WriteString(eventRowStyle.Render(row))
		}
		b.WriteString("\n")
	}

	return b.String()
}
