// Command ls-almanac is a terminal almanac for positional astronomy.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-almanac/internal/almanac"
	"github.com/litescript/ls-almanac/internal/astro"
	"github.com/litescript/ls-almanac/internal/logging"
	"github.com/litescript/ls-almanac/internal/ui"
)

// CLI flags for headless mode
var (
	dateStr     string
	jdValue     float64
	utcOffset   float64
	summaryMode bool
	eventsMode  bool
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&dateStr, "date", "", "Date to compute for, YYYY-MM-DD[.ddd] (default: now)")
	flag.Float64Var(&jdValue, "jd", 0, "Julian Day to compute for (overrides -date)")
	flag.Float64Var(&utcOffset, "utc-offset", 0, "Local offset in hours east of Greenwich")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&eventsMode, "events", false, "Print upcoming events instead of TUI")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))
	defer logger.Sync()

	epoch, err := resolveEpoch()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	opts := almanac.DefaultOptions()
	opts.UTCOffset = utcOffset

	// Headless mode: no TUI
	if summaryMode || eventsMode {
		runHeadless(epoch, opts, logger)
		return
	}

	model := ui.New(epoch, opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// resolveEpoch picks the UT instant from -jd, -date, or the clock.
func resolveEpoch() (astro.Epoch, error) {
	if jdValue != 0 {
		return astro.EpochFromJD(jdValue), nil
	}
	if dateStr != "" {
		e, err := astro.ParseEpoch(dateStr)
		if err != nil {
			return astro.Epoch{}, fmt.Errorf("parse -date: %w", err)
		}
		return e, nil
	}
	return astro.Now(), nil
}

// runHeadless handles the text output modes without starting the TUI.
func runHeadless(epoch astro.Epoch, opts almanac.Options, logger *logging.Logger) {
	logger.Debug("computing report for JD %.5f", epoch.JD())

	report, err := almanac.Compute(epoch, opts)
	if err != nil {
		logger.Error("compute report: %v", err)
		os.Exit(1)
	}

	if summaryMode {
		almanac.WriteSummary(os.Stdout, report)
	}
	if eventsMode {
		if summaryMode {
			fmt.Println()
		}
		almanac.WriteEvents(os.Stdout, report)
	}
}
