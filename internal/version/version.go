// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Event engine: lunar phases, solstices/equinoxes, apsides; events view
// 0.2.0 - Coarse solar theory, nutation, obliquity, Delta-T; TUI dashboard
// 0.1.0 - Initial release: angle/epoch core, calendar conversion, headless modes
