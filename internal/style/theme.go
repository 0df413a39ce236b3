// Package style defines the visual theme for the Lagoon CLI. Colours and
// text styles live here so command output and the TUI layer stay consistent.
//
// Call Init(colorEnabled) once at startup.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colour palette.
var (
	Teal   = lipgloss.Color("#2BC8D8")
	Blue   = lipgloss.Color("#4578E6")
	Green  = lipgloss.Color("#3FB950")
	Yellow = lipgloss.Color("#D29922")
	Red    = lipgloss.Color("#F85149")

	White  = lipgloss.Color("#E6EDF3")
	Dim    = lipgloss.Color("#7D8590")
	Subtle = lipgloss.Color("#30363D")
)

// Text styles.
var (
	// Title is used for headings and banners.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Teal)

	// Success style for positive confirmations.
	Success = lipgloss.NewStyle().
		Foreground(Green).
		Bold(true)

	// Warning style for non-fatal alerts.
	Warning = lipgloss.NewStyle().
		Foreground(Yellow)

	// Error style for error messages.
	Error = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	// DimText is used for hints and secondary info.
	DimText = lipgloss.NewStyle().
		Foreground(Dim)

	// Bold is a simple bold helper.
	Bold = lipgloss.NewStyle().Bold(true)

	// SpinnerColor is the colour of spinner animations.
	SpinnerColor = Teal
)

// Enabled tracks whether styles should render ANSI output. When false, all
// styles degrade to plain text.
var Enabled = true

// Init configures the style package. Call once at startup.
func Init(colorEnabled bool) {
	Enabled = colorEnabled
	if !colorEnabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// Hint renders a "next step" hint message.
func Hint(msg string) string {
	return DimText.Render("→ " + msg)
}
