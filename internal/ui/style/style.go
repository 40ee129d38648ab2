// Package style provides shared styling primitives for CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Slate  = lipgloss.Color("#667085")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Result line styles for the check command.
var (
	ValidStyle   = lipgloss.NewStyle().Foreground(Green)
	InvalidStyle = lipgloss.NewStyle().Foreground(Red)
	UnknownStyle = lipgloss.NewStyle().Foreground(Yellow)
	DetailStyle  = lipgloss.NewStyle().Foreground(Slate)
)
