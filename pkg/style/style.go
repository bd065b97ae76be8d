// Package style provides styled terminal output helpers.
package style

import "github.com/charmbracelet/lipgloss"

// Theme colors.
const (
	// Accent color for headings and labels
	ColorAccentPrimary = lipgloss.Color("#33A1FF")

	// Primary text color
	ColorText = lipgloss.Color("#E4E4E4")

	// Error color
	ColorDanger = lipgloss.Color("#FF5555")

	// JSON highlight colors
	ColorJSONKey    = lipgloss.Color("#55bcf4")
	ColorJSONNumber = lipgloss.Color("#d4ec19")
	ColorJSONBool   = lipgloss.Color("#dfab49")
	ColorJSONNull   = lipgloss.Color("#6272A4")
	ColorJSONPunct  = lipgloss.Color("#6B7280")
)

var (
	// LabelStyle renders report section labels.
	LabelStyle = lipgloss.NewStyle().Foreground(ColorAccentPrimary).Bold(true)

	// ItemStyle renders report entries.
	ItemStyle = lipgloss.NewStyle().Foreground(ColorText)

	// ErrorStyle renders error text.
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger)
)
