// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Palette follows the classroom web app (green brand, blue actions)

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Brand   = lipgloss.Color("#2E7D32") // green, the "Classroom" wordmark
	Primary = lipgloss.Color("#3B82F6") // blue, action buttons
	Success = lipgloss.Color("#4CAF50") // green, confirmations
	Danger  = lipgloss.Color("#EF5350") // red, errors
	Muted   = lipgloss.Color("#6B7280") // gray, labels and help text
	Text    = lipgloss.Color("#F9FAFB") // light, emphasized values
	Surface = lipgloss.Color("#374151") // elevated background

	// Headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Brand).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Inline field labels and errors
	Label = lipgloss.NewStyle().
		Foreground(Muted)

	FieldError = lipgloss.NewStyle().
			Foreground(Danger)

	SuccessText = lipgloss.NewStyle().
			Foreground(Success)

	ErrorText = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// Buttons
	Button = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(Primary).
		Padding(0, 2)

	ButtonDisabled = lipgloss.NewStyle().
			Foreground(Muted).
			Background(Surface).
			Padding(0, 2)

	ButtonSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(Success).
			Padding(0, 2)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	Key = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	// Value style for emphasized data
	Value = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)
)
