package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ckode/flexscan/internal/version"
)

// Application branding constants
const (
	AppName   = "FLEXSCAN — FLEXRADIO DISCOVERY"
	GitHubURL = "github.com/ckode/flexscan"
)

// Layout constants for responsive terminal width
const (
	MinTerminalWidth = 64  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Title style - bold, colored
	TitleStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Padding(1, 0)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	// Help text style
	HelpStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(1, 0)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor)

	// Selected card accent
	SelectedStyle = lipgloss.NewStyle().
			Foreground(HighlightColor).
			Bold(true)

	// Status accents for radio cards
	AvailableStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	InUseStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)
)

// RenderStatus renders a radio status with its accent color.
func RenderStatus(status string, available bool) string {
	if status == "" {
		return SubtleStatus("unknown")
	}
	if available {
		return AvailableStyle.Render(status)
	}
	return InUseStyle.Render(status)
}

// SubtleStatus renders a status placeholder in the subtle color.
func SubtleStatus(text string) string {
	return SubtitleStyle.Render(text)
}

// RenderHeader builds the one-line application header with name,
// version and project URL.
func RenderHeader() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderAppFrame wraps screen content with the application header on
// top and context-sensitive help text pinned below, inside a bordered
// full-width container. Every screen in the program renders through
// this function.
func RenderAppFrame(content, helpText string, width, height int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(width - 4).
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(width - 4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(width - 4)

	inner := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(RenderHeader()),
		contentStyle.Render(content),
		footerStyle.Render(HelpStyle.Render(helpText)),
	)

	frame := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(width - 2).
		AlignVertical(lipgloss.Top)

	if height > 2 {
		frame = frame.Height(height - 2)
	}

	return frame.Render(inner)
}
