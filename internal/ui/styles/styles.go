// Package styles holds the theme-derived styles shared by the composer.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhath/mentions/internal/config"
	"github.com/nhath/mentions/internal/ui/components/suggestions"
)

var (
	textPrimary   lipgloss.Color
	textSecondary lipgloss.Color
	textFaint     lipgloss.Color

	accentColor    lipgloss.Color
	successColor   lipgloss.Color
	errorColor     lipgloss.Color
	highlightColor lipgloss.Color
	warningColor   lipgloss.Color

	bgPrimary   lipgloss.Color
	bgSecondary lipgloss.Color
	cardBg      lipgloss.Color

	// Styles
	StatusBarStyle     lipgloss.Style
	ModeStyle          lipgloss.Style
	InputStyle         lipgloss.Style
	PromptStyle        lipgloss.Style
	MessageStyle       lipgloss.Style
	MetaStyle          lipgloss.Style
	MentionStyle       lipgloss.Style
	SuccessStyle       lipgloss.Style
	ErrorStyle         lipgloss.Style
	SystemMessageStyle lipgloss.Style
	HelpStyle          lipgloss.Style
)

// Color getter functions for use in components
func TextPrimary() lipgloss.Color    { return textPrimary }
func TextSecondary() lipgloss.Color  { return textSecondary }
func TextFaint() lipgloss.Color      { return textFaint }
func AccentColor() lipgloss.Color    { return accentColor }
func SuccessColor() lipgloss.Color   { return successColor }
func ErrorColor() lipgloss.Color     { return errorColor }
func HighlightColor() lipgloss.Color { return highlightColor }
func WarningColor() lipgloss.Color   { return warningColor }

// Init initializes the global styles from the configured theme
func Init(theme config.Theme) {
	textPrimary = lipgloss.Color(theme.TextPrimary)
	textSecondary = lipgloss.Color(theme.TextSecondary)
	textFaint = lipgloss.Color(theme.TextFaint)

	accentColor = lipgloss.Color(theme.Accent)
	successColor = lipgloss.Color(theme.Success)
	errorColor = lipgloss.Color(theme.Error)
	highlightColor = lipgloss.Color(theme.Highlight)
	warningColor = lipgloss.Color(theme.Warning)

	bgPrimary = lipgloss.Color(theme.BgPrimary)
	bgSecondary = lipgloss.Color(theme.BgSecondary)
	cardBg = lipgloss.Color(theme.CardBg)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(textPrimary).
		Background(bgSecondary)

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		Background(accentColor).
		Foreground(bgPrimary)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(textFaint)

	PromptStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(accentColor)

	MessageStyle = lipgloss.NewStyle().
		Foreground(textPrimary)

	MetaStyle = lipgloss.NewStyle().
		Foreground(textFaint).
		Italic(true)

	MentionStyle = lipgloss.NewStyle().
		Foreground(highlightColor)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(successColor)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	SystemMessageStyle = lipgloss.NewStyle().
		Foreground(highlightColor).
		Bold(true)

	HelpStyle = lipgloss.NewStyle().
		Foreground(textFaint)
}

// Suggestions returns the overlay overrides for the current theme. Only
// colors are set, so layout falls through to the overlay defaults.
func Suggestions() suggestions.Overrides {
	container := lipgloss.NewStyle().BorderForeground(textFaint).Background(cardBg)
	item := lipgloss.NewStyle().Foreground(textPrimary)
	focused := lipgloss.NewStyle().Foreground(bgPrimary).Background(highlightColor).Bold(true)
	detail := lipgloss.NewStyle().Foreground(textSecondary)
	loading := lipgloss.NewStyle().Foreground(warningColor)
	return suggestions.Overrides{
		Container:        &container,
		Item:             &item,
		ItemFocused:      &focused,
		Detail:           &detail,
		LoadingIndicator: &loading,
	}
}
