// SPDX-License-Identifier: MIT

// Package styles provides the colour theme and lipgloss styles shared by the
// CLI output and the TUI.
package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/stoic/equation"
)

// Theme defines the colour palette.
type Theme struct {
	// Primary is the main accent colour (coefficients, titles).
	Primary lipgloss.Color

	// Secondary is the secondary accent colour (element symbols).
	Secondary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for separators and hints.
	Muted lipgloss.Color

	// Success indicates a balanced equation.
	Success lipgloss.Color

	// Warning indicates a fallback (unbalanced preview).
	Warning lipgloss.Color

	// Error indicates a failure.
	Error lipgloss.Color

	// Border is the border colour.
	Border lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Secondary:  lipgloss.Color("#06B6D4"), // Cyan
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	Title       lipgloss.Style
	Coefficient lipgloss.Style
	Symbol      lipgloss.Style
	Subscript   lipgloss.Style
	Separator   lipgloss.Style
	Muted       lipgloss.Style
	Success     lipgloss.Style
	Warning     lipgloss.Style
	Error       lipgloss.Style
	Help        lipgloss.Style
	Border      lipgloss.Style
}

// NewStyles creates styles from a theme. A nil theme uses DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Coefficient: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Symbol: lipgloss.NewStyle().
			Foreground(theme.Secondary),

		Subscript: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Separator: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Error),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),
	}
}

// DefaultStyles returns styles using the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() *Styles {
	p := lipgloss.NewStyle()

	return &Styles{
		Title: p, Coefficient: p, Symbol: p, Subscript: p, Separator: p,
		Muted: p, Success: p, Warning: p, Error: p, Help: p, Border: p,
	}
}

// Equation renders eq like (*equation.Equation).String, styling coefficients,
// symbols, subscripts and separators separately.
func (s *Styles) Equation(eq *equation.Equation) string {
	if eq == nil || eq.Len() == 0 {
		return ""
	}
	var b strings.Builder
	for i, c := range eq.Compounds {
		switch {
		case i == 0:
		case i == eq.RightIndex:
			b.WriteString(s.Separator.Render(" = "))
		default:
			b.WriteString(s.Separator.Render(" + "))
		}
		if c.Coefficient != 1 {
			b.WriteString(s.Coefficient.Render(strconv.FormatInt(c.Coefficient, 10)))
		}
		for _, el := range c.Elements {
			b.WriteString(s.Symbol.Render(el.Symbol))
			if el.Count != 1 {
				b.WriteString(s.Subscript.Render(strconv.FormatInt(el.Count, 10)))
			}
		}
	}

	return b.String()
}
