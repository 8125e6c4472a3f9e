// Package theme defines the colors, styles and symbols used for terminal output.
package theme

import "github.com/charmbracelet/lipgloss"

// ColorPalette holds the adaptive colors a theme is built from
type ColorPalette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	Text         lipgloss.AdaptiveColor
	TextMuted    lipgloss.AdaptiveColor
	TextFaint    lipgloss.AdaptiveColor
	TextEmphasis lipgloss.AdaptiveColor

	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
}

// Styles are the lipgloss styles derived from a palette
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Header    lipgloss.Style
	SubHeader lipgloss.Style

	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Faint    lipgloss.Style
	Emphasis lipgloss.Style

	ListItem   lipgloss.Style
	ListBullet lipgloss.Style
	Selected   lipgloss.Style

	Key   lipgloss.Style
	Value lipgloss.Style

	Spinner lipgloss.Style
}

// Symbols are the glyphs prefixed to messages
type Symbols struct {
	Success string
	Error   string
	Warning string
	Info    string
	Arrow   string
	Bullet  string
	Pending string
}

// Theme bundles a palette with its styles and symbols
type Theme interface {
	Name() string
	Palette() ColorPalette
	Styles() Styles
	Symbols() Symbols
}

var current = NewDefaultTheme()

// Current returns the active theme
func Current() Theme {
	return current
}

// SetCurrent replaces the active theme
func SetCurrent(t Theme) {
	if t != nil {
		current = t
	}
}
