package theme

import "github.com/charmbracelet/lipgloss"

// defaultTheme is a minimal look with teal and violet accents
type defaultTheme struct {
	palette ColorPalette
	styles  Styles
	symbols Symbols
}

// NewDefaultTheme creates the built-in theme
func NewDefaultTheme() Theme {
	palette := ColorPalette{
		Primary:   lipgloss.AdaptiveColor{Light: "#0d9488", Dark: "#2dd4bf"}, // teal
		Secondary: lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}, // violet

		Success: lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"},
		Error:   lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#ef4444"},
		Warning: lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"},
		Info:    lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"},

		Text:         lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#f9fafb"},
		TextMuted:    lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"},
		TextFaint:    lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"},
		TextEmphasis: lipgloss.AdaptiveColor{Light: "#111827", Dark: "#ffffff"},

		Border:    lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#4b5563"},
		Highlight: lipgloss.AdaptiveColor{Light: "#ccfbf1", Dark: "#134e4a"},
	}

	t := &defaultTheme{
		palette: palette,
		symbols: Symbols{
			Success: "✓",
			Error:   "✗",
			Warning: "!",
			Info:    "→",
			Arrow:   "→",
			Bullet:  "•",
			Pending: "○",
		},
	}

	fg := func(c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	t.styles = Styles{
		Success: fg(palette.Success).Bold(true),
		Error:   fg(palette.Error).Bold(true),
		Warning: fg(palette.Warning),
		Info:    fg(palette.Info),

		Header:    fg(palette.TextEmphasis).Bold(true),
		SubHeader: fg(palette.Primary).Bold(true),

		Bold:     fg(palette.TextEmphasis).Bold(true),
		Muted:    fg(palette.TextMuted),
		Faint:    fg(palette.TextFaint),
		Emphasis: fg(palette.Primary),

		ListItem:   fg(palette.Text),
		ListBullet: fg(palette.Primary),
		Selected:   fg(palette.Primary).Bold(true),

		Key:   fg(palette.TextMuted),
		Value: fg(palette.Text),

		Spinner: fg(palette.Primary),
	}

	return t
}

func (t *defaultTheme) Name() string {
	return "base-agents"
}

func (t *defaultTheme) Palette() ColorPalette {
	return t.palette
}

func (t *defaultTheme) Styles() Styles {
	return t.styles
}

func (t *defaultTheme) Symbols() Symbols {
	return t.symbols
}
