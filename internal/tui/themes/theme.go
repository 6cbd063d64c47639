// Package themes defines the color palettes and styles of the evaluation form.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Label         lipgloss.Style
	Selected      lipgloss.Style
	StarOn        lipgloss.Style
	StarOff       lipgloss.Style
	Required      lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Box           lipgloss.Style
	BorderedBox   lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Star          lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
}

type palette struct {
	primary, secondary, star        lipgloss.Color
	success, errColor, info         lipgloss.Color
	foreground, subtle, muted       lipgloss.Color
	border, buttonText, highlightBg lipgloss.Color
}

func newTheme(p palette) Theme {
	status := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	return Theme{
		Primary:    p.primary,
		Secondary:  p.secondary,
		Star:       p.star,
		Muted:      p.muted,
		Border:     p.border,
		Foreground: p.foreground,
		Info:       p.info,
		Error:      p.errColor,
		Success:    p.success,

		Title:    lipgloss.NewStyle().Bold(true).Foreground(p.foreground).MarginBottom(1),
		Subtitle: lipgloss.NewStyle().Foreground(p.subtle),
		Normal:   lipgloss.NewStyle().Foreground(p.foreground),
		Bold:     lipgloss.NewStyle().Bold(true).Foreground(p.foreground),
		Label:    lipgloss.NewStyle().Foreground(p.foreground).Width(16),
		Selected: lipgloss.NewStyle().Background(p.highlightBg).Foreground(p.foreground).Bold(true),
		StarOn:   lipgloss.NewStyle().Foreground(p.star),
		StarOff:  lipgloss.NewStyle().Foreground(p.muted),
		Required: lipgloss.NewStyle().Foreground(p.errColor),

		Button: lipgloss.NewStyle().
			Foreground(p.foreground).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(p.buttonText).
			Background(p.primary).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.primary).
			Padding(0, 2),

		Box: lipgloss.NewStyle().Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		StatusInfo:    status(p.info),
		StatusError:   status(p.errColor),
		StatusSuccess: status(p.success),
		StatusPending: lipgloss.NewStyle().Foreground(p.muted).Italic(true),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:     lipgloss.Color("#7c3aed"),
	secondary:   lipgloss.Color("#a78bfa"),
	star:        lipgloss.Color("#facc15"),
	success:     lipgloss.Color("#10b981"),
	errColor:    lipgloss.Color("#ef4444"),
	info:        lipgloss.Color("#3b82f6"),
	foreground:  lipgloss.Color("#fafafa"),
	subtle:      lipgloss.Color("#a3a3a3"),
	muted:       lipgloss.Color("#737373"),
	border:      lipgloss.Color("#404040"),
	buttonText:  lipgloss.Color("#fafafa"),
	highlightBg: lipgloss.Color("#262626"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:     lipgloss.Color("#cba6f7"),
	secondary:   lipgloss.Color("#f5c2e7"),
	star:        lipgloss.Color("#f9e2af"),
	success:     lipgloss.Color("#a6e3a1"),
	errColor:    lipgloss.Color("#f38ba8"),
	info:        lipgloss.Color("#89dceb"),
	foreground:  lipgloss.Color("#cdd6f4"),
	subtle:      lipgloss.Color("#a6adc8"),
	muted:       lipgloss.Color("#6c7086"),
	border:      lipgloss.Color("#45475a"),
	buttonText:  lipgloss.Color("#1e1e2e"),
	highlightBg: lipgloss.Color("#313244"),
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}

// Star glyphs.
const (
	StarFilled = "★"
	StarEmpty  = "☆"
)
