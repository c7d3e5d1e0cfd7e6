// Package theme defines color themes for the ccline status line.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used by the status line segments.
type Theme struct {
	Name      string
	Model     lipgloss.Color // Model name
	Branch    lipgloss.Color // Git branch
	Good      lipgloss.Color // Plenty of time / low fill
	Warn      lipgloss.Color
	Bad       lipgloss.Color
	Requests  lipgloss.Color // Request count
	Tokens    lipgloss.Color // Token totals and burn rate
	Cost      lipgloss.Color
	Separator lipgloss.Color // Segment divider
	Muted     lipgloss.Color // Secondary text in tables and previews
}

// Neon is the default theme - saturated truecolor on dark terminals.
var Neon = Theme{
	Name:      "neon",
	Model:     lipgloss.Color("#00F0FF"),
	Branch:    lipgloss.Color("#00FF96"),
	Good:      lipgloss.Color("#00FF96"),
	Warn:      lipgloss.Color("#FFDC00"),
	Bad:       lipgloss.Color("#FF3264"),
	Requests:  lipgloss.Color("#6496FF"),
	Tokens:    lipgloss.Color("#B464FF"),
	Cost:      lipgloss.Color("#FFDC00"),
	Separator: lipgloss.Color("#969696"),
	Muted:     lipgloss.Color("#969696"),
}

// FlexokiDark is a warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:      "flexoki-dark",
	Model:     lipgloss.Color("#3AA99F"),
	Branch:    lipgloss.Color("#879A39"),
	Good:      lipgloss.Color("#879A39"),
	Warn:      lipgloss.Color("#D0A215"),
	Bad:       lipgloss.Color("#D14D41"),
	Requests:  lipgloss.Color("#4385BE"),
	Tokens:    lipgloss.Color("#8B7EC8"),
	Cost:      lipgloss.Color("#D0A215"),
	Separator: lipgloss.Color("#575653"),
	Muted:     lipgloss.Color("#878580"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:      "catppuccin-mocha",
	Model:     lipgloss.Color("#89B4FA"),
	Branch:    lipgloss.Color("#A6E3A1"),
	Good:      lipgloss.Color("#A6E3A1"),
	Warn:      lipgloss.Color("#F9E2AF"),
	Bad:       lipgloss.Color("#F38BA8"),
	Requests:  lipgloss.Color("#89B4FA"),
	Tokens:    lipgloss.Color("#F5C2E7"),
	Cost:      lipgloss.Color("#FAB387"),
	Separator: lipgloss.Color("#6C7086"),
	Muted:     lipgloss.Color("#A6ADC8"),
}

// TokyoNight is a cool blue/purple theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:      "tokyo-night",
	Model:     lipgloss.Color("#7DCFFF"),
	Branch:    lipgloss.Color("#9ECE6A"),
	Good:      lipgloss.Color("#9ECE6A"),
	Warn:      lipgloss.Color("#E0AF68"),
	Bad:       lipgloss.Color("#F7768E"),
	Requests:  lipgloss.Color("#7AA2F7"),
	Tokens:    lipgloss.Color("#BB9AF7"),
	Cost:      lipgloss.Color("#FF9E64"),
	Separator: lipgloss.Color("#565F89"),
	Muted:     lipgloss.Color("#A9B1D6"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:      "terminal",
	Model:     lipgloss.Color("6"),
	Branch:    lipgloss.Color("2"),
	Good:      lipgloss.Color("2"),
	Warn:      lipgloss.Color("3"),
	Bad:       lipgloss.Color("1"),
	Requests:  lipgloss.Color("4"),
	Tokens:    lipgloss.Color("5"),
	Cost:      lipgloss.Color("3"),
	Separator: lipgloss.Color("8"),
	Muted:     lipgloss.Color("7"),
}

// All available themes.
var All = []Theme{Neon, FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name, defaulting to Neon.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return Neon
}

// Names lists the available theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
