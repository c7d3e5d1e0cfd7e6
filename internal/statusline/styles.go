package statusline

import (
	"io"

	"github.com/theirongolddev/ccline/internal/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles are the per-segment lipgloss styles for one theme.
type Styles struct {
	Model     lipgloss.Style
	Branch    lipgloss.Style
	Good      lipgloss.Style
	Warn      lipgloss.Style
	Bad       lipgloss.Style
	Requests  lipgloss.Style
	Tokens    lipgloss.Style
	Cost      lipgloss.Style
	Separator lipgloss.Style
}

// NewRenderer returns a renderer for w with the given color profile. The
// status line is always written to a pipe, so callers force TrueColor
// rather than letting termenv detect Ascii.
func NewRenderer(w io.Writer, profile termenv.Profile) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return r
}

// NewStyles builds the segment styles for t on r.
func NewStyles(r *lipgloss.Renderer, t theme.Theme) Styles {
	fg := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c)
	}
	return Styles{
		Model:     fg(t.Model).Bold(true),
		Branch:    fg(t.Branch),
		Good:      fg(t.Good),
		Warn:      fg(t.Warn),
		Bad:       fg(t.Bad),
		Requests:  fg(t.Requests),
		Tokens:    fg(t.Tokens),
		Cost:      fg(t.Cost),
		Separator: fg(t.Separator),
	}
}
