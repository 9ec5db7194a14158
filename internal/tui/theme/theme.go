package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme bundles the console's shared styles so panes don't rebuild them per
// frame.
type Theme struct {
	background color.Color

	dim    lipgloss.Style
	accent lipgloss.Style
}

func New() Theme {
	return Theme{
		background: ColorBgDark,
		dim:        lipgloss.NewStyle().Foreground(ColorDim),
		accent:     lipgloss.NewStyle().Foreground(ColorAccent),
	}
}

func (t Theme) TextDim() lipgloss.Style    { return t.dim }
func (t Theme) TextAccent() lipgloss.Style { return t.accent }
func (t Theme) Background() color.Color    { return t.background }
