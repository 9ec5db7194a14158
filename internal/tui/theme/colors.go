package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent   = lipgloss.Color("#2563EB") // primary accent, also the preview fallback pixel color
	ColorOK       = lipgloss.Color("#16EC06") // success toasts, healthy feeds
	ColorWarn     = lipgloss.Color("#FFDE00") // stale feeds
	ColorError    = lipgloss.Color("#FF0026") // failure toasts, feed errors
	ColorPixelOff = lipgloss.Color("#1C2227") // unlit preview cells
	ColorFPS      = lipgloss.Color("#0093E7") // fps dial fill
)

var (
	ColorBgDark  = lipgloss.Color("#101518")
	ColorBgLight = lipgloss.Color("#283339")
)
