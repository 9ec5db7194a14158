package fpsdial

import (
	"fmt"
	"math"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

const (
	// dial size in braille dots (2 per char width, 4 per char height)
	dotsWidth  = 44
	dotsHeight = 24

	// semicircle over the top: 180° (left) to 360° (right) in screen coords
	arcStart  = 180.0
	arcSweep  = 180.0
	thickness = 3
)

// Dial is a semicircular gauge showing the render loop's actual fps against
// its configured target.
type Dial struct {
	Actual *float64
	Target float64
}

func New(actual *float64, target float64) Dial {
	return Dial{Actual: actual, Target: target}
}

func (d Dial) Render() string {
	var (
		cx     = float64(dotsWidth) / 2
		cy     = float64(dotsHeight) - 2
		radius = float64(dotsWidth)/2 - 1
	)

	var fill float64
	if d.Actual != nil && d.Target > 0 {
		fill = *d.Actual / d.Target
		if fill > 1 {
			fill = 1
		}
		if fill < 0 {
			fill = 0
		}
	}

	bg := drawille.NewCanvas()
	drawArc(&bg, cx, cy, radius, arcStart, arcSweep)
	bgRows := canvasRows(&bg)

	fg := drawille.NewCanvas()
	if fill > 0 {
		drawArc(&fg, cx, cy, radius, arcStart, fill*arcSweep)
	}
	fgRows := canvasRows(&fg)

	dial := merge(bgRows, fgRows)

	var value string
	if d.Actual == nil {
		value = fmt.Sprintf("-- / %.0f fps", d.Target)
	} else {
		value = fmt.Sprintf("%.1f / %.0f fps", *d.Actual, d.Target)
	}

	valueStyle := lipgloss.NewStyle().
		Foreground(theme.ColorWhite).
		Bold(true).
		Width(dotsWidth / 2).
		Align(lipgloss.Center)

	return lipgloss.JoinVertical(lipgloss.Center, dial, valueStyle.Render(value))
}

// drawArc sets dots along an arc band, sweeping in small angle steps. The
// step is fine enough that adjacent dots touch at this radius.
func drawArc(canvas *drawille.Canvas, cx, cy, radius, startDeg, sweepDeg float64) {
	const step = 0.75
	for t := range thickness {
		r := radius - float64(t)
		if r <= 0 {
			continue
		}
		for a := startDeg; a <= startDeg+sweepDeg; a += step {
			rad := a * math.Pi / 180
			x := cx + r*math.Cos(rad)
			y := cy + r*math.Sin(rad)
			canvas.Set(int(math.Round(x)), int(math.Round(y)))
		}
	}
}

func canvasRows(canvas *drawille.Canvas) []string {
	var (
		charWidth  = dotsWidth / 2
		charHeight = dotsHeight / 4
	)

	rows := canvas.Rows(0, 0, dotsWidth, dotsHeight)

	lines := make([]string, 0, charHeight)
	for i := range charHeight {
		var line string
		if i < len(rows) {
			line = rows[i]
		}
		runes := []rune(line)
		if len(runes) > charWidth {
			runes = runes[:charWidth]
		}
		for len(runes) < charWidth {
			runes = append(runes, ' ')
		}
		lines = append(lines, string(runes))
	}
	return lines
}

const emptyBraille rune = '⠀'

// merge colors the filled arc over the background arc. The fill is always a
// prefix of the same band, so per-character precedence is enough - no dot
// combining required.
func merge(bgRows, fgRows []string) string {
	var (
		bgStyle = lipgloss.NewStyle().Foreground(theme.ColorBgLight)
		fgStyle = lipgloss.NewStyle().Foreground(theme.ColorFPS)
		out     = make([]string, len(bgRows))
	)

	for i := range bgRows {
		bgRunes := []rune(bgRows[i])
		var fgRunes []rune
		if i < len(fgRows) {
			fgRunes = []rune(fgRows[i])
		}

		var line strings.Builder
		for j, bgChar := range bgRunes {
			var fgChar rune = ' '
			if j < len(fgRunes) {
				fgChar = fgRunes[j]
			}

			switch {
			case isBraille(fgChar) && fgChar != emptyBraille:
				line.WriteString(fgStyle.Render(string(fgChar)))
			case isBraille(bgChar) && bgChar != emptyBraille:
				line.WriteString(bgStyle.Render(string(bgChar)))
			default:
				line.WriteRune(' ')
			}
		}
		out[i] = line.String()
	}

	return strings.Join(out, "\n")
}

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}
