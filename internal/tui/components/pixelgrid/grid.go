package pixelgrid

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/client/panel"
	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

const (
	Width  = 32
	Height = 8
)

const cell = "██"

// defaultLit is the fallback for lit cells the color matrix has no entry for.
var defaultLit = lipgloss.Color("#2563EB") // rgb(37,99,235)

// Render paints a preview snapshot from scratch. No diffing: every call
// recomputes all cells, matching the wholesale replacement semantics of the
// preview poll.
func Render(p *panel.Preview) string {
	if p == nil {
		return placeholder()
	}

	offStyle := lipgloss.NewStyle().Foreground(theme.ColorPixelOff)

	var b strings.Builder
	for y := 0; y < Height; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < Width; x++ {
			if !lit(p, x, y) {
				b.WriteString(offStyle.Render(cell))
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(cellColor(p, x, y)).Render(cell))
		}
	}
	return b.String()
}

func lit(p *panel.Preview, x, y int) bool {
	if y >= len(p.Frame) || x >= len(p.Frame[y]) {
		return false
	}
	return p.Frame[y][x] != 0
}

func cellColor(p *panel.Preview, x, y int) color.Color {
	if y < len(p.Colors) && x < len(p.Colors[y]) {
		if rgb := p.Colors[y][x]; rgb != nil {
			return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]))
		}
	}
	return defaultLit
}

func placeholder() string {
	style := lipgloss.NewStyle().Foreground(theme.ColorPixelOff)
	row := strings.Repeat(cell, Width)
	rows := make([]string, Height)
	for i := range rows {
		rows[i] = style.Render(row)
	}
	return strings.Join(rows, "\n")
}

// Editor is the manual draw surface: a toggleable 8x32 matrix with a cursor.
// Pure local state until the operator sends it to the device.
type Editor struct {
	pixels  [Height][Width]bool
	cursorX int
	cursorY int
}

func NewEditor() Editor {
	return Editor{}
}

func (e *Editor) Move(dx, dy int) {
	e.cursorX = wrap(e.cursorX+dx, Width)
	e.cursorY = wrap(e.cursorY+dy, Height)
}

func (e *Editor) Toggle() {
	e.pixels[e.cursorY][e.cursorX] = !e.pixels[e.cursorY][e.cursorX]
}

func (e *Editor) Clear() {
	e.pixels = [Height][Width]bool{}
}

// Pixels returns the matrix in wire form.
func (e *Editor) Pixels() [][]int {
	out := make([][]int, Height)
	for y := 0; y < Height; y++ {
		row := make([]int, Width)
		for x := 0; x < Width; x++ {
			if e.pixels[y][x] {
				row[x] = 1
			}
		}
		out[y] = row
	}
	return out
}

func (e *Editor) Cursor() (x, y int) {
	return e.cursorX, e.cursorY
}

func (e Editor) View(focused bool) string {
	var (
		onStyle     = lipgloss.NewStyle().Foreground(theme.ColorWhite)
		offStyle    = lipgloss.NewStyle().Foreground(theme.ColorPixelOff)
		cursorStyle = lipgloss.NewStyle().Foreground(theme.ColorAccent)
	)

	var b strings.Builder
	for y := 0; y < Height; y++ {
		if y > 0 {
			b.WriteString("\n")
		}
		for x := 0; x < Width; x++ {
			style := offStyle
			if e.pixels[y][x] {
				style = onStyle
			}
			if focused && x == e.cursorX && y == e.cursorY {
				style = cursorStyle
			}
			b.WriteString(style.Render(cell))
		}
	}
	return b.String()
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
