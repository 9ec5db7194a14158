package pixelgrid

import (
	"strings"
	"testing"

	"github.com/pixeldock/pixelctl/internal/client/panel"
)

func TestRenderUsesDefaultColorForUncoloredLitCell(t *testing.T) {
	t.Parallel()

	frame := make([][]int, Height)
	colors := make([][]*panel.RGB, Height)
	for y := range frame {
		frame[y] = make([]int, Width)
		colors[y] = make([]*panel.RGB, Width)
	}
	frame[2][5] = 1 // lit, no color entry

	out := Render(&panel.Preview{Width: Width, Height: Height, Frame: frame, Colors: colors})

	// documented fallback: rgb(37,99,235) = #2563EB
	if !strings.Contains(strings.ToLower(out), "37;99;235") && !strings.Contains(strings.ToLower(out), "2563eb") {
		t.Errorf("Render() output does not use the default lit color:\n%q", out)
	}
}

func TestRenderNilPreviewIsPlaceholder(t *testing.T) {
	t.Parallel()

	out := Render(nil)
	lines := strings.Split(out, "\n")
	if len(lines) != Height {
		t.Errorf("placeholder has %d lines, want %d", len(lines), Height)
	}
}

func TestRenderRaggedFrameTolerated(t *testing.T) {
	t.Parallel()

	// short rows and missing color matrix must not panic
	preview := &panel.Preview{
		Frame:  [][]int{{1, 1}},
		Colors: nil,
	}
	out := Render(preview)
	if len(strings.Split(out, "\n")) != Height {
		t.Error("ragged frame did not render full grid")
	}
}

func TestEditorToggleAndPixels(t *testing.T) {
	t.Parallel()

	e := NewEditor()
	e.Toggle()
	e.Move(3, 2)
	e.Toggle()

	pixels := e.Pixels()
	if pixels[0][0] != 1 {
		t.Error("pixel (0,0) not set")
	}
	if pixels[2][3] != 1 {
		t.Error("pixel (3,2) not set")
	}

	e.Toggle() // toggle off at cursor
	if e.Pixels()[2][3] != 0 {
		t.Error("pixel (3,2) still set after second toggle")
	}

	e.Clear()
	for y, row := range e.Pixels() {
		for x, v := range row {
			if v != 0 {
				t.Fatalf("pixel (%d,%d) survived Clear", x, y)
			}
		}
	}
}

func TestEditorCursorWraps(t *testing.T) {
	t.Parallel()

	e := NewEditor()
	e.Move(-1, -1)
	x, y := e.Cursor()
	if x != Width-1 || y != Height-1 {
		t.Errorf("Cursor() = (%d,%d), want (%d,%d)", x, y, Width-1, Height-1)
	}

	e.Move(1, 1)
	x, y = e.Cursor()
	if x != 0 || y != 0 {
		t.Errorf("Cursor() = (%d,%d), want (0,0)", x, y)
	}
}
