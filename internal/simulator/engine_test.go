package simulator

import (
	"context"
	"testing"
	"time"
)

type staticRotation struct {
	module *Module
}

func (s staticRotation) Active(context.Context, time.Time) (*Module, error) {
	return s.module, nil
}

func litCount(grid [GridHeight][GridWidth]bool) int {
	n := 0
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] {
				n++
			}
		}
	}
	return n
}

func TestPatternFrames(t *testing.T) {
	t.Parallel()

	if got := litCount(patternFrame("pixel_walk", 5)); got != 1 {
		t.Errorf("pixel_walk lit %d cells, want 1", got)
	}

	grid := patternFrame("pixel_walk", 5)
	x, y := StripCoordinate(5)
	if !grid[y][x] {
		t.Error("pixel_walk does not follow the wiring order")
	}

	if got := litCount(patternFrame("panel_walk", 2)); got != PanelWidth*GridHeight {
		t.Errorf("panel_walk lit %d cells, want one full panel (%d)", got, PanelWidth*GridHeight)
	}

	if got := litCount(patternFrame("border", 0)); got != borderRunnerLen {
		t.Errorf("border lit %d cells, want %d", got, borderRunnerLen)
	}

	stripes := patternFrame("stripes", 0)
	if !stripes[0][0] || stripes[0][1] {
		t.Error("stripes step 0 not aligned to column 0")
	}
}

func TestManualOverridesPattern(t *testing.T) {
	t.Parallel()

	e := NewEngine(staticRotation{}, 20)
	e.StartPattern("stripes", 10, 100)
	e.ShowText("HI", 10)

	e.Tick(context.Background(), time.Now())
	status := e.Status(time.Now())
	if status.LastSource != "manual" {
		t.Errorf("LastSource = %q, want manual", status.LastSource)
	}
	if !status.ManualActive {
		t.Error("manual override not reported active")
	}
}

func TestPatternRunsAfterManualExpiry(t *testing.T) {
	t.Parallel()

	e := NewEngine(staticRotation{}, 20)
	e.StartPattern("pixel_walk", 60, 100)

	e.Tick(context.Background(), time.Now())
	status := e.Status(time.Now())
	if status.LastSource != "debug" {
		t.Errorf("LastSource = %q, want debug", status.LastSource)
	}
	if status.DebugPattern == nil || *status.DebugPattern != "pixel_walk" {
		t.Error("debug pattern not reported")
	}

	if got := e.Snapshot().LitPixels; got != 1 {
		t.Errorf("pixel_walk snapshot lit %d, want 1", got)
	}
}

func TestRotationRendersActiveModule(t *testing.T) {
	t.Parallel()

	module := &Module{
		Key:      "clock",
		Name:     "Clock",
		Enabled:  true,
		Settings: map[string]any{"color": "#ff8800"},
	}
	e := NewEngine(staticRotation{module: module}, 20)
	e.Tick(context.Background(), time.Now())

	status := e.Status(time.Now())
	if status.LastSource != "module" {
		t.Errorf("LastSource = %q, want module", status.LastSource)
	}
	if status.LastModule == nil || *status.LastModule != "clock" {
		t.Error("active module key not reported")
	}

	snapshot := e.Snapshot()
	if snapshot.LitPixels == 0 {
		t.Fatal("module frame is empty")
	}
	for y := range snapshot.Frame {
		for x := range snapshot.Frame[y] {
			if snapshot.Frame[y][x] == 1 {
				c := snapshot.Colors[y][x]
				if c == nil || *c != (RGB{0xff, 0x88, 0x00}) {
					t.Fatalf("lit cell (%d,%d) color = %v, want settings color", x, y, c)
				}
			}
		}
	}
}

func TestStopPatternFallsBackToRotation(t *testing.T) {
	t.Parallel()

	e := NewEngine(staticRotation{}, 20)
	e.StartPattern("border", 60, 100)
	e.Tick(context.Background(), time.Now())
	e.StopPattern()
	e.Tick(context.Background(), time.Now())

	status := e.Status(time.Now())
	if status.DebugActive {
		t.Error("pattern still active after stop")
	}
	if status.LastSource != "none" {
		t.Errorf("LastSource = %q, want none with an empty rotation", status.LastSource)
	}
}

func TestParseHexColor(t *testing.T) {
	t.Parallel()

	if c, ok := parseHexColor("#2563eb"); !ok || c != (RGB{37, 99, 235}) {
		t.Errorf("parseHexColor(#2563eb) = %v, %v", c, ok)
	}
	for _, bad := range []string{"", "2563eb", "#25", "#zzzzzz", "#2563ebff"} {
		if _, ok := parseHexColor(bad); ok {
			t.Errorf("parseHexColor(%q) accepted", bad)
		}
	}
}

func TestRenderTextLightsGlyphs(t *testing.T) {
	t.Parallel()

	grid := renderText("HI")
	if litCount(grid) == 0 {
		t.Fatal("no pixels lit")
	}

	// clipped, never out of bounds
	long := renderText("HELLO PIXELDOCK 12345")
	if litCount(long) == 0 {
		t.Fatal("long text rendered nothing")
	}
}
