package fpsdial

import (
	"strings"
	"testing"
)

func TestRenderWithoutSampleShowsPlaceholderValue(t *testing.T) {
	t.Parallel()

	out := New(nil, 20).Render()
	if !strings.Contains(out, "-- / 20 fps") {
		t.Errorf("Render() = %q, want placeholder value line", out)
	}
	if !strings.ContainsFunc(out, isBraille) {
		t.Error("Render() has no braille arc")
	}
}

func TestRenderValueLine(t *testing.T) {
	t.Parallel()

	actual := 18.4
	out := New(&actual, 20).Render()
	if !strings.Contains(out, "18.4 / 20 fps") {
		t.Errorf("Render() = %q, want value line with sample", out)
	}
}

func TestFillClampedToTarget(t *testing.T) {
	t.Parallel()

	// over-target must not draw past the background band
	actual := 45.0
	out := New(&actual, 20).Render()
	for _, line := range strings.Split(out, "\n") {
		if len([]rune(stripANSI(line))) > dotsWidth/2 {
			t.Errorf("line wider than dial: %q", line)
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
