package tui

import "testing"

func TestValidBrightness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"0", 0, true},
		{"255", 255, true},
		{" 128 ", 128, true},
		{"256", 0, false},
		{"-1", 0, false},
		{"bright", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := validBrightness(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("validBrightness(%q) = (%d, %v), want (%d, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestValidSeconds(t *testing.T) {
	t.Parallel()

	if _, ok := validSeconds("0"); ok {
		t.Error("0 seconds accepted")
	}
	if _, ok := validSeconds("2.5"); ok {
		t.Error("fractional seconds accepted")
	}
	if n, ok := validSeconds("5"); !ok || n != 5 {
		t.Errorf("validSeconds(5) = (%d, %v)", n, ok)
	}
}

func TestValidCoordinate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y   string
		wantOK bool
	}{
		{"0", "0", true},
		{"31", "7", true},
		{"32", "0", false},
		{"0", "8", false},
		{"-1", "0", false},
		{"a", "0", false},
		{"0", "", false},
	}

	for _, tt := range tests {
		_, _, errMessage := validCoordinate(tt.x, tt.y)
		if ok := errMessage == ""; ok != tt.wantOK {
			t.Errorf("validCoordinate(%q, %q) error = %q, want ok=%v", tt.x, tt.y, errMessage, tt.wantOK)
		}
	}
}

func TestManualRejectsBadInputWithoutNetworkCall(t *testing.T) {
	t.Parallel()

	// nil client: reaching the network would panic when the command runs
	m := New(Deps{})
	m.state.console.manual.brightness.SetValue("999")

	cmd := m.applyBrightness()
	if cmd == nil {
		t.Fatal("expected a toast command")
	}
	cmd()
	if !m.toast.Visible() {
		t.Error("rejected brightness did not surface a toast")
	}

	m.state.console.manual.mapX.SetValue("40")
	m.state.console.manual.mapY.SetValue("0")
	if cmd := m.mapCoordinate(); cmd == nil {
		t.Fatal("expected a toast command for bad coordinate")
	}
}

func TestFormatMappingSortsKeys(t *testing.T) {
	t.Parallel()

	got := formatMapping(map[string]any{"strip_index": 42, "panel": 1, "flipped": true})
	want := "flipped=true panel=1 strip_index=42"
	if got != want {
		t.Errorf("formatMapping = %q, want %q", got, want)
	}
}
