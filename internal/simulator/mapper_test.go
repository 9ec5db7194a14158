package simulator

import "testing"

func TestStripIndexSerpentine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		x, y int
		want int
	}{
		{0, 0, 0},    // first column runs top-down
		{0, 7, 7},
		{1, 0, 15},   // second column runs bottom-up
		{1, 7, 8},
		{7, 7, 56},   // last column of panel 0 is odd, flipped
		{8, 0, 64},   // panel 1 starts a fresh block
		{31, 0, 255}, // last pixel of the chain
	}

	for _, tt := range tests {
		if got := StripIndex(tt.x, tt.y); got != tt.want {
			t.Errorf("StripIndex(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestStripCoordinateRoundTrip(t *testing.T) {
	t.Parallel()

	seen := make(map[int]bool, StripLen)
	for y := 0; y < GridHeight; y++ {
		for x := 0; x < GridWidth; x++ {
			i := StripIndex(x, y)
			if i < 0 || i >= StripLen {
				t.Fatalf("StripIndex(%d, %d) = %d out of range", x, y, i)
			}
			if seen[i] {
				t.Fatalf("strip index %d assigned twice", i)
			}
			seen[i] = true

			gx, gy := StripCoordinate(i)
			if gx != x || gy != y {
				t.Fatalf("StripCoordinate(%d) = (%d,%d), want (%d,%d)", i, gx, gy, x, y)
			}
		}
	}
}

func TestMapCoordinateFields(t *testing.T) {
	t.Parallel()

	m := MapCoordinate(9, 3)
	if m["panel"] != 1 {
		t.Errorf("panel = %v, want 1", m["panel"])
	}
	if m["panel_x"] != 1 {
		t.Errorf("panel_x = %v, want 1", m["panel_x"])
	}
	if m["flipped"] != true {
		t.Errorf("flipped = %v, want true", m["flipped"])
	}
	if m["strip_index"] != StripIndex(9, 3) {
		t.Errorf("strip_index = %v, want %d", m["strip_index"], StripIndex(9, 3))
	}
}

func TestInBounds(t *testing.T) {
	t.Parallel()

	for _, bad := range [][2]int{{-1, 0}, {0, -1}, {32, 0}, {0, 8}} {
		if InBounds(bad[0], bad[1]) {
			t.Errorf("InBounds(%d, %d) = true", bad[0], bad[1])
		}
	}
	if !InBounds(31, 7) {
		t.Error("InBounds(31, 7) = false")
	}
}
