package simulator

// Panel geometry: four 8x8 panels chained left to right into one 8x32 strip.
const (
	GridWidth  = 32
	GridHeight = 8
	PanelWidth = 8
	PanelCount = GridWidth / PanelWidth
	StripLen   = GridWidth * GridHeight
)

// StripIndex maps a logical pixel onto its position in the LED chain. Within
// a panel the wiring is serpentine: even columns run top-down, odd columns
// bottom-up.
func StripIndex(x, y int) int {
	panel := x / PanelWidth
	localX := x % PanelWidth
	base := panel*PanelWidth*GridHeight + localX*GridHeight
	if localX%2 == 1 {
		return base + (GridHeight - 1 - y)
	}
	return base + y
}

// StripCoordinate is the inverse of StripIndex.
func StripCoordinate(i int) (x, y int) {
	panel := i / (PanelWidth * GridHeight)
	rem := i % (PanelWidth * GridHeight)
	localX := rem / GridHeight
	offset := rem % GridHeight
	if localX%2 == 1 {
		offset = GridHeight - 1 - offset
	}
	return panel*PanelWidth + localX, offset
}

// MapCoordinate explains the wiring for one logical pixel, as returned by the
// mapping debug endpoint.
func MapCoordinate(x, y int) map[string]any {
	localX := x % PanelWidth
	return map[string]any{
		"panel":       x / PanelWidth,
		"panel_x":     localX,
		"panel_y":     y,
		"flipped":     localX%2 == 1,
		"strip_index": StripIndex(x, y),
	}
}

func InBounds(x, y int) bool {
	return x >= 0 && x < GridWidth && y >= 0 && y < GridHeight
}
