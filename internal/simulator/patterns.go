package simulator

// PatternNames are the built-in diagnostic animations, in menu order.
var PatternNames = []string{"pixel_walk", "stripes", "panel_walk", "border"}

func ValidPattern(name string) bool {
	for _, p := range PatternNames {
		if p == name {
			return true
		}
	}
	return false
}

var patternColors = map[string]RGB{
	"pixel_walk": {37, 99, 235},
	"stripes":    {249, 115, 22},
	"panel_walk": {22, 200, 80},
	"border":     {230, 60, 60},
}

// patternFrame renders one animation step of a diagnostic pattern. Step
// counts pattern ticks, not wall time.
func patternFrame(name string, step int) [GridHeight][GridWidth]bool {
	var grid [GridHeight][GridWidth]bool

	switch name {
	case "pixel_walk":
		// a single pixel travelling in wiring order, so serpentine bugs
		// show up as jumps
		x, y := StripCoordinate(step % StripLen)
		grid[y][x] = true

	case "stripes":
		for y := 0; y < GridHeight; y++ {
			for x := 0; x < GridWidth; x++ {
				if (x+step)%4 == 0 {
					grid[y][x] = true
				}
			}
		}

	case "panel_walk":
		panel := step % PanelCount
		for y := 0; y < GridHeight; y++ {
			for x := panel * PanelWidth; x < (panel+1)*PanelWidth; x++ {
				grid[y][x] = true
			}
		}

	case "border":
		cells := borderCells()
		for i := 0; i < borderRunnerLen; i++ {
			c := cells[(step+i)%len(cells)]
			grid[c[1]][c[0]] = true
		}
	}

	return grid
}

const borderRunnerLen = 8

// borderCells enumerates the perimeter clockwise from the top-left corner.
func borderCells() [][2]int {
	cells := make([][2]int, 0, 2*GridWidth+2*(GridHeight-2))
	for x := 0; x < GridWidth; x++ {
		cells = append(cells, [2]int{x, 0})
	}
	for y := 1; y < GridHeight; y++ {
		cells = append(cells, [2]int{GridWidth - 1, y})
	}
	for x := GridWidth - 2; x >= 0; x-- {
		cells = append(cells, [2]int{x, GridHeight - 1})
	}
	for y := GridHeight - 2; y >= 1; y-- {
		cells = append(cells, [2]int{0, y})
	}
	return cells
}
