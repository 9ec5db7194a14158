package simulator

import "strings"

// glyphs is a 3x5 pixel font. Each glyph is five rows of three bits, MSB on
// the left. Unknown runes render as blanks.
var glyphs = map[rune][5]uint8{
	' ': {0b000, 0b000, 0b000, 0b000, 0b000},
	'-': {0b000, 0b000, 0b111, 0b000, 0b000},
	'.': {0b000, 0b000, 0b000, 0b000, 0b010},
	':': {0b000, 0b010, 0b000, 0b010, 0b000},
	'!': {0b010, 0b010, 0b010, 0b000, 0b010},
	'?': {0b111, 0b001, 0b011, 0b000, 0b010},
	'/': {0b001, 0b001, 0b010, 0b100, 0b100},

	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b001, 0b010, 0b010},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},

	'A': {0b111, 0b101, 0b111, 0b101, 0b101},
	'B': {0b110, 0b101, 0b110, 0b101, 0b110},
	'C': {0b111, 0b100, 0b100, 0b100, 0b111},
	'D': {0b110, 0b101, 0b101, 0b101, 0b110},
	'E': {0b111, 0b100, 0b111, 0b100, 0b111},
	'F': {0b111, 0b100, 0b111, 0b100, 0b100},
	'G': {0b111, 0b100, 0b101, 0b101, 0b111},
	'H': {0b101, 0b101, 0b111, 0b101, 0b101},
	'I': {0b111, 0b010, 0b010, 0b010, 0b111},
	'J': {0b001, 0b001, 0b001, 0b101, 0b111},
	'K': {0b101, 0b110, 0b100, 0b110, 0b101},
	'L': {0b100, 0b100, 0b100, 0b100, 0b111},
	'M': {0b101, 0b111, 0b111, 0b101, 0b101},
	'N': {0b101, 0b111, 0b111, 0b111, 0b101},
	'O': {0b111, 0b101, 0b101, 0b101, 0b111},
	'P': {0b111, 0b101, 0b111, 0b100, 0b100},
	'Q': {0b111, 0b101, 0b101, 0b111, 0b001},
	'R': {0b111, 0b101, 0b110, 0b101, 0b101},
	'S': {0b111, 0b100, 0b111, 0b001, 0b111},
	'T': {0b111, 0b010, 0b010, 0b010, 0b010},
	'U': {0b101, 0b101, 0b101, 0b101, 0b111},
	'V': {0b101, 0b101, 0b101, 0b101, 0b010},
	'W': {0b101, 0b101, 0b111, 0b111, 0b101},
	'X': {0b101, 0b101, 0b010, 0b101, 0b101},
	'Y': {0b101, 0b101, 0b010, 0b010, 0b010},
	'Z': {0b111, 0b001, 0b010, 0b100, 0b111},
}

const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphSpacing = 1
)

// renderText draws text into a fresh grid, upper-cased, clipped at the right
// edge. The baseline is vertically centered for the 5-row font.
func renderText(text string) [GridHeight][GridWidth]bool {
	var grid [GridHeight][GridWidth]bool

	x := 1
	const y = (GridHeight - glyphHeight) / 2

	for _, r := range strings.ToUpper(text) {
		glyph, ok := glyphs[r]
		if !ok {
			glyph = glyphs[' ']
		}
		for row := 0; row < glyphHeight; row++ {
			for col := 0; col < glyphWidth; col++ {
				if glyph[row]&(1<<(glyphWidth-1-col)) == 0 {
					continue
				}
				px := x + col
				if InBounds(px, y+row) {
					grid[y+row][px] = true
				}
			}
		}
		x += glyphWidth + glyphSpacing
		if x >= GridWidth {
			break
		}
	}
	return grid
}
