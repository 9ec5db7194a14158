package textinput

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

// Model is a minimal single-line input. Keys arrive as the already-stringified
// key names from the event loop; anything the input does not understand is
// reported as unconsumed so the page can act on it.
type Model struct {
	Placeholder string
	Mask        rune // 0 renders plain text

	value   []rune
	cursor  int
	focused bool
}

func New(placeholder string) Model {
	return Model{Placeholder: placeholder}
}

func (m *Model) Focus()       { m.focused = true }
func (m *Model) Blur()        { m.focused = false }
func (m Model) Focused() bool { return m.focused }
func (m Model) Value() string { return string(m.value) }
func (m Model) Empty() bool   { return len(m.value) == 0 }

func (m *Model) SetValue(s string) {
	m.value = []rune(s)
	m.cursor = len(m.value)
}

func (m *Model) Reset() {
	m.value = nil
	m.cursor = 0
}

// HandleKey applies one key press and reports whether it was consumed.
func (m *Model) HandleKey(key string) bool {
	switch key {
	case "backspace":
		if m.cursor > 0 {
			m.value = append(m.value[:m.cursor-1], m.value[m.cursor:]...)
			m.cursor--
		}
	case "delete":
		if m.cursor < len(m.value) {
			m.value = append(m.value[:m.cursor], m.value[m.cursor+1:]...)
		}
	case "left":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right":
		if m.cursor < len(m.value) {
			m.cursor++
		}
	case "home", "ctrl+a":
		m.cursor = 0
	case "end", "ctrl+e":
		m.cursor = len(m.value)
	case "ctrl+u":
		m.value = append([]rune(nil), m.value[m.cursor:]...)
		m.cursor = 0
	case "space":
		m.insert(' ')
	default:
		runes := []rune(key)
		if len(runes) != 1 {
			return false
		}
		m.insert(runes[0])
	}
	return true
}

func (m *Model) insert(r rune) {
	m.value = append(m.value[:m.cursor], append([]rune{r}, m.value[m.cursor:]...)...)
	m.cursor++
}

func (m Model) View() string {
	var (
		textStyle   = lipgloss.NewStyle().Foreground(theme.ColorWhite)
		dimStyle    = lipgloss.NewStyle().Foreground(theme.ColorDim)
		cursorStyle = lipgloss.NewStyle().Foreground(theme.ColorBgDark).Background(theme.ColorWhite)
	)

	if len(m.value) == 0 {
		if m.focused {
			return cursorStyle.Render(" ") + dimStyle.Render(m.Placeholder)
		}
		return dimStyle.Render(m.Placeholder)
	}

	shown := m.value
	if m.Mask != 0 {
		shown = []rune(strings.Repeat(string(m.Mask), len(m.value)))
	}

	if !m.focused {
		return textStyle.Render(string(shown))
	}

	// cursor sits on the rune at m.cursor, or on a trailing space at the end
	before := string(shown[:m.cursor])
	var at, after string
	if m.cursor < len(shown) {
		at = string(shown[m.cursor])
		after = string(shown[m.cursor+1:])
	} else {
		at = " "
	}

	return textStyle.Render(before) + cursorStyle.Render(at) + textStyle.Render(after)
}
