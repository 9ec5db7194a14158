package tui

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/tui/components/pixelgrid"
	"github.com/pixeldock/pixelctl/internal/tui/components/textinput"
	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

var patterns = []string{"pixel_walk", "stripes", "panel_walk", "border"}

const (
	defaultTextSeconds    = 5
	defaultDrawSeconds    = 10
	defaultPatternSeconds = 10
	patternIntervalMS     = 120
)

type manualControl uint

const (
	controlText manualControl = iota
	controlSeconds
	controlBrightness
	controlPattern
	controlDraw
	controlMapX
	controlMapY
	controlCount
)

type ManualState struct {
	focus        manualControl
	fieldEditing bool
	drawMode     bool

	text       textinput.Model
	seconds    textinput.Model
	brightness textinput.Model
	mapX       textinput.Model
	mapY       textinput.Model

	patternIdx int
	editor     pixelgrid.Editor
	mapping    string
}

func NewManualState() ManualState {
	s := ManualState{
		text:       textinput.New("message"),
		seconds:    textinput.New("seconds"),
		brightness: textinput.New("0-255"),
		mapX:       textinput.New("x"),
		mapY:       textinput.New("y"),
		editor:     pixelgrid.NewEditor(),
	}
	s.seconds.SetValue(strconv.Itoa(defaultTextSeconds))
	return s
}

func (s *ManualState) editing() bool {
	return s.fieldEditing || s.drawMode
}

func (s *ManualState) focusedInput() *textinput.Model {
	switch s.focus {
	case controlText:
		return &s.text
	case controlSeconds:
		return &s.seconds
	case controlBrightness:
		return &s.brightness
	case controlMapX:
		return &s.mapX
	case controlMapY:
		return &s.mapY
	}
	return nil
}

func validSeconds(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n >= 1
}

func validBrightness(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return n, err == nil && n >= 0 && n <= 255
}

// validCoordinate checks a logical pixel address against the panel geometry.
func validCoordinate(sx, sy string) (x, y int, errMessage string) {
	x, errX := strconv.Atoi(strings.TrimSpace(sx))
	y, errY := strconv.Atoi(strings.TrimSpace(sy))
	if errX != nil || x < 0 || x >= pixelgrid.Width {
		return 0, 0, fmt.Sprintf("x must be 0-%d", pixelgrid.Width-1)
	}
	if errY != nil || y < 0 || y >= pixelgrid.Height {
		return 0, 0, fmt.Sprintf("y must be 0-%d", pixelgrid.Height-1)
	}
	return x, y, ""
}

func (m *Model) updateManual(key string) tea.Cmd {
	s := &m.state.console.manual

	if s.drawMode {
		return m.updateDrawMode(key)
	}
	if s.fieldEditing {
		switch key {
		case "enter", "esc":
			s.fieldEditing = false
			if input := s.focusedInput(); input != nil {
				input.Blur()
			}
			return nil
		}
		if input := s.focusedInput(); input != nil {
			input.HandleKey(key)
		}
		return nil
	}

	switch key {
	case "up", "k":
		if s.focus > 0 {
			s.focus--
		}
	case "down", "j":
		if s.focus < controlCount-1 {
			s.focus++
		}
	case "left", "h":
		if s.focus == controlPattern {
			s.patternIdx = (s.patternIdx + len(patterns) - 1) % len(patterns)
		}
	case "right", "l":
		if s.focus == controlPattern {
			s.patternIdx = (s.patternIdx + 1) % len(patterns)
		}
	case "enter":
		switch s.focus {
		case controlPattern:
			return startPatternCmd(m.deps.Panel, patterns[s.patternIdx], defaultPatternSeconds, patternIntervalMS)
		case controlDraw:
			s.drawMode = true
		default:
			s.fieldEditing = true
			if input := s.focusedInput(); input != nil {
				input.Focus()
			}
		}
	case "t":
		return m.sendText()
	case "b":
		return m.applyBrightness()
	case "p":
		return startPatternCmd(m.deps.Panel, patterns[s.patternIdx], defaultPatternSeconds, patternIntervalMS)
	case "x":
		return stopPatternCmd(m.deps.Panel)
	case "d":
		s.drawMode = true
		s.focus = controlDraw
	case "m":
		return m.mapCoordinate()
	}
	return nil
}

func (m *Model) updateDrawMode(key string) tea.Cmd {
	s := &m.state.console.manual

	switch key {
	case "esc":
		s.drawMode = false
	case "up", "k":
		s.editor.Move(0, -1)
	case "down", "j":
		s.editor.Move(0, 1)
	case "left", "h":
		s.editor.Move(-1, 0)
	case "right", "l":
		s.editor.Move(1, 0)
	case "space":
		s.editor.Toggle()
	case "c":
		s.editor.Clear()
	case "enter":
		return drawCmd(m.deps.Panel, s.editor.Pixels(), defaultDrawSeconds)
	}
	return nil
}

func (m *Model) sendText() tea.Cmd {
	s := &m.state.console.manual

	text := strings.TrimSpace(s.text.Value())
	if text == "" {
		return m.toast.Show("nothing to send", true)
	}
	seconds, ok := validSeconds(s.seconds.Value())
	if !ok {
		return m.toast.Show("seconds must be a whole number, at least 1", true)
	}
	return showTextCmd(m.deps.Panel, text, seconds)
}

func (m *Model) applyBrightness() tea.Cmd {
	s := &m.state.console.manual

	brightness, ok := validBrightness(s.brightness.Value())
	if !ok {
		return m.toast.Show("brightness must be 0-255", true)
	}
	return setBrightnessCmd(m.deps.Panel, brightness)
}

func (m *Model) mapCoordinate() tea.Cmd {
	s := &m.state.console.manual

	x, y, errMessage := validCoordinate(s.mapX.Value(), s.mapY.Value())
	if errMessage != "" {
		return m.toast.Show(errMessage, true)
	}
	return mapCoordinateCmd(m.deps.Panel, x, y)
}

func (m *Model) handleCoordinateMapped(msg CoordinateMappedMsg) tea.Cmd {
	s := &m.state.console.manual

	if msg.Err != nil {
		return m.handleAPIError(msg.Err)
	}

	s.mapping = fmt.Sprintf("(%d,%d) → %s", msg.X, msg.Y, formatMapping(msg.Mapping.Mapping))
	return nil
}

func formatMapping(mapping map[string]any) string {
	keys := make([]string, 0, len(mapping))
	for k := range mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, mapping[k]))
	}
	return strings.Join(parts, " ")
}

func (m *Model) ManualView() string {
	s := &m.state.console.manual

	var (
		labelStyle  = m.theme.TextDim().Width(14)
		activeLabel = lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true).Width(14)
		valueStyle  = lipgloss.NewStyle().Foreground(theme.ColorWhite)
	)

	row := func(control manualControl, label, value string) string {
		style := labelStyle
		marker := "  "
		if s.focus == control {
			style = activeLabel
			marker = "› "
		}
		return marker + style.Render(label) + value
	}

	patternValue := valueStyle.Render(patterns[s.patternIdx]) +
		m.theme.TextDim().Render(fmt.Sprintf("  (%ds, %dms)", defaultPatternSeconds, patternIntervalMS))

	rows := []string{
		row(controlText, "text", s.text.View()),
		row(controlSeconds, "seconds", s.seconds.View()),
		"",
		row(controlBrightness, "brightness", s.brightness.View()),
		"",
		row(controlPattern, "pattern", patternValue),
		"",
		row(controlDraw, "draw", ""),
		s.editor.View(s.drawMode),
		"",
		row(controlMapX, "map x", s.mapX.View()),
		row(controlMapY, "map y", s.mapY.View()),
	}
	if s.mapping != "" {
		rows = append(rows, "  "+m.theme.TextAccent().Render(s.mapping))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) manualHint() string {
	s := &m.state.console.manual
	switch {
	case s.drawMode:
		return "arrows move · space toggle · c clear · enter send · esc done"
	case s.fieldEditing:
		return "enter apply · esc done"
	default:
		return "j/k focus · enter edit/run · t text · b brightness · p/x pattern · d draw · m map · q quit"
	}
}
