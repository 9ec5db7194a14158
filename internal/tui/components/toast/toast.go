package toast

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

const dismissAfter = 3 * time.Second

// DismissMsg clears the toast identified by Seq. Stale sequences are ignored
// so a newer toast outlives the dismiss timer of the one it replaced.
type DismissMsg struct {
	Seq uint64
}

// Model is the single transient feedback line. A new Show replaces whatever
// is currently visible - last call wins, no queue.
type Model struct {
	message string
	isError bool
	seq     uint64
	visible bool
}

func New() Model {
	return Model{}
}

// Show displays a message and returns the command scheduling its dismissal.
func (m *Model) Show(message string, isError bool) tea.Cmd {
	m.seq++
	m.message = message
	m.isError = isError
	m.visible = true

	seq := m.seq
	return tea.Tick(dismissAfter, func(time.Time) tea.Msg {
		return DismissMsg{Seq: seq}
	})
}

func (m *Model) Dismiss(msg DismissMsg) {
	if msg.Seq == m.seq {
		m.visible = false
	}
}

func (m Model) Visible() bool { return m.visible }

func (m Model) View() string {
	if !m.visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Foreground(theme.ColorBgDark).
		Background(theme.ColorOK).
		Padding(0, 1).
		Bold(true)
	if m.isError {
		style = style.Background(theme.ColorError).Foreground(theme.ColorWhite)
	}

	return style.Render(m.message)
}
