package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

type pane uint

const (
	modulesPane pane = iota
	manualPane
	statusPane
)

func (p pane) title() string {
	switch p {
	case modulesPane:
		return "Modules"
	case manualPane:
		return "Manual"
	case statusPane:
		return "Status"
	}
	return ""
}

type ConsoleState struct {
	pane    pane
	modules ModulesState
	manual  ManualState
	status  StatusState
}

func NewConsoleState() ConsoleState {
	return ConsoleState{
		pane:    modulesPane,
		modules: NewModulesState(),
		manual:  NewManualState(),
		status:  NewStatusState(),
	}
}

func (m *Model) updateConsole(key string) tea.Cmd {
	s := &m.state.console

	// pane-global keys apply only when no input has focus
	if !m.consoleEditing() {
		switch key {
		case "q":
			return tea.Quit
		case "1":
			s.pane = modulesPane
			return nil
		case "2":
			s.pane = manualPane
			return nil
		case "3":
			s.pane = statusPane
			return nil
		case "tab":
			s.pane = (s.pane + 1) % 3
			return nil
		case "r":
			return fetchModulesCmd(m.deps.Panel)
		}
	}

	switch s.pane {
	case modulesPane:
		return m.updateModules(key)
	case manualPane:
		return m.updateManual(key)
	case statusPane:
		return m.updateStatus(key)
	}
	return nil
}

// consoleEditing reports whether some text input on the active pane owns the
// keyboard.
func (m *Model) consoleEditing() bool {
	s := &m.state.console
	switch s.pane {
	case modulesPane:
		return s.modules.editing
	case manualPane:
		return s.manual.editing()
	}
	return false
}

func (m *Model) ConsoleView() string {
	s := m.state.console

	header := m.consoleHeader()
	footer := m.consoleFooter()

	bodyHeight := m.viewportHeight - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}

	var body string
	switch s.pane {
	case modulesPane:
		body = m.ModulesView(bodyHeight)
	case manualPane:
		body = m.ManualView()
	case statusPane:
		body = m.StatusView()
	}

	body = lipgloss.NewStyle().
		Width(m.viewportWidth).
		Height(bodyHeight).
		Padding(0, 1).
		Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m *Model) consoleHeader() string {
	var (
		titleStyle  = lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true).Padding(0, 1)
		tabStyle    = m.theme.TextDim().Padding(0, 1)
		activeStyle = lipgloss.NewStyle().
				Foreground(theme.ColorBgDark).
				Background(theme.ColorAccent).
				Padding(0, 1)
	)

	tabs := make([]string, 0, 3)
	for _, p := range []pane{modulesPane, manualPane, statusPane} {
		style := tabStyle
		if p == m.state.console.pane {
			style = activeStyle
		}
		tabs = append(tabs, style.Render(p.title()))
	}

	left := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("PIXELDOCK"),
		lipgloss.JoinHorizontal(lipgloss.Center, tabs...),
	)

	right := m.toast.View()
	if right == "" {
		right = m.theme.TextDim().Render(m.deps.Config.PanelURL + " ")
	}

	gap := m.viewportWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return left + lipgloss.NewStyle().Width(gap).Render("") + right
}

func (m *Model) consoleFooter() string {
	var hint string
	switch m.state.console.pane {
	case modulesPane:
		hint = m.modulesHint()
	case manualPane:
		hint = m.manualHint()
	case statusPane:
		hint = "d sensor detail · o read sensor · 1/2/3 panes · tab next pane · q quit"
	}
	return m.theme.TextDim().Padding(0, 1).Render(hint)
}
