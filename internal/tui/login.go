package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/tui/components/textinput"
	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

type LoginState struct {
	Username   textinput.Model
	Password   textinput.Model
	focus      int // 0 username, 1 password
	submitting bool
	errMessage string
}

func NewLoginState() LoginState {
	s := LoginState{
		Username: textinput.New("username"),
		Password: textinput.New("password"),
	}
	s.Password.Mask = '*'
	s.Username.Focus()
	return s
}

func (m *Model) updateLogin(key string) tea.Cmd {
	s := &m.state.login

	if s.submitting {
		return nil
	}

	switch key {
	case "q", "esc":
		return tea.Quit

	case "tab", "down", "up":
		s.focus = 1 - s.focus
		if s.focus == 0 {
			s.Username.Focus()
			s.Password.Blur()
		} else {
			s.Password.Focus()
			s.Username.Blur()
		}
		return nil

	case "enter":
		username := strings.TrimSpace(s.Username.Value())
		password := s.Password.Value()
		if username == "" || password == "" {
			s.errMessage = "username and password are required"
			return nil
		}
		s.submitting = true
		s.errMessage = ""
		return loginCmd(m.deps.Panel, m.deps.Session, username, password)
	}

	if s.focus == 0 {
		s.Username.HandleKey(key)
	} else {
		s.Password.HandleKey(key)
	}
	return nil
}

func (m *Model) handleLoginResult(msg LoginResultMsg) tea.Cmd {
	s := &m.state.login
	s.submitting = false

	if msg.Err != nil {
		s.errMessage = msg.Err.Error()
		s.Password.Reset()
		return nil
	}

	m.state.login = NewLoginState()
	return m.enterConsole()
}

func (m *Model) LoginView() string {
	s := m.state.login

	var (
		titleStyle = lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true)
		labelStyle = m.theme.TextDim()
		boxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(theme.ColorBgLight).
				Padding(1, 3)
		errStyle  = lipgloss.NewStyle().Foreground(theme.ColorError)
		hintStyle = m.theme.TextDim()
	)

	rows := []string{
		titleStyle.Render("PIXELDOCK CONSOLE"),
		m.theme.TextDim().Render(m.deps.Config.PanelURL),
		"",
		labelStyle.Render("Username"),
		s.Username.View(),
		"",
		labelStyle.Render("Password"),
		s.Password.View(),
	}

	switch {
	case s.submitting:
		rows = append(rows, "", hintStyle.Render("signing in..."))
	case s.errMessage != "":
		rows = append(rows, "", errStyle.Render(s.errMessage))
	default:
		rows = append(rows, "", hintStyle.Render("enter to sign in · tab to switch · q to quit"))
	}

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
