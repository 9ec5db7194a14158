package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/client/panel"
	"github.com/pixeldock/pixelctl/internal/poll"
	"github.com/pixeldock/pixelctl/internal/tui/components/toast"
	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	loginPage page = iota
	consolePage
)

type state struct {
	login   LoginState
	console ConsoleState
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	toast          toast.Model
	sched          *poll.Scheduler
	state          state
	deps           Deps

	// set while an expired session is being torn down, so a burst of 401
	// responses triggers a single logout
	loggingOut bool
}

func New(deps Deps) Model {
	sched := poll.NewScheduler()
	sched.Define(poll.TaskStatus, deps.Config.StatusInterval)
	sched.Define(poll.TaskPreview, deps.Config.PreviewInterval)

	return Model{
		page:  loginPage,
		theme: theme.New(),
		toast: toast.New(),
		sched: sched,
		deps:  deps,
		state: state{
			login:   NewLoginState(),
			console: NewConsoleState(),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return checkSessionCmd(m.deps.Session)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.page {
		case loginPage:
			return m, m.updateLogin(msg.String())
		case consolePage:
			return m, m.updateConsole(msg.String())
		}

	case toast.DismissMsg:
		m.toast.Dismiss(msg)

	case SessionCheckMsg:
		if msg.Err == nil && msg.HasToken {
			return m, m.enterConsole()
		}

	case LoginResultMsg:
		return m, m.handleLoginResult(msg)

	case SessionClearedMsg:
		// nothing to update; the expiry toast is already showing

	case ReturnToLoginMsg:
		m.page = loginPage
		m.loggingOut = false
		m.state.login = NewLoginState()
		m.state.console = NewConsoleState()

	case poll.TickMsg:
		return m, m.handlePollTick(msg)

	case ModulesMsg:
		return m, m.handleModules(msg)
	case ModuleSavedMsg:
		return m, m.handleModuleSaved(msg)
	case ModuleToggledMsg:
		return m, m.handleModuleToggled(msg)
	case StatusMsg:
		return m, m.handleStatus(msg)
	case PreviewMsg:
		return m, m.handlePreview(msg)
	case TextShownMsg:
		return m, m.handleActionResult(msg.Err, "text sent")
	case BrightnessSetMsg:
		return m, m.handleActionResult(msg.Err, "brightness set")
	case DrawSentMsg:
		return m, m.handleActionResult(msg.Err, "frame sent")
	case PatternStartedMsg:
		return m, m.handleActionResult(msg.Err, "pattern "+msg.Pattern+" started")
	case PatternStoppedMsg:
		return m, m.handleActionResult(msg.Err, "pattern stopped")
	case CoordinateMappedMsg:
		return m, m.handleCoordinateMapped(msg)
	case DHTMsg:
		return m, m.handleDHT(msg)
	case DHTReadMsg:
		return m, m.handleDHTRead(msg)
	case GPIOMsg:
		return m, m.handleGPIO(msg)
	}

	return m, nil
}

// enterConsole switches to the console page and kicks off the module fetch
// plus both poll loops.
func (m *Model) enterConsole() tea.Cmd {
	m.page = consolePage
	return tea.Batch(
		fetchModulesCmd(m.deps.Panel),
		fetchStatusCmd(m.deps.Panel),
		fetchPreviewCmd(m.deps.Panel),
		m.sched.Start(poll.TaskStatus),
		m.sched.Start(poll.TaskPreview),
	)
}

// handlePollTick dispatches the fetch for a live tick and chains the next
// one. Stale ticks from a superseded generation die here.
func (m *Model) handlePollTick(msg poll.TickMsg) tea.Cmd {
	if !m.sched.Current(msg) {
		return nil
	}

	var fetch tea.Cmd
	switch msg.Task {
	case poll.TaskStatus:
		fetch = fetchStatusCmd(m.deps.Panel)
		// sensor detail rides the slow tick while it is open
		if m.state.console.status.showSensors {
			fetch = tea.Batch(fetch, fetchDHTCmd(m.deps.Panel), fetchGPIOCmd(m.deps.Panel))
		}
	case poll.TaskPreview:
		fetch = fetchPreviewCmd(m.deps.Panel)
	}

	return tea.Batch(fetch, m.sched.Next(msg))
}

// handleAPIError routes a failed call: credential rejection tears the session
// down, anything else surfaces as an error toast.
func (m *Model) handleAPIError(err error) tea.Cmd {
	if panel.IsUnauthorized(err) {
		return m.beginLogout()
	}
	return m.toast.Show(err.Error(), true)
}

// handleActionResult wraps up a fire-and-forget control action: toast the
// outcome and refresh the live panes so the effect shows up right away.
func (m *Model) handleActionResult(err error, okMessage string) tea.Cmd {
	if err != nil {
		return m.handleAPIError(err)
	}
	return tea.Batch(
		m.toast.Show(okMessage, false),
		fetchStatusCmd(m.deps.Panel),
		fetchPreviewCmd(m.deps.Panel),
	)
}

// beginLogout handles a rejected credential: stop polling, drop the stored
// token, tell the operator, and return to login shortly after. Re-entrant
// safe because every in-flight poll can fail with 401 at once.
func (m *Model) beginLogout() tea.Cmd {
	if m.loggingOut {
		return nil
	}
	m.loggingOut = true
	m.sched.StopAll()

	return tea.Batch(
		clearSessionCmd(m.deps.Session),
		m.toast.Show("session expired, signing out", true),
		returnToLoginCmd(),
	)
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true
	view.BackgroundColor = m.theme.Background()

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case loginPage:
		content = lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.LoginView(),
		)
	case consolePage:
		content = m.ConsoleView()
	}

	view.SetContent(content)
	return view
}
