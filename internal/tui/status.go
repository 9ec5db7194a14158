package tui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pixeldock/pixelctl/internal/client/panel"
	"github.com/pixeldock/pixelctl/internal/tui/components/fpsdial"
	"github.com/pixeldock/pixelctl/internal/tui/components/pixelgrid"
	"github.com/pixeldock/pixelctl/internal/tui/theme"
)

// staleAfterFailures is how many consecutive poll failures are tolerated
// before the pane flags the data as stale. The last good snapshot stays on
// screen either way.
const staleAfterFailures = 3

type StatusState struct {
	status          *panel.Status
	preview         *panel.Preview
	statusFailures  int
	previewFailures int

	showSensors bool
	dht         map[string]any
	gpio        map[string]any
}

func NewStatusState() StatusState {
	return StatusState{}
}

func (m *Model) updateStatus(key string) tea.Cmd {
	s := &m.state.console.status

	switch key {
	case "d":
		s.showSensors = !s.showSensors
		if s.showSensors {
			return tea.Batch(fetchDHTCmd(m.deps.Panel), fetchGPIOCmd(m.deps.Panel))
		}
		return nil
	case "o":
		if s.showSensors {
			return readDHTOnceCmd(m.deps.Panel)
		}
	}
	return nil
}

func (m *Model) handleDHT(msg DHTMsg) tea.Cmd {
	s := &m.state.console.status
	if msg.Err != nil {
		if panel.IsUnauthorized(msg.Err) {
			return m.beginLogout()
		}
		return nil
	}
	s.dht = msg.Detail
	return nil
}

func (m *Model) handleDHTRead(msg DHTReadMsg) tea.Cmd {
	if msg.Err != nil {
		return m.handleAPIError(msg.Err)
	}
	return tea.Batch(
		m.toast.Show("sensor read", false),
		fetchDHTCmd(m.deps.Panel),
		fetchStatusCmd(m.deps.Panel),
	)
}

func (m *Model) handleGPIO(msg GPIOMsg) tea.Cmd {
	s := &m.state.console.status
	if msg.Err != nil {
		if panel.IsUnauthorized(msg.Err) {
			return m.beginLogout()
		}
		return nil
	}
	s.gpio = msg.Level
	return nil
}

func (m *Model) handleStatus(msg StatusMsg) tea.Cmd {
	s := &m.state.console.status

	if msg.Err != nil {
		if panel.IsUnauthorized(msg.Err) {
			return m.beginLogout()
		}
		s.statusFailures++
		return nil
	}

	s.status = msg.Status
	s.statusFailures = 0
	return nil
}

func (m *Model) handlePreview(msg PreviewMsg) tea.Cmd {
	s := &m.state.console.status

	if msg.Err != nil {
		if panel.IsUnauthorized(msg.Err) {
			return m.beginLogout()
		}
		s.previewFailures++
		return nil
	}

	s.preview = msg.Preview
	s.previewFailures = 0
	return nil
}

func (m *Model) StatusView() string {
	leftRows := []string{
		m.displaySection(),
		"",
		m.dataSection(),
	}
	if m.state.console.status.showSensors {
		leftRows = append(leftRows, "", m.sensorsSection())
	}
	left := lipgloss.JoinVertical(lipgloss.Left, leftRows...)

	right := lipgloss.JoinVertical(lipgloss.Center,
		m.previewSection(),
		"",
		m.fpsSection(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
}

func (m *Model) displaySection() string {
	s := &m.state.console.status

	title := lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true).Render("DISPLAY")
	if s.status == nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.TextDim().Render("waiting for status..."))
	}

	d := s.status.Display

	running := lipgloss.NewStyle().Foreground(theme.ColorError).Render("stopped")
	if d.Running {
		running = lipgloss.NewStyle().Foreground(theme.ColorOK).Render("running")
	}

	rows := []string{
		title,
		m.kv("loop", running),
		m.kv("source", d.LastSource),
	}
	if d.LastModule != nil {
		rows = append(rows, m.kv("module", *d.LastModule))
	}
	rows = append(rows, m.kv("last frame", agoString(d.LastFrameTS)))

	if d.ManualActive {
		rows = append(rows, m.kv("manual", "active until "+untilString(d.ManualUntil)))
	}
	if d.DebugActive {
		pattern := "?"
		if d.DebugPattern != nil {
			pattern = *d.DebugPattern
		}
		rows = append(rows, m.kv("pattern", pattern+" until "+untilString(d.DebugUntil)))
	}

	if s.statusFailures >= staleAfterFailures {
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.ColorWarn).
			Render(fmt.Sprintf("⚠ stale: %d polls failed", s.statusFailures)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) dataSection() string {
	s := &m.state.console.status

	title := lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true).Render("DATA FEEDS")
	if s.status == nil {
		return title
	}
	d := s.status.Data

	rows := []string{
		title,
		m.feedLine("btc/eur", formatFloat(d.BTCEur, "€%.0f"), d.BTCError, d.BTCUpdatedAt),
		m.feedLine("block", formatInt(d.BlockHeight), d.BlockHeightError, d.BlockHeightUpdatedAt),
		m.feedLine("weather", formatFloat(d.WeatherOutdoorTemp, "%.1f°C"), d.WeatherError, d.WeatherUpdatedAt),
		m.feedLine("indoor", formatFloat(d.WeatherIndoorTemp, "%.1f°C"), d.DHTError, d.DHTUpdatedAt),
	}
	if d.WeatherIndoorHumidity != nil {
		rows = append(rows, m.feedLine("humidity", formatFloat(d.WeatherIndoorHumidity, "%.0f%%"), d.DHTError, d.DHTUpdatedAt))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// sensorsSection shows the raw indoor-sensor diagnostics fetched alongside
// the status poll while the detail is open.
func (m *Model) sensorsSection() string {
	s := &m.state.console.status

	title := lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true).Render("SENSOR")
	if s.dht == nil {
		return lipgloss.JoinVertical(lipgloss.Left, title, m.theme.TextDim().Render("reading..."))
	}

	rows := []string{
		title,
		m.kv("temp", mapNumber(s.dht, "temperature", "%.1f°C")),
		m.kv("humidity", mapNumber(s.dht, "humidity", "%.0f%%")),
		m.kv("read took", mapNumber(s.dht, "duration_ms", "%.0fms")),
	}
	if ts, ok := s.dht["last_attempt_at"].(float64); ok {
		rows = append(rows, m.kv("last read", agoString(&ts)))
	}
	if s.gpio != nil {
		rows = append(rows, m.kv("gpio", mapNumber(s.gpio, "level", "%.0f")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// mapNumber formats a numeric entry from a loosely-typed JSON payload.
func mapNumber(payload map[string]any, key, format string) string {
	v, ok := payload[key].(float64)
	if !ok {
		return "--"
	}
	return fmt.Sprintf(format, v)
}

func (m *Model) previewSection() string {
	s := &m.state.console.status

	title := lipgloss.NewStyle().Foreground(theme.ColorAccent).Bold(true).Render("PREVIEW")

	rows := []string{title, pixelgrid.Render(s.preview)}
	if s.preview != nil {
		rows = append(rows, m.theme.TextDim().Render(fmt.Sprintf("%d lit", s.preview.LitPixels)))
	}
	if s.previewFailures >= staleAfterFailures {
		rows = append(rows, lipgloss.NewStyle().Foreground(theme.ColorWarn).
			Render(fmt.Sprintf("⚠ stale: %d polls failed", s.previewFailures)))
	}

	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *Model) fpsSection() string {
	s := &m.state.console.status

	var actual *float64
	target := 0.0
	if s.status != nil {
		actual = &s.status.Display.ActualFPS
		target = float64(s.status.Display.TargetFPS)
	}
	if target <= 0 {
		target = 1
	}

	return fpsdial.New(actual, target).Render()
}

func (m *Model) kv(key, value string) string {
	return m.theme.TextDim().Width(12).Render(key) +
		lipgloss.NewStyle().Foreground(theme.ColorWhite).Render(value)
}

func (m *Model) feedLine(name, value string, feedErr *string, updatedAt *float64) string {
	var (
		dot      = lipgloss.NewStyle().Foreground(theme.ColorOK).Render("●")
		valStyle = lipgloss.NewStyle().Foreground(theme.ColorWhite)
	)

	switch {
	case feedErr != nil && *feedErr != "":
		dot = lipgloss.NewStyle().Foreground(theme.ColorError).Render("●")
	case value == "":
		dot = m.theme.TextDim().Render("○")
		value = "--"
	}

	line := dot + " " + m.theme.TextDim().Width(10).Render(name) + valStyle.Render(value)
	if ago := agoString(updatedAt); ago != "" {
		line += m.theme.TextDim().Render("  " + ago)
	}
	return line
}

func formatFloat(v *float64, format string) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf(format, *v)
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

// agoString renders a unix-seconds timestamp as a relative age.
func agoString(ts *float64) string {
	if ts == nil {
		return ""
	}
	age := time.Since(time.Unix(int64(*ts), 0))
	switch {
	case age < 0:
		return "now"
	case age < time.Minute:
		return fmt.Sprintf("%ds ago", int(age.Seconds()))
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	}
}

func untilString(ts *float64) string {
	if ts == nil {
		return "?"
	}
	remaining := time.Until(time.Unix(int64(*ts), 0))
	if remaining < 0 {
		return "now"
	}
	return fmt.Sprintf("%ds", int(remaining.Seconds())+1)
}
