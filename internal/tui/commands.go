package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/pixeldock/pixelctl/internal/client/panel"
	"github.com/pixeldock/pixelctl/internal/session"
)

func checkSessionCmd(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		hasToken, err := store.HasToken(ctx)
		return SessionCheckMsg{HasToken: hasToken, Err: err}
	}
}

// loginCmd exchanges credentials for a token and persists it. Persistence is
// part of the login, not a separate step: a token we cannot store is a failed
// login.
func loginCmd(client *panel.Client, store *session.Store, username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		token, err := client.Auth.Login(ctx, username, password)
		if err != nil {
			return LoginResultMsg{Err: err}
		}
		if err := store.SetToken(ctx, token); err != nil {
			return LoginResultMsg{Err: err}
		}
		return LoginResultMsg{}
	}
}

func clearSessionCmd(store *session.Store) tea.Cmd {
	return func() tea.Msg {
		return SessionClearedMsg{Err: store.Clear(context.Background())}
	}
}

func returnToLoginCmd() tea.Cmd {
	return tea.Tick(returnToLoginAfter, func(time.Time) tea.Msg {
		return ReturnToLoginMsg{}
	})
}

func fetchModulesCmd(client *panel.Client) tea.Cmd {
	return func() tea.Msg {
		modules, err := client.Modules.List(context.Background())
		return ModulesMsg{Modules: modules, Err: err}
	}
}

func saveModuleCmd(client *panel.Client, id int64, update panel.ModuleUpdate) tea.Cmd {
	return func() tea.Msg {
		module, err := client.Modules.Update(context.Background(), id, update)
		return ModuleSavedMsg{ID: id, Module: module, Err: err}
	}
}

func toggleModuleCmd(client *panel.Client, id int64, update panel.ModuleUpdate) tea.Cmd {
	return func() tea.Msg {
		module, err := client.Modules.Update(context.Background(), id, update)
		return ModuleToggledMsg{ID: id, Enabled: update.Enabled, Module: module, Err: err}
	}
}

func fetchStatusCmd(client *panel.Client) tea.Cmd {
	return func() tea.Msg {
		status, err := client.Debug.Status(context.Background())
		return StatusMsg{Status: status, Err: err}
	}
}

func fetchPreviewCmd(client *panel.Client) tea.Cmd {
	return func() tea.Msg {
		preview, err := client.Debug.Preview(context.Background())
		return PreviewMsg{Preview: preview, Err: err}
	}
}

func showTextCmd(client *panel.Client, text string, seconds int) tea.Cmd {
	return func() tea.Msg {
		return TextShownMsg{Err: client.Display.ShowText(context.Background(), text, seconds)}
	}
}

func setBrightnessCmd(client *panel.Client, brightness int) tea.Cmd {
	return func() tea.Msg {
		return BrightnessSetMsg{
			Brightness: brightness,
			Err:        client.Display.SetBrightness(context.Background(), brightness),
		}
	}
}

func drawCmd(client *panel.Client, pixels [][]int, seconds int) tea.Cmd {
	return func() tea.Msg {
		return DrawSentMsg{Err: client.Display.Draw(context.Background(), pixels, seconds)}
	}
}

func startPatternCmd(client *panel.Client, pattern string, seconds, intervalMS int) tea.Cmd {
	return func() tea.Msg {
		return PatternStartedMsg{
			Pattern: pattern,
			Err:     client.Debug.StartPattern(context.Background(), pattern, seconds, intervalMS),
		}
	}
}

func stopPatternCmd(client *panel.Client) tea.Cmd {
	return func() tea.Msg {
		return PatternStoppedMsg{Err: client.Debug.StopPattern(context.Background())}
	}
}

func mapCoordinateCmd(client *panel.Client, x, y int) tea.Cmd {
	return func() tea.Msg {
		mapping, err := client.Debug.MapCoordinate(context.Background(), x, y)
		return CoordinateMappedMsg{X: x, Y: y, Mapping: mapping, Err: err}
	}
}

func fetchDHTCmd(client *panel.Client) tea.Cmd {
	return func() tea.Msg {
		detail, err := client.Debug.DHT(context.Background())
		return DHTMsg{Detail: detail, Err: err}
	}
}

func readDHTOnceCmd(client *panel.Client) tea.Cmd {
	return func() tea.Msg {
		reading, err := client.Debug.DHTReadOnce(context.Background())
		return DHTReadMsg{Reading: reading, Err: err}
	}
}

func fetchGPIOCmd(client *panel.Client) tea.Cmd {
	return func() tea.Msg {
		level, err := client.Debug.GPIOLevel(context.Background())
		return GPIOMsg{Level: level, Err: err}
	}
}
