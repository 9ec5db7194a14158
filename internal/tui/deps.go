package tui

import (
	"context"
	"log/slog"

	"github.com/pixeldock/pixelctl/internal/client/panel"
	"github.com/pixeldock/pixelctl/internal/config"
	"github.com/pixeldock/pixelctl/internal/session"
)

type Deps struct {
	Ctx     context.Context
	Cancel  context.CancelFunc
	Logger  *slog.Logger
	Config  config.Config
	Session *session.Store
	Panel   *panel.Client
}
