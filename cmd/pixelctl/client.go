package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pixeldock/pixelctl/internal/client/panel"
	"github.com/pixeldock/pixelctl/internal/config"
	"github.com/pixeldock/pixelctl/internal/paths"
	"github.com/pixeldock/pixelctl/internal/session"
	"github.com/pixeldock/pixelctl/internal/xslog"
)

type app struct {
	cfg     config.Config
	logger  *slog.Logger
	session *session.Store
	client  *panel.Client

	closers []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// newApp wires the shared pieces every subcommand needs: config, the local
// session store and the panel client. logToFile keeps slog output away from
// the terminal while the TUI owns it.
func newApp(ctx context.Context, logToFile bool) (*app, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dir, err := paths.EnsureDir()
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg}

	var logOut io.Writer = os.Stderr
	if logToFile {
		logFile, err := os.OpenFile(filepath.Join(dir, "pixelctl.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			logOut = io.Discard
		} else {
			logOut = logFile
			a.closers = append(a.closers, func() { _ = logFile.Close() })
		}
	}
	a.logger = xslog.NewLoggerFromEnv(logOut)

	dbPath, err := paths.DB()
	if err != nil {
		a.Close()
		return nil, err
	}

	store, err := session.Open(ctx, dbPath)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	a.session = store
	a.closers = append(a.closers, func() { _ = store.Close() })

	a.client = panel.New(cfg.PanelURL, store,
		panel.WithLogger(a.logger),
		panel.WithTimeout(cfg.RequestTimeout),
	)

	return a, nil
}
