package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/pixeldock/pixelctl/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	a, err := newApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	deps := tui.Deps{
		Ctx:     ctx,
		Cancel:  cancel,
		Logger:  a.logger,
		Config:  a.cfg,
		Session: a.session,
		Panel:   a.client,
	}
	model := tui.New(deps)

	p := tea.NewProgram(&model)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
