package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pixeldock/pixelctl/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "pixelctl",
		Short:   "Operator console for the PixelDock LED panel",
		Version: version.Get(),
		RunE:    runTUI,
	}

	rootCmd.AddCommand(loginCmd(), logoutCmd(), statusCmd(), displayCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
