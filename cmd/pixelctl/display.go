package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func displayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "display",
		Short: "One-shot display controls",
	}
	cmd.AddCommand(textCmd(), brightnessCmd(), patternCmd())
	return cmd
}

func textCmd() *cobra.Command {
	var seconds int

	cmd := &cobra.Command{
		Use:   "text <message>",
		Short: "Show a text message on the panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.client.Display.ShowText(ctx, args[0], seconds); err != nil {
				return err
			}
			fmt.Printf("Showing %q for %ds\n", args[0], seconds)
			return nil
		},
	}

	cmd.Flags().IntVar(&seconds, "seconds", 5, "how long to show the message")
	return cmd
}

func brightnessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brightness <0-255>",
		Short: "Set the panel brightness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			brightness, err := strconv.Atoi(args[0])
			if err != nil || brightness < 0 || brightness > 255 {
				return fmt.Errorf("brightness must be 0-255, got %q", args[0])
			}

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.client.Display.SetBrightness(ctx, brightness); err != nil {
				return err
			}
			fmt.Printf("Brightness set to %d\n", brightness)
			return nil
		},
	}
}

func patternCmd() *cobra.Command {
	var (
		seconds    int
		intervalMS int
	)

	cmd := &cobra.Command{
		Use:   "pattern <name>|stop",
		Short: "Run or stop a diagnostic pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if args[0] == "stop" {
				if err := a.client.Debug.StopPattern(ctx); err != nil {
					return err
				}
				fmt.Println("Pattern stopped")
				return nil
			}

			if err := a.client.Debug.StartPattern(ctx, args[0], seconds, intervalMS); err != nil {
				return err
			}
			fmt.Printf("Running %s for %ds\n", args[0], seconds)
			return nil
		},
	}

	cmd.Flags().IntVar(&seconds, "seconds", 10, "how long to run the pattern")
	cmd.Flags().IntVar(&intervalMS, "interval", 120, "pattern step interval in milliseconds")
	return cmd
}
