package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Print the panel status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			status, err := a.client.Debug.Status(ctx)
			if err != nil {
				return err
			}

			d := status.Display
			fmt.Printf("running:    %v\n", d.Running)
			fmt.Printf("fps:        %.1f / %d\n", d.ActualFPS, d.TargetFPS)
			fmt.Printf("source:     %s\n", d.LastSource)
			if d.LastModule != nil {
				fmt.Printf("module:     %s\n", *d.LastModule)
			}
			if d.ManualActive {
				fmt.Println("manual:     active")
			}
			if d.DebugActive && d.DebugPattern != nil {
				fmt.Printf("pattern:    %s\n", *d.DebugPattern)
			}

			if status.Data.BTCEur != nil {
				fmt.Printf("btc/eur:    %.0f\n", *status.Data.BTCEur)
			}
			if status.Data.BlockHeight != nil {
				fmt.Printf("block:      %d\n", *status.Data.BlockHeight)
			}
			if status.Data.WeatherOutdoorTemp != nil {
				fmt.Printf("outdoor:    %.1f°C\n", *status.Data.WeatherOutdoorTemp)
			}

			return nil
		},
	}
}
