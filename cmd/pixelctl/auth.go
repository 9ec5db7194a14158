package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Sign in to the panel",
		Long:  "Exchanges credentials for a bearer token and stores it locally.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			token, err := a.client.Auth.Login(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := a.session.SetToken(ctx, token); err != nil {
				return fmt.Errorf("storing token: %w", err)
			}

			fmt.Printf("Signed in to %s\n", a.cfg.PanelURL)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.session.Clear(ctx); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}

			fmt.Println("Signed out")
			return nil
		},
	}
}
