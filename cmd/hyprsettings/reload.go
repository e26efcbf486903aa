package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// createReloadCommand creates the reload command.
func createReloadCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Ask Hyprland to reload its configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}
			defer s.Close()

			result := s.app.Reload(s.ctx)
			if !result.OK() {
				return errors.New(result.Message())
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), result.Message())
			return nil
		},
	}
}
