package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createStatusCommand creates the status command.
func createStatusCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show configuration files, backups and reload command",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}
			defer s.Close()

			_, err = fmt.Fprint(cmd.OutOrStdout(), s.app.Status())
			if err != nil {
				return fmt.Errorf("failed to print status: %w", err)
			}
			return nil
		},
	}
}
