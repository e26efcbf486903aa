package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// createRestoreCommand creates the restore command.
func createRestoreCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <domain>",
		Short: "Restore a domain's file from its backup",
		Long: "Replace the file holding a domain with the backup taken before its last change. " +
			"decoration, general and animations share looknfeel.conf and its backup.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.app.Restore(s.ctx, args[0]); err != nil {
				return err //nolint:wrapcheck // restore errors name the file
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Restored %s from backup\n", args[0])
			return nil
		},
	}
}
