package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hyprsettings/internal/config"
)

// createInitCommand creates the init command.
func createInitCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default hyprsettings config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			if err := config.WriteDefault(env.fs, configPath, force); err != nil {
				return err //nolint:wrapcheck // already names the path
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	return cmd
}
