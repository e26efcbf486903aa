package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hyprsettings/internal/app"
)

// createApplyCommand creates the apply command.
func createApplyCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "apply <changes.yml>",
		Short: "Apply a file of changes to several domains at once",
		Long: `Apply a YAML file of changes grouped by domain, for example:

  decoration:
    blur_size: 12
  input:
    sensitivity: -0.25

Domains are written in the order input, decoration, general, animations.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := afero.ReadFile(env.fs, args[0])
			if err != nil {
				return fmt.Errorf("failed to read changes: %w", err)
			}
			changes, err := app.ParseChanges(data)
			if err != nil {
				return err //nolint:wrapcheck // validation errors name their keys
			}

			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}
			defer s.Close()

			summary := s.app.Apply(s.ctx, changes)
			if !summary.OK() {
				return errors.New(summary.Message())
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), color.GreenString(summary.Message()))
			return nil
		},
	}
}
