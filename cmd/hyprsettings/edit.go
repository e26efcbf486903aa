package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hyprsettings/internal/prompt"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// createEditCommand creates the edit command.
func createEditCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <domain>",
		Short: "Edit a domain's settings interactively",
		Long: "Walk through every setting of a domain with the current value pre-filled. " +
			"Press Enter to keep a value, Tab to complete, Ctrl+C to cancel.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := schema.ParseDomain(args[0])
			if err != nil {
				return err //nolint:wrapcheck // already names the domain
			}

			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}
			defer s.Close()

			prompter := env.newPrompter()
			defer func() { _ = prompter.Close() }()

			out := cmd.OutOrStdout()
			delta, err := prompt.EditSettings(prompter, out, d, s.app.ReadDomain(s.ctx, d.String()))
			if err != nil {
				if errors.Is(err, prompt.ErrCancelled) {
					_, _ = fmt.Fprintln(out, "Cancelled, nothing written")
					return nil
				}
				return fmt.Errorf("failed to edit settings: %w", err)
			}
			if len(delta) == 0 {
				_, _ = fmt.Fprintln(out, "No changes")
				return nil
			}

			ok, err := prompt.ConfirmWithPrompter(prompter, fmt.Sprintf("Write %d changes to %s?", len(delta), d.File()))
			if err != nil && !errors.Is(err, prompt.ErrCancelled) {
				return fmt.Errorf("failed to confirm: %w", err)
			}
			if !ok {
				_, _ = fmt.Fprintln(out, "Nothing written")
				return nil
			}

			result, err := s.app.WriteDomainResult(s.ctx, d.String(), delta)
			if err != nil {
				return err //nolint:wrapcheck // already names the domain
			}
			printWriteResult(out, result)
			return nil
		},
	}
}
