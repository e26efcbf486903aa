package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hyprsettings/internal/history"
)

// createHistoryCommand creates the history command.
func createHistoryCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent setting changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to get limit flag: %w", err)
			}

			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}
			defer s.Close()

			entries, err := s.app.History(s.ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "No changes recorded")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintln(out, formatEntry(e))
			}
			return nil
		},
	}
	cmd.Flags().IntP("limit", "n", history.DefaultLimit, "Number of entries to show")
	return cmd
}

func formatEntry(e history.Entry) string {
	status := color.GreenString("ok")
	if !e.Success {
		status = color.RedString("failed")
	}

	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "%s  %-10s %s  %s", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Domain, status, strings.Join(e.Keys, ","))
	if e.Reload != "" {
		_, _ = fmt.Fprintf(&sb, "  reload=%s", e.Reload)
	}
	if e.Error != "" {
		_, _ = fmt.Fprintf(&sb, "  %s", e.Error)
	}
	return sb.String()
}
