package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// createLayoutsCommand creates the layouts command.
func createLayoutsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "layouts",
		Short: "List keyboard layouts and layout switch methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			_, _ = fmt.Fprintf(w, "Keyboard layouts (kb_layout, up to %d):\n", schema.MaxLayouts)
			for _, l := range schema.Layouts() {
				_, _ = fmt.Fprintf(w, "  %s\t%s\n", l.Code, l.Name)
			}
			_, _ = fmt.Fprintln(w, "\nSwitch methods (kb_options):")
			for _, m := range schema.SwitchMethods() {
				_, _ = fmt.Fprintf(w, "  %s\t%s\n", m.Option, m.Label)
			}

			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to print layouts: %w", err)
			}
			return nil
		},
	}
}
