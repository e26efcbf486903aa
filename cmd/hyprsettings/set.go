package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hyprsettings/internal/app"
	"github.com/wizzomafizzo/hyprsettings/internal/hyprconf"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// createSetCommand creates the set command.
func createSetCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "set <domain> key=value...",
		Short: "Change settings in place",
		Long: "Change one or more settings of a domain. Only the values are rewritten; " +
			"everything else in the file is left as it is.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := schema.ParseDomain(args[0])
			if err != nil {
				return err //nolint:wrapcheck // already names the domain
			}
			delta, err := app.ParseAssignments(d, args[1:])
			if err != nil {
				return err //nolint:wrapcheck // validation errors name their keys
			}

			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}
			defer s.Close()

			result, err := s.app.WriteDomainResult(s.ctx, d.String(), delta)
			if err != nil {
				return err //nolint:wrapcheck // already names the domain
			}
			printWriteResult(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func printWriteResult(out io.Writer, result *hyprconf.Result) {
	if len(result.Applied) > 0 {
		_, _ = fmt.Fprintf(out, "Updated %s\n", joinKeys(result.Applied))
	}
	if len(result.Inserted) > 0 {
		_, _ = fmt.Fprintf(out, "Added %s\n", joinKeys(result.Inserted))
	}
	if len(result.Skipped) > 0 {
		_, _ = fmt.Fprintln(out, color.YellowString("Not in %s, skipped: %s", result.Path, joinKeys(result.Skipped)))
	}
	if !result.Changed {
		_, _ = fmt.Fprintln(out, "File unchanged")
	}
	printReload(out, result.Reload.Attempted(), result.Reload.OK(), result.Reload.Message())
}

func printReload(out io.Writer, attempted, ok bool, message string) {
	switch {
	case !attempted:
		return
	case ok:
		_, _ = fmt.Fprintln(out, color.GreenString(message))
	default:
		_, _ = fmt.Fprintln(out, color.YellowString(message))
	}
}

func joinKeys(keys []schema.Key) string {
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
