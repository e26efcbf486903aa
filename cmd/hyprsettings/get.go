package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// createGetCommand creates the get command.
func createGetCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "get [domain...]",
		Short: "Show current settings",
		Long: "Show the current settings of the given domains (decoration, general, input, animations), " +
			"or of all domains. Values not set in the files are marked as defaults.",
		RunE: func(cmd *cobra.Command, args []string) error {
			domains, err := parseDomains(args)
			if err != nil {
				return err
			}

			s, err := openSession(cmd, env)
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			for i, d := range domains {
				if i > 0 {
					_, _ = fmt.Fprintln(out)
				}
				printSettings(out, d, s.app.ReadDomain(s.ctx, d.String()))
			}
			return nil
		},
	}
}

func parseDomains(args []string) ([]schema.Domain, error) {
	if len(args) == 0 {
		return schema.Domains(), nil
	}
	domains := make([]schema.Domain, 0, len(args))
	for _, arg := range args {
		d, err := schema.ParseDomain(arg)
		if err != nil {
			return nil, err //nolint:wrapcheck // already names the domain
		}
		domains = append(domains, d)
	}
	return domains, nil
}

func printSettings(out io.Writer, d schema.Domain, found schema.Map) {
	_, _ = fmt.Fprintln(out, color.New(color.Bold).Sprintf("[%s]", d))
	for _, setting := range schema.Settings(d) {
		value, ok := found[setting.Key]
		if !ok {
			_, _ = fmt.Fprintf(out, "%s = %s %s\n", setting.Key, setting.Default, color.HiBlackString("(default)"))
			continue
		}
		_, _ = fmt.Fprintf(out, "%s = %s\n", setting.Key, value)
	}
}
