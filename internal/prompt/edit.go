package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// maxAttempts bounds how often a rejected value is asked for again.
const maxAttempts = 3

// EditSettings walks through every setting of a domain, offering the current value
// for editing. It returns only the values that changed.
func EditSettings(prompter Prompter, out io.Writer, d schema.Domain, current schema.Map) (schema.Map, error) {
	values := current.WithDefaults(d)
	delta := schema.Map{}

	_, _ = fmt.Fprintln(out, color.New(color.Bold).Sprint(d.Label()))

	for _, setting := range schema.Settings(d) {
		describe(out, setting, values[setting.Key])
		SetCompletions(prompter, completions(setting))

		value, err := editSetting(prompter, out, setting, values[setting.Key])
		if err != nil {
			return nil, err
		}
		// File floats may carry more decimals than the key keeps.
		if !value.Equal(values[setting.Key].Round(setting.Precision)) {
			delta[setting.Key] = value
		}
	}

	SetCompletions(prompter, nil)
	return delta, nil
}

func editSetting(prompter Prompter, out io.Writer, s schema.Setting, current schema.Value) (schema.Value, error) {
	for range maxAttempts {
		text, err := EditInputWithPrompter(prompter, s.Key.String(), current.String())
		if err != nil {
			return schema.Value{}, err
		}

		value, err := s.Parse(text)
		if err == nil {
			err = s.Check(value)
		}
		if err == nil {
			return value, nil
		}
		_, _ = fmt.Fprintln(out, color.RedString("  %v", err))
	}

	_, _ = fmt.Fprintln(out, color.YellowString("  keeping %s", current))
	return current, nil
}

func describe(out io.Writer, s schema.Setting, current schema.Value) {
	_, _ = fmt.Fprintf(out, "\n%s: %s\n", color.New(color.Bold).Sprint(s.Title), s.Description)
	if s.HasRange() {
		_, _ = fmt.Fprintf(out, "  range %g to %g\n", s.Min, s.Max)
	}

	var summary string
	switch s.Key {
	case schema.KbLayout:
		summary = schema.DescribeLayouts(current.AsString())
	case schema.KbOptions:
		summary = schema.DescribeSwitchMethod(current.AsString())
	}
	if summary != "" {
		_, _ = fmt.Fprintf(out, "  currently %s\n", summary)
	}
}

func completions(s schema.Setting) []string {
	switch {
	case s.Kind == schema.KindBool:
		return []string{"true", "false"}
	case s.Key == schema.KbOptions:
		methods := schema.SwitchMethods()
		out := make([]string, 0, len(methods))
		for _, m := range methods {
			out = append(out, m.Option)
		}
		return out
	case s.Key == schema.KbLayout:
		layouts := schema.Layouts()
		out := make([]string, 0, len(layouts))
		for _, l := range layouts {
			out = append(out, l.Code)
		}
		return out
	default:
		return nil
	}
}

// IsCancelled reports whether err came from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
