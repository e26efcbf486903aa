package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
)

// ErrCancelled is returned when the user aborts a prompt with Ctrl+C or Ctrl+D.
var ErrCancelled = errors.New("cancelled by user")

// Prompter interface wraps basic prompting functionality for testability
type Prompter interface {
	Prompt(string) (string, error)
	Close() error
}

// suggester is implemented by prompters that can pre-fill the edit line.
type suggester interface {
	PromptWithSuggestion(prompt, text string, pos int) (string, error)
}

// LinerPrompter wraps liner.State to implement Prompter interface
type LinerPrompter struct {
	*liner.State
}

// NewLinerPrompter creates a new liner-based prompter
func NewLinerPrompter() *LinerPrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	return &LinerPrompter{State: line}
}

// TextInputWithPrompter asks for one line of text.
func TextInputWithPrompter(prompter Prompter, prompt string) (string, error) {
	result, err := prompter.Prompt(color.CyanString(prompt + " "))
	if err != nil {
		return "", wrapPromptError("text input", err)
	}
	return result, nil
}

// EditInputWithPrompter asks for one line of text, pre-filled with current when the
// prompter supports it. Otherwise the current value is shown in brackets and an
// empty answer keeps it.
func EditInputWithPrompter(prompter Prompter, prompt, current string) (string, error) {
	if s, ok := prompter.(suggester); ok {
		result, err := s.PromptWithSuggestion(color.CyanString(prompt+" "), current, -1)
		if err != nil {
			return "", wrapPromptError("edit input", err)
		}
		return orCurrent(result, current), nil
	}

	result, err := prompter.Prompt(color.CyanString(fmt.Sprintf("%s [%s] ", prompt, current)))
	if err != nil {
		return "", wrapPromptError("edit input", err)
	}
	return orCurrent(result, current), nil
}

// ConfirmWithPrompter asks a yes/no question. Anything but y or yes is no.
func ConfirmWithPrompter(prompter Prompter, question string) (bool, error) {
	result, err := prompter.Prompt(color.YellowString(question + " [y/N] "))
	if err != nil {
		return false, wrapPromptError("confirm", err)
	}
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// SetCompletions installs tab completion candidates on liner prompters. Only the
// text after the last comma is completed, so lists can be built one item at a time.
// Other prompters are left alone.
func SetCompletions(prompter Prompter, candidates []string) {
	linerPrompter, ok := prompter.(*LinerPrompter)
	if !ok {
		return
	}
	if len(candidates) == 0 {
		linerPrompter.SetCompleter(nil)
		return
	}
	linerPrompter.SetCompleter(func(line string) []string {
		return complete(candidates, line)
	})
}

func complete(candidates []string, line string) []string {
	head, tail := "", line
	if i := strings.LastIndexByte(line, ','); i >= 0 {
		head, tail = line[:i+1], line[i+1:]
	}

	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, tail) {
			matches = append(matches, head+c)
		}
	}
	return matches
}

func orCurrent(result, current string) string {
	if strings.TrimSpace(result) == "" {
		return current
	}
	return strings.TrimSpace(result)
}

func wrapPromptError(what string, err error) error {
	if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
		return ErrCancelled
	}
	return fmt.Errorf("%s failed: %w", what, err)
}
