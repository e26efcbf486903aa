// Package reload asks the running compositor to re-read its configuration.
package reload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/wizzomafizzo/hyprsettings/internal/constants"
	"github.com/wizzomafizzo/hyprsettings/internal/logging"
)

// Outcome classifies a reload attempt. The zero value means no reload was attempted.
type Outcome string

const (
	OutcomeSuccess     Outcome = "success"
	OutcomeFailed      Outcome = "failed"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeTimeout     Outcome = "timeout"
)

// waitDelay bounds how long Wait blocks on output pipes after the process is killed.
const waitDelay = 500 * time.Millisecond

// Result describes a reload attempt. Reload never returns an error; failures are
// reported here instead.
type Result struct {
	Err      error
	Outcome  Outcome
	Stderr   string
	ExitCode int
	Duration time.Duration
}

// Attempted reports whether a reload was run at all.
func (r Result) Attempted() bool {
	return r.Outcome != ""
}

// OK reports whether the compositor accepted the reload.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// Message is a one line description suitable for a notification.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeSuccess:
		return "Hyprland reloaded successfully"
	case OutcomeFailed:
		msg := fmt.Sprintf("Reload warning: exit status %d", r.ExitCode)
		if stderr := firstLine(r.Stderr); stderr != "" {
			msg += ": " + stderr
		}
		return msg
	case OutcomeUnavailable:
		return "Reload command not found - changes saved but not applied"
	case OutcomeTimeout:
		return "Reload timed out - changes saved"
	default:
		return "Reload skipped"
	}
}

// Notifier runs the reload command with a hard timeout.
type Notifier struct {
	command string
	args    []string
	timeout time.Duration
}

// NewNotifier creates a notifier. An empty command falls back to hyprctl reload and a
// non-positive timeout to the default.
func NewNotifier(command string, args []string, timeout time.Duration) *Notifier {
	if command == "" {
		command = constants.ReloadCommand
		args = []string{constants.ReloadSubcommand}
	}
	if timeout <= 0 {
		timeout = constants.ReloadTimeout
	}
	return &Notifier{command: command, args: args, timeout: timeout}
}

// Command returns the command line that Reload runs.
func (n *Notifier) Command() string {
	return strings.TrimSpace(n.command + " " + strings.Join(n.args, " "))
}

// Available reports whether the reload command can be found.
func (n *Notifier) Available() bool {
	_, err := exec.LookPath(n.command)
	return err == nil
}

// Reload runs the command once. There is no retry.
func (n *Notifier) Reload(ctx context.Context) Result {
	logger := logging.Get(ctx)

	path, err := exec.LookPath(n.command)
	if err != nil {
		logger.Warn().Str("command", n.command).Err(err).Msg("Reload command not found")
		return Result{Outcome: OutcomeUnavailable, Err: &CommandNotFoundError{Command: n.command, Err: err}}
	}

	ctx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	// #nosec G204 -- command comes from the user's own config
	cmd := exec.CommandContext(ctx, path, n.args...)
	cmd.WaitDelay = waitDelay
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	logger.Debug().Str("command", path).Strs("args", n.args).Msg("Running reload command")

	start := time.Now()
	err = cmd.Run()
	result := Result{Duration: time.Since(start), Stderr: stderr.String()}

	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.Outcome = OutcomeTimeout
		result.Err = fmt.Errorf("reload timed out after %s: %w", n.timeout, ctx.Err())
	case err == nil:
		result.Outcome = OutcomeSuccess
	default:
		result.Outcome = OutcomeFailed
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		result.Err = fmt.Errorf("reload command failed: %w", err)
	}

	event := logger.Info()
	if !result.OK() {
		event = logger.Warn().Err(result.Err)
	}
	event.Str("outcome", string(result.Outcome)).
		Int("exit_code", result.ExitCode).
		Dur("duration", result.Duration).
		Msg("Reload finished")

	return result
}

// CommandNotFoundError is reported when the reload command is not installed.
type CommandNotFoundError struct {
	Err     error
	Command string
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("reload command %q not found: %v", e.Command, e.Err)
}

func (e *CommandNotFoundError) Unwrap() error {
	return e.Err
}

// IsCommandNotFoundError returns true if the error is a CommandNotFoundError
func IsCommandNotFoundError(err error) bool {
	var notFound *CommandNotFoundError
	return errors.As(err, &notFound)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
