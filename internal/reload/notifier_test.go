package reload

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// writeScript creates an executable shell script in a temp dir and returns its path.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake-hyprctl")
	err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700) //nolint:gosec // test script must be executable
	require.NoError(t, err)
	return path
}

func TestNewNotifierDefaults(t *testing.T) {
	t.Parallel()

	n := NewNotifier("", nil, 0)

	assert.Equal(t, "hyprctl reload", n.Command())
	assert.Equal(t, 5*time.Second, n.timeout)
}

func TestReloadOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		timeout  time.Duration
		want     Outcome
		wantExit int
		wantErr  string
	}{
		{name: "success", body: "exit 0", timeout: 5 * time.Second, want: OutcomeSuccess},
		{
			name: "non-zero exit", body: "echo 'config error' >&2\nexit 3", timeout: 5 * time.Second,
			want: OutcomeFailed, wantExit: 3, wantErr: "reload command failed",
		},
		{name: "timeout", body: "exec sleep 5", timeout: 100 * time.Millisecond, want: OutcomeTimeout, wantErr: "timed out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			n := NewNotifier(writeScript(t, tt.body), nil, tt.timeout)
			result := n.Reload(context.Background())

			assert.Equal(t, tt.want, result.Outcome)
			assert.Equal(t, tt.wantExit, result.ExitCode)
			assert.True(t, result.Attempted())
			if tt.wantErr == "" {
				require.NoError(t, result.Err)
				assert.True(t, result.OK())
				return
			}
			require.Error(t, result.Err)
			assert.Contains(t, result.Err.Error(), tt.wantErr)
			assert.False(t, result.OK())
		})
	}
}

func TestReloadCapturesStderr(t *testing.T) {
	t.Parallel()

	n := NewNotifier(writeScript(t, "echo 'bad line 4' >&2\nexit 1"), nil, time.Second)
	result := n.Reload(context.Background())

	assert.Equal(t, OutcomeFailed, result.Outcome)
	assert.Contains(t, result.Stderr, "bad line 4")
	assert.Equal(t, "Reload warning: exit status 1: bad line 4", result.Message())
}

func TestReloadCommandNotFound(t *testing.T) {
	t.Parallel()

	n := NewNotifier(filepath.Join(t.TempDir(), "no-such-hyprctl"), []string{"reload"}, time.Second)

	assert.False(t, n.Available())

	result := n.Reload(context.Background())
	assert.Equal(t, OutcomeUnavailable, result.Outcome)
	assert.True(t, IsCommandNotFoundError(result.Err))
	assert.Contains(t, result.Message(), "not found")
}

func TestReloadPassesArguments(t *testing.T) {
	t.Parallel()

	n := NewNotifier(writeScript(t, `[ "$1" = "reload" ] || exit 9`), []string{"reload"}, time.Second)

	assert.True(t, n.Available())
	assert.Equal(t, OutcomeSuccess, n.Reload(context.Background()).Outcome)
}

func TestResultMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Reload skipped", Result{}.Message())
	assert.False(t, Result{}.Attempted())
	assert.Equal(t, "Hyprland reloaded successfully", Result{Outcome: OutcomeSuccess}.Message())
	assert.Equal(t, "Reload timed out - changes saved", Result{Outcome: OutcomeTimeout}.Message())
}
