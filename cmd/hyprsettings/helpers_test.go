package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/prompt"
	"github.com/wizzomafizzo/hyprsettings/internal/reload"
	"github.com/wizzomafizzo/hyprsettings/internal/testutil"
)

const testConfigPath = "/home/test/.config/hyprsettings/config.yml"

type fakeReloader struct {
	result reload.Result
	calls  int
}

func (f *fakeReloader) Reload(_ context.Context) reload.Result {
	f.calls++
	return f.result
}

func (*fakeReloader) Command() string { return "hyprctl reload" }

func (*fakeReloader) Available() bool { return true }

type scriptedPrompter struct {
	answers []string
}

func (p *scriptedPrompter) Prompt(string) (string, error) {
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	answer := p.answers[0]
	p.answers = p.answers[1:]
	return answer, nil
}

func (*scriptedPrompter) Close() error { return nil }

type testEnvironment struct {
	*environment
	reloader *fakeReloader
}

func newTestEnvironment(t *testing.T, answers ...string) testEnvironment {
	t.Helper()

	reloader := &fakeReloader{result: reload.Result{Outcome: reload.OutcomeSuccess}}
	return testEnvironment{
		environment: &environment{
			fs:          testutil.NewConfigFs(t),
			newPrompter: func() prompt.Prompter { return &scriptedPrompter{answers: answers} },
			reloader:    reloader,
			logWriter:   io.Discard,
			historyDSN:  t.TempDir() + "/history.db",
		},
		reloader: reloader,
	}
}

func executeCommand(t *testing.T, env testEnvironment, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand(env.environment)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append([]string{"--config", testConfigPath, "--dir", testutil.ConfigRoot}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}
