package app

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wizzomafizzo/hyprsettings/internal/config"
	"github.com/wizzomafizzo/hyprsettings/internal/constants"
	"github.com/wizzomafizzo/hyprsettings/internal/history"
	"github.com/wizzomafizzo/hyprsettings/internal/reload"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
	"github.com/wizzomafizzo/hyprsettings/internal/testutil"
)

type fakeReloader struct {
	result    reload.Result
	calls     int
	available bool
}

func (f *fakeReloader) Reload(_ context.Context) reload.Result {
	f.calls++
	return f.result
}

func (*fakeReloader) Command() string { return "hyprctl reload" }

func (f *fakeReloader) Available() bool { return f.available }

type testApp struct {
	app      *App
	fs       afero.Fs
	reloader *fakeReloader
	history  *history.Manager
}

func newTestApp(t *testing.T, mutate func(*config.Config)) testApp {
	t.Helper()

	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(cfg)
	}

	manager, err := history.NewManager(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	fs := testutil.NewConfigFs(t)
	reloader := &fakeReloader{result: reload.Result{Outcome: reload.OutcomeSuccess}, available: true}
	return testApp{
		app: New(AppOptions{
			Fs:        fs,
			Config:    cfg,
			Reloader:  reloader,
			History:   manager,
			ConfigDir: testutil.ConfigRoot,
		}),
		fs:       fs,
		reloader: reloader,
		history:  manager,
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	a := New(AppOptions{Fs: afero.NewMemMapFs()})

	assert.Equal(t, config.DefaultConfig().Dir(), a.ConfigDir())
	assert.Equal(t, "hyprctl reload", a.reloader.Command())
	_, err := a.History(context.Background(), 5)
	require.ErrorIs(t, err, ErrHistoryDisabled)
}

func TestReadDomain(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	ta := newTestApp(t, nil)

	got := ta.app.ReadDomain(ctx, "General")
	assert.Equal(t, schema.Map{
		schema.GapsIn:     schema.Int(5),
		schema.GapsOut:    schema.Int(10),
		schema.BorderSize: schema.Int(2),
	}, got)

	assert.Empty(t, ta.app.ReadDomain(ctx, "window_rules"))
}

func TestWriteDomain(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	ta := newTestApp(t, nil)

	ok := ta.app.WriteDomain(ctx, "decoration", schema.Map{schema.BlurSize: schema.Int(12)})

	require.True(t, ok)
	assert.Contains(t, testutil.ReadConfig(t, ta.fs, constants.LookAndFeelFilename), "size = 12")
	assert.Equal(t, 1, ta.reloader.calls)

	entries, err := ta.app.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "decoration", entries[0].Domain)
	assert.Equal(t, []string{"blur_size"}, entries[0].Keys)
	assert.True(t, entries[0].Success)
	assert.True(t, entries[0].Changed)
	assert.Equal(t, "success", entries[0].Reload)
}

func TestWriteDomainFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		domain string
		delta  schema.Map
	}{
		{name: "unknown domain", domain: "windows", delta: schema.Map{schema.GapsIn: schema.Int(3)}},
		{name: "invalid value", domain: "general", delta: schema.Map{schema.GapsIn: schema.Int(300)}},
		{name: "key from another domain", domain: "input", delta: schema.Map{schema.GapsIn: schema.Int(3)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, logs := testutil.NewTestContext(t)
			ta := newTestApp(t, nil)

			assert.False(t, ta.app.WriteDomain(ctx, tt.domain, tt.delta))
			assert.Zero(t, ta.reloader.calls)
			assert.NotEmpty(t, logs())
		})
	}
}

func TestWriteDomainReloadFailureStillSucceeds(t *testing.T) {
	t.Parallel()

	ctx, logs := testutil.NewTestContext(t)
	ta := newTestApp(t, nil)
	ta.reloader.result = reload.Result{Outcome: reload.OutcomeUnavailable}

	assert.True(t, ta.app.WriteDomain(ctx, "general", schema.Map{schema.GapsOut: schema.Int(20)}))
	assert.Contains(t, logs(), "unavailable")
}

func TestWriteDomainWithoutAutomaticReload(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	ta := newTestApp(t, func(c *config.Config) { c.Reload.Enabled = false })

	result, err := ta.app.WriteDomainResult(ctx, "general", schema.Map{schema.GapsOut: schema.Int(20)})

	require.NoError(t, err)
	assert.False(t, result.Reload.Attempted())
	assert.Zero(t, ta.reloader.calls)
}

func TestWriteDomainRecordsFailures(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	ta := newTestApp(t, nil)
	require.NoError(t, ta.fs.Remove(testutil.ConfigRoot+"/"+constants.InputFilename))

	assert.False(t, ta.app.WriteDomain(ctx, "input", schema.Map{schema.RepeatRate: schema.Int(50)}))

	entries, err := ta.history.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.False(t, entries[0].Success)
	assert.Contains(t, entries[0].Error, "configuration file not found")
}

func TestApply(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	ta := newTestApp(t, nil)

	summary := ta.app.Apply(ctx, map[schema.Domain]schema.Map{
		schema.General:    {schema.GapsIn: schema.Int(8)},
		schema.Input:      {schema.Sensitivity: schema.Float(-0.25)},
		schema.Animations: {},
	})

	assert.True(t, summary.OK())
	assert.Equal(t, []schema.Domain{schema.Input, schema.General}, summary.Succeeded)
	assert.Equal(t, "All settings applied successfully!", summary.Message())
	assert.Equal(t, 2, ta.reloader.calls)
}

func TestApplyPartialFailure(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	ta := newTestApp(t, nil)
	require.NoError(t, ta.fs.Remove(testutil.ConfigRoot+"/"+constants.InputFilename))

	summary := ta.app.Apply(ctx, map[schema.Domain]schema.Map{
		schema.Input:      {schema.RepeatRate: schema.Int(50)},
		schema.Decoration: {schema.Rounding: schema.Int(10)},
		schema.General:    {schema.GapsIn: schema.Int(99)},
	})

	assert.False(t, summary.OK())
	assert.Equal(t, []schema.Domain{schema.Decoration}, summary.Succeeded)
	assert.Equal(t, []schema.Domain{schema.Input, schema.General}, summary.Failed)
	assert.Equal(t, "Applied 1 settings groups, failed: Input settings, General settings", summary.Message())
}

func TestRestore(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	ta := newTestApp(t, nil)
	original := testutil.ReadConfig(t, ta.fs, constants.LookAndFeelFilename)

	require.Error(t, ta.app.Restore(ctx, "general"), "no backup yet")

	require.True(t, ta.app.WriteDomain(ctx, "general", schema.Map{schema.GapsIn: schema.Int(9)}))
	require.NoError(t, ta.app.Restore(ctx, "general"))

	assert.Equal(t, original, testutil.ReadConfig(t, ta.fs, constants.LookAndFeelFilename))
	assert.Equal(t, 2, ta.reloader.calls)
	require.Error(t, ta.app.Restore(ctx, "nope"))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	ctx, _ := testutil.NewTestContext(t)
	ta := newTestApp(t, nil)
	require.True(t, ta.app.WriteDomain(ctx, "input", schema.Map{schema.RepeatRate: schema.Int(55)}))

	status := ta.app.Status()

	assert.Equal(t, testutil.ConfigRoot, status.ConfigDir)
	require.Len(t, status.Files, 2)
	assert.Equal(t, []schema.Domain{schema.Input}, status.Files[0].Domains)
	assert.True(t, status.Files[0].HasBackup)
	assert.Equal(t, []schema.Domain{schema.Decoration, schema.General, schema.Animations}, status.Files[1].Domains)
	assert.True(t, status.Files[1].Exists)
	assert.False(t, status.Files[1].HasBackup)
	assert.True(t, status.ReloadAvailable)
	assert.True(t, status.History)

	text := status.String()
	assert.Contains(t, text, "looknfeel.conf (decoration, general, animations): present, backup no")
	assert.Contains(t, text, "Reload command: hyprctl reload (available, automatic)")
}
