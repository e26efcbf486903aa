// Package app ties the settings engine, reload notifier and history together behind
// the operations the command line uses.
package app

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/config"
	"github.com/wizzomafizzo/hyprsettings/internal/history"
	"github.com/wizzomafizzo/hyprsettings/internal/hyprconf"
	"github.com/wizzomafizzo/hyprsettings/internal/reload"
)

// ErrHistoryDisabled is returned by History when no history store is attached.
var ErrHistoryDisabled = errors.New("history is disabled")

// Reloader triggers a window manager reload.
type Reloader interface {
	hyprconf.Notifier
	Command() string
	Available() bool
}

// AppOptions contains configuration options for creating an App
type AppOptions struct {
	// Fs defaults to the OS filesystem.
	Fs     afero.Fs
	Config *config.Config
	// Reloader overrides the notifier built from Config.Reload.
	Reloader Reloader
	// History is optional; without it writes are not recorded.
	History *history.Manager
	// ConfigDir overrides Config.Dir().
	ConfigDir string
}

type App struct {
	fs        afero.Fs
	cfg       *config.Config
	reader    *hyprconf.Reader
	writer    *hyprconf.Writer
	reloader  Reloader
	history   *history.Manager
	configDir string
}

// New creates an App. Missing options fall back to the OS filesystem and the
// default configuration.
func New(opts AppOptions) *App {
	fs := opts.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	configDir := opts.ConfigDir
	if configDir == "" {
		configDir = cfg.Dir()
	}
	reloader := opts.Reloader
	if reloader == nil {
		reloader = reload.NewNotifier(cfg.Reload.Command, cfg.Reload.Args, cfg.Reload.Timeout)
	}

	writerOpts := hyprconf.WriterOptions{Backup: cfg.Backup}
	if cfg.Reload.Enabled {
		writerOpts.Notifier = reloader
	}

	return &App{
		fs:        fs,
		cfg:       cfg,
		reader:    hyprconf.NewReader(fs, configDir),
		writer:    hyprconf.NewWriter(fs, configDir, writerOpts),
		reloader:  reloader,
		history:   opts.History,
		configDir: configDir,
	}
}

// ConfigDir returns the directory holding the edited configuration files.
func (a *App) ConfigDir() string {
	return a.configDir
}

func (a *App) path(file string) string {
	return filepath.Join(a.configDir, file)
}

// Reload asks the window manager to reload now, whether or not automatic reloads
// are enabled.
func (a *App) Reload(ctx context.Context) reload.Result {
	return a.reloader.Reload(ctx)
}

// History lists the most recent writes, newest first.
func (a *App) History(ctx context.Context, limit int) ([]history.Entry, error) {
	if a.history == nil {
		return nil, ErrHistoryDisabled
	}
	return a.history.Recent(ctx, limit) //nolint:wrapcheck // history errors carry their own context
}
