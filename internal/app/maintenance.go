package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/hyprconf"
	"github.com/wizzomafizzo/hyprsettings/internal/logging"
	"github.com/wizzomafizzo/hyprsettings/internal/schema"
)

// Restore replaces a domain's file with the backup taken before its last change.
// Domains that share a file share a backup. The window manager is reloaded when
// automatic reloads are enabled.
func (a *App) Restore(ctx context.Context, name string) error {
	d, err := schema.ParseDomain(name)
	if err != nil {
		return err //nolint:wrapcheck // already names the domain
	}

	path := a.path(d.File())
	if !hyprconf.HasBackup(a.fs, path) {
		return fmt.Errorf("no backup found for %s", path)
	}
	if err := hyprconf.RestoreFromBackup(a.fs, path); err != nil {
		return fmt.Errorf("failed to restore %s: %w", path, err)
	}

	logger := logging.Get(ctx)
	logger.Info().Str("path", path).Msg("Restored configuration from backup")

	if a.cfg.Reload.Enabled {
		if result := a.reloader.Reload(ctx); !result.OK() {
			logger.Warn().Str("outcome", string(result.Outcome)).Msg(result.Message())
		}
	}
	return nil
}

// FileStatus describes one configuration file.
type FileStatus struct {
	Path      string
	Domains   []schema.Domain
	Exists    bool
	HasBackup bool
}

// Status describes the environment the engine works in.
type Status struct {
	ConfigDir       string
	ReloadCommand   string
	Files           []FileStatus
	ReloadAvailable bool
	ReloadEnabled   bool
	Backup          bool
	History         bool
}

// Status inspects the configuration files and the reload command.
func (a *App) Status() Status {
	status := Status{
		ConfigDir:       a.configDir,
		ReloadCommand:   a.reloader.Command(),
		ReloadAvailable: a.reloader.Available(),
		ReloadEnabled:   a.cfg.Reload.Enabled,
		Backup:          a.cfg.Backup,
		History:         a.history != nil,
	}

	byFile := map[string]int{}
	for _, d := range schema.Domains() {
		file := d.File()
		if i, ok := byFile[file]; ok {
			status.Files[i].Domains = append(status.Files[i].Domains, d)
			continue
		}

		path := a.path(file)
		exists, err := afero.Exists(a.fs, path)
		byFile[file] = len(status.Files)
		status.Files = append(status.Files, FileStatus{
			Path:      path,
			Domains:   []schema.Domain{d},
			Exists:    err == nil && exists,
			HasBackup: hyprconf.HasBackup(a.fs, path),
		})
	}
	return status
}

// String renders the status as aligned lines.
func (s Status) String() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "Config directory: %s\n", s.ConfigDir)
	for _, f := range s.Files {
		names := make([]string, 0, len(f.Domains))
		for _, d := range f.Domains {
			names = append(names, d.String())
		}
		_, _ = fmt.Fprintf(&sb, "  %s (%s): %s, backup %s\n",
			f.Path, strings.Join(names, ", "), yesNo(f.Exists, "present", "missing"), yesNo(f.HasBackup, "yes", "no"))
	}
	_, _ = fmt.Fprintf(&sb, "Reload command: %s (%s, %s)\n", s.ReloadCommand,
		yesNo(s.ReloadAvailable, "available", "not found"), yesNo(s.ReloadEnabled, "automatic", "manual only"))
	_, _ = fmt.Fprintf(&sb, "Backups: %s\n", yesNo(s.Backup, "enabled", "disabled"))
	_, _ = fmt.Fprintf(&sb, "History: %s\n", yesNo(s.History, "enabled", "disabled"))
	return sb.String()
}

func yesNo(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
