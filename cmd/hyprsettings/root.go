package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/hyprsettings/internal/app"
	"github.com/wizzomafizzo/hyprsettings/internal/config"
	"github.com/wizzomafizzo/hyprsettings/internal/history"
	"github.com/wizzomafizzo/hyprsettings/internal/logging"
	"github.com/wizzomafizzo/hyprsettings/internal/prompt"
	"github.com/wizzomafizzo/hyprsettings/internal/storage"
)

// environment holds what commands need from the outside world so tests can swap it.
type environment struct {
	fs          afero.Fs
	newPrompter func() prompt.Prompter
	// reloader replaces the configured reload command when set.
	reloader app.Reloader
	// logWriter replaces the rotated log file when set.
	logWriter io.Writer
	// historyDSN replaces the history database path when set.
	historyDSN string
}

func defaultEnvironment() *environment {
	return &environment{
		fs:          afero.NewOsFs(),
		newPrompter: func() prompt.Prompter { return prompt.NewLinerPrompter() },
	}
}

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	return newRootCommand(defaultEnvironment())
}

func newRootCommand(env *environment) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hyprsettings",
		Short: "Read and edit Hyprland look, feel and input settings",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", storage.AppConfigPath(), "Path to config file")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Hyprland config directory (default from config file)")

	rootCmd.AddCommand(
		createGetCommand(env),
		createSetCommand(env),
		createEditCommand(env),
		createApplyCommand(env),
		createReloadCommand(env),
		createRestoreCommand(env),
		createHistoryCommand(env),
		createStatusCommand(env),
		createInitCommand(env),
		createLayoutsCommand(),
	)

	return rootCmd
}

// session is a loaded configuration with a logger and an App built from it.
type session struct {
	ctx     context.Context
	app     *app.App
	history *history.Manager
}

// Close releases the history database.
func (s *session) Close() {
	if s.history != nil {
		_ = s.history.Close() // Best effort cleanup - errors during cleanup are not actionable
	}
}

// openSession loads the config named by the flags and builds the App.
func openSession(cmd *cobra.Command, env *environment) (*session, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get dir flag: %w", err)
	}

	cfg, err := config.Load(env.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dir == "" {
		dir = cfg.Dir()
	}
	opts := app.AppOptions{Fs: env.fs, Config: cfg, Reloader: env.reloader, ConfigDir: dir}

	ctx, err := logging.New(cmd.Context(), env.fs, logging.Config{
		Writer:     env.logWriter,
		ConfigDir:  dir,
		Level:      logging.ParseLevel(cfg.Logging.Level),
		MaxSizeMB:  cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s := &session{ctx: ctx}
	if cfg.History {
		s.history = openHistory(ctx, env)
		opts.History = s.history
	}
	s.app = app.New(opts)
	return s, nil
}

// openHistory opens the history database. History is optional, so failures are
// logged and the session continues without it.
func openHistory(ctx context.Context, env *environment) *history.Manager {
	logger := logging.Get(ctx)

	dsn := env.historyDSN
	if dsn == "" {
		path, err := storage.New(env.fs).GetDatabasePath()
		if err != nil {
			logger.Warn().Err(err).Msg("History disabled")
			return nil
		}
		dsn = path
	}

	manager, err := history.NewManager(ctx, dsn)
	if err != nil {
		logger.Warn().Err(err).Str("dsn", dsn).Msg("History disabled")
		return nil
	}
	return manager
}
