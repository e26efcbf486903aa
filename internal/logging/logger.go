package logging

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/storage"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
	maxLogAgeDays = 30
)

// Log levels - aliases for zerolog levels
const (
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

// Config defines the configuration for logger creation
type Config struct {
	Writer     io.Writer
	ConfigDir  string
	Level      zerolog.Level
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New creates a new context with a logger attached
// For production: provide fs, leave Writer nil for rotated file logging
// For tests: provide a custom Writer (like strings.Builder) for in-memory logging
func New(ctx context.Context, fs afero.Fs, config Config) (context.Context, error) {
	var writer io.Writer

	if config.Writer != nil {
		writer = config.Writer
	} else {
		if fs == nil {
			return nil, errors.New("filesystem required when no writer provided")
		}

		logFile, err := storage.New(fs).GetLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get log path: %w", err)
		}

		writer = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    orDefault(config.MaxSizeMB, maxLogSizeMB),
			MaxBackups: orDefault(config.MaxBackups, maxLogBackups),
			MaxAge:     orDefault(config.MaxAgeDays, maxLogAgeDays),
		}
	}

	logger := zerolog.New(writer).With().
		Timestamp().
		Str("config_dir", config.ConfigDir).
		Logger().
		Level(config.Level)

	return logger.WithContext(ctx), nil
}

// Get retrieves the logger from the provided context
// Returns the logger associated with the context, or a disabled logger if none exists
func Get(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ParseLevel converts a config level name to a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || name == "" {
		return InfoLevel
	}
	return level
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
