// Package storage provides XDG-compliant path management for hyprsettings.
package storage

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/constants"
)

// Manager resolves application paths, creating directories on the given filesystem
type Manager struct {
	fs afero.Fs
}

// New creates a new storage manager with the given filesystem
func New(fs afero.Fs) *Manager {
	return &Manager{fs: fs}
}

// GetDataDir returns the XDG data directory for hyprsettings, creating it if necessary
func (m *Manager) GetDataDir() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, constants.AppName)
	if err := m.fs.MkdirAll(dataDir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
	}
	return dataDir, nil
}

// GetLogPath returns the full path to the hyprsettings log file
func (m *Manager) GetLogPath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.LogFilename), nil
}

// GetDatabasePath returns the full path to the apply history database
func (m *Manager) GetDatabasePath() (string, error) {
	dataDir, err := m.GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, constants.DatabaseFilename), nil
}

// AppConfigPath returns the default location of the hyprsettings config file.
// The directory is not created.
func AppConfigPath() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName, constants.ConfigFilename)
}

// DefaultConfigDir returns the window manager configuration directory that holds
// looknfeel.conf and input.conf.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, constants.HyprDir)
}
