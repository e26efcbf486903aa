package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/hyprsettings/internal/constants"
	"gopkg.in/yaml.v3"
)

const defaultConfigHeader = `# hyprsettings configuration
# Leave config_dir empty to edit $XDG_CONFIG_HOME/hypr.
`

// DefaultConfig returns the default hyprsettings configuration
func DefaultConfig() *Config {
	return &Config{
		Backup:  true,
		History: true,
		Reload: ReloadConfig{
			Command: constants.ReloadCommand,
			Args:    []string{constants.ReloadSubcommand},
			Timeout: constants.ReloadTimeout,
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// DefaultConfigYAML returns the default configuration as YAML bytes
func DefaultConfigYAML() ([]byte, error) {
	config := DefaultConfig()
	data, err := yaml.Marshal(config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal default config to YAML: %w", err)
	}
	return append([]byte(defaultConfigHeader), data...), nil
}

// ErrConfigExists is returned by WriteDefault when the file is already present.
var ErrConfigExists = errors.New("config file already exists")

// WriteDefault writes the default configuration to path, creating its directory.
// An existing file is only replaced when force is set.
func WriteDefault(fs afero.Fs, path string, force bool) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to check config %s: %w", path, err)
	}
	if exists && !force {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	data, err := DefaultConfigYAML()
	if err != nil {
		return err
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(fs, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
