package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/hyprsettings/internal/storage"
)

// EnvPrefix prefixes environment overrides, e.g. HYPRSETTINGS_RELOAD_TIMEOUT.
const EnvPrefix = "HYPRSETTINGS"

const maxReloadTimeout = time.Minute

type Config struct {
	ConfigDir string        `yaml:"config_dir" mapstructure:"config_dir"`
	Logging   LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Reload    ReloadConfig  `yaml:"reload" mapstructure:"reload"`
	Backup    bool          `yaml:"backup" mapstructure:"backup"`
	History   bool          `yaml:"history" mapstructure:"history"`
}

type ReloadConfig struct {
	Command string        `yaml:"command" mapstructure:"command"`
	Args    []string      `yaml:"args" mapstructure:"args"`
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// Load reads the config file at path on top of the defaults. A missing file is not an
// error; the defaults and environment overrides are used as they are.
func Load(fs afero.Fs, path string) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetFs(fs)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to check config %s: %w", path, err)
	}
	if exists {
		viperInstance.SetConfigFile(path)
		if err := viperInstance.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return unmarshal(viperInstance)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(viperInstance)
}

func newViper() *viper.Viper {
	v := viper.New()
	defaults := DefaultConfig()
	v.SetDefault("config_dir", defaults.ConfigDir)
	v.SetDefault("backup", defaults.Backup)
	v.SetDefault("history", defaults.History)
	v.SetDefault("reload.command", defaults.Reload.Command)
	v.SetDefault("reload.args", defaults.Reload.Args)
	v.SetDefault("reload.timeout", defaults.Reload.Timeout)
	v.SetDefault("reload.enabled", defaults.Reload.Enabled)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	v.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	v.SetDefault("logging.max_age", defaults.Logging.MaxAge)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	var errs []error

	if c.Reload.Enabled && strings.TrimSpace(c.Reload.Command) == "" {
		errs = append(errs, errors.New("reload.command is required when reload is enabled"))
	}
	if c.Reload.Timeout <= 0 || c.Reload.Timeout > maxReloadTimeout {
		errs = append(errs, fmt.Errorf("reload.timeout must be between 0s and %s, got %s", maxReloadTimeout, c.Reload.Timeout))
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid logging.level %q: %w", c.Logging.Level, err))
	}
	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		errs = append(errs, errors.New("logging rotation limits cannot be negative"))
	}
	if dir := c.ConfigDir; dir != "" && !strings.HasPrefix(dir, "~/") && !filepath.IsAbs(dir) {
		errs = append(errs, fmt.Errorf("config_dir must be an absolute path, got %q", dir))
	}

	return errors.Join(errs...)
}

// Dir returns the Hyprland configuration directory with ~ expanded. An empty
// config_dir means $XDG_CONFIG_HOME/hypr.
func (c *Config) Dir() string {
	switch {
	case c.ConfigDir == "":
		return storage.DefaultConfigDir()
	case strings.HasPrefix(c.ConfigDir, "~/"):
		return filepath.Join(xdg.Home, c.ConfigDir[2:])
	default:
		return filepath.Clean(c.ConfigDir)
	}
}
