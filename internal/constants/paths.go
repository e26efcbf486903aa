// Package constants contains file names, directory names and commands shared across hyprsettings.
package constants

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "hyprsettings"

	// HyprDir is the window manager configuration directory under the XDG config home.
	HyprDir = "hypr"

	// LookAndFeelFilename holds the general, decoration and animations blocks.
	LookAndFeelFilename = "looknfeel.conf"

	// InputFilename holds the input block and its nested touchpad block.
	InputFilename = "input.conf"

	// ConfigFilename is the hyprsettings application config file name.
	ConfigFilename = "config.yml"

	// LogFilename is the default log file name for hyprsettings.
	LogFilename = "hyprsettings.log"

	// DatabaseFilename is the apply history database file name.
	DatabaseFilename = "history.db"

	// BackupSuffix is appended to a configuration file path to name its backup.
	BackupSuffix = ".bak"

	// TempSuffix is appended to a configuration file path while it is being replaced.
	TempSuffix = ".tmp"
)
