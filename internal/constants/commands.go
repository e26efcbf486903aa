package constants

import "time"

const (
	// ReloadCommand asks the running compositor to re-read its configuration.
	ReloadCommand = "hyprctl"

	// ReloadSubcommand is the only argument passed to ReloadCommand.
	ReloadSubcommand = "reload"

	// ReloadTimeout bounds how long a reload may run before it is abandoned.
	ReloadTimeout = 5 * time.Second
)
