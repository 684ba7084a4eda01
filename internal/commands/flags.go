package commands

import (
	"github.com/nhath/mentions/internal/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path, or "" when the
// XDG config directory cannot be resolved.
func DefaultConfigPath() string {
	p, err := config.ConfigPath()
	if err != nil {
		return ""
	}
	return p
}
