package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/riverfjs/tgrender"
	"github.com/riverfjs/tgrender/internal/config"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	Flavor     string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tgrender", "config.yaml")
}

// renderFlavor returns the flavor selected by the configuration.
func (f *Flags) renderFlavor() (*tgrender.Flavor, error) {
	fl, ok := tgrender.LookupFlavor(f.Config.Flavor)
	if !ok {
		return nil, fmt.Errorf("unknown flavor %q", f.Config.Flavor)
	}
	return fl, nil
}
