package utils

import (
	"os"
	"path/filepath"
)

const (
	AppName        = "linux-starfield"
	ConfigFileName = "config.yaml"
)

// ConfigSearchPaths lists where a settings file is looked for, in order.
func ConfigSearchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, AppName, ConfigFileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", AppName, ConfigFileName))
	}
	paths = append(paths, filepath.Join("/etc", AppName, ConfigFileName))
	return paths
}

// DiscoverConfig returns the settings file to load, or "" to run on
// built-in defaults. A custom path that does not exist falls back to
// automatic discovery.
func DiscoverConfig(customPath string) string {
	if customPath != "" {
		if _, err := os.Stat(customPath); err == nil {
			Info("Using custom config path: %s", customPath)
			return customPath
		}
		Warn("Custom config path NOT FOUND: %s", customPath)
		Info("Falling back to automatic discovery...")
	}

	for _, p := range ConfigSearchPaths() {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			Info("Discovered config at: %s", p)
			return p
		}
	}

	Debug("No config file found, using built-in defaults")
	return ""
}
