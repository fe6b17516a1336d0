package engineconfig

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultConfigPath returns the platform-appropriate location for the
// engine's config file, honoring XDG_CONFIG_HOME on Linux.
func DefaultConfigPath() string {
	return filepath.Join(defaultConfigDir(), "config.toml")
}

func defaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.TempDir()
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "autocomplete")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "autocomplete")
		}
		return filepath.Join(homeDir, ".config", "autocomplete")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "autocomplete")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "autocomplete")
	default:
		return filepath.Join(homeDir, ".autocomplete")
	}
}
