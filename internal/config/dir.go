// Package config provides the configuration directory and project
// configuration for the mason CLI.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the mason configuration directory.
//
// Resolution:
//   - $MASON_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/mason if set (respects XDG on any platform)
//   - %AppData%/mason on Windows
//   - ~/.config/mason on macOS and Linux
func Dir() string {
	// Explicit override
	if dir := os.Getenv("MASON_CONFIG_HOME"); dir != "" {
		return dir
	}

	// XDG override (works on any platform)
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mason")
	}

	// Windows: use AppData
	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "mason")
		}
	}

	// macOS and Linux: ~/.config/mason
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "mason")
}
