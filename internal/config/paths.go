// Package config provides settings persistence and runtime options for the
// Messenger desktop shell.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pakemessenger/messenger/internal/constants"
	"github.com/pakemessenger/messenger/internal/pathutil"
)

// DataDirectory returns the per-user data directory holding settings.json.
//
// Locations:
//   - MESSENGER_DATA_DIR when set
//   - Windows: %APPDATA%\pake-messenger
//   - macOS: ~/Library/Application Support/pake-messenger
//   - Linux: $XDG_CONFIG_HOME/pake-messenger (~/.config/pake-messenger)
func DataDirectory() string {
	if custom := os.Getenv("MESSENGER_DATA_DIR"); custom != "" {
		if resolved, err := pathutil.ResolveAbsolutePath(custom); err == nil {
			return resolved
		}
		return custom
	}

	base, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(os.TempDir(), constants.DataDirName)
		}
		base = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(base, constants.DataDirName)
}

// SettingsPath returns the full path to settings.json.
func SettingsPath() string {
	return filepath.Join(DataDirectory(), constants.SettingsFileName)
}

// LogDirectory returns the log directory.
//
// Locations:
//   - Windows: %LOCALAPPDATA%\pake-messenger\logs
//   - Unix: <DataDirectory>/logs
func LogDirectory() string {
	if runtime.GOOS == "windows" && os.Getenv("MESSENGER_DATA_DIR") == "" {
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, constants.DataDirName, "logs")
		}
	}
	return filepath.Join(DataDirectory(), "logs")
}

// CacheDirectory returns the directory for disposable files such as
// downloaded notification icons.
func CacheDirectory() string {
	base, err := os.UserCacheDir()
	if err != nil || os.Getenv("MESSENGER_DATA_DIR") != "" {
		return filepath.Join(DataDirectory(), "cache")
	}
	return filepath.Join(base, constants.DataDirName)
}
