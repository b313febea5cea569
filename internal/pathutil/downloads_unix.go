//go:build !windows

package pathutil

import (
	"bufio"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// platformDownloadDirectory honours the freedesktop XDG_DOWNLOAD_DIR
// setting on Linux. macOS always uses ~/Downloads.
func platformDownloadDirectory() string {
	if runtime.GOOS != "linux" {
		return ""
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	if dir := os.Getenv("XDG_DOWNLOAD_DIR"); dir != "" {
		return expandHome(dir, home)
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	return readUserDirs(filepath.Join(configHome, "user-dirs.dirs"), home)
}

// readUserDirs extracts XDG_DOWNLOAD_DIR from a user-dirs.dirs file:
//
//	XDG_DOWNLOAD_DIR="$HOME/Downloads"
func readUserDirs(path, home string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(key) != "XDG_DOWNLOAD_DIR" {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if value == "" {
			return ""
		}
		return expandHome(value, home)
	}
	return ""
}

func expandHome(dir, home string) string {
	dir = strings.Replace(dir, "$HOME", home, 1)
	if strings.HasPrefix(dir, "~/") {
		dir = filepath.Join(home, dir[2:])
	}
	return dir
}
