package pathutil

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrNoDownloadDir is returned when no downloads directory can be determined.
var ErrNoDownloadDir = errors.New("cannot determine downloads directory")

// DownloadDirectory returns the user's downloads directory. It does not
// create it.
func DownloadDirectory() (string, error) {
	if dir := platformDownloadDirectory(); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", ErrNoDownloadDir
	}
	return filepath.Join(home, "Downloads"), nil
}
