//go:build windows

package pathutil

import (
	"golang.org/x/sys/windows"
)

// platformDownloadDirectory asks the shell for FOLDERID_Downloads, which
// follows folder redirection (OneDrive, roaming profiles).
func platformDownloadDirectory() string {
	dir, err := windows.KnownFolderPath(windows.FOLDERID_Downloads, 0)
	if err != nil {
		return ""
	}
	return dir
}
