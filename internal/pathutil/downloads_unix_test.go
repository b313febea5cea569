//go:build linux

package pathutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDownloadDirectoryFromEnv(t *testing.T) {
	t.Setenv("XDG_DOWNLOAD_DIR", "/srv/downloads")

	dir, err := DownloadDirectory()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/srv/downloads" {
		t.Errorf("DownloadDirectory() = %q, want /srv/downloads", dir)
	}
}

func TestDownloadDirectoryFromUserDirs(t *testing.T) {
	home := t.TempDir()
	configHome := filepath.Join(home, ".config")
	if err := os.MkdirAll(configHome, 0700); err != nil {
		t.Fatal(err)
	}
	content := "# written by xdg-user-dirs-update\nXDG_DESKTOP_DIR=\"$HOME/Desktop\"\nXDG_DOWNLOAD_DIR=\"$HOME/Pobrane\"\n"
	if err := os.WriteFile(filepath.Join(configHome, "user-dirs.dirs"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("HOME", home)
	t.Setenv("XDG_DOWNLOAD_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir, err := DownloadDirectory()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "Pobrane"); dir != want {
		t.Errorf("DownloadDirectory() = %q, want %q", dir, want)
	}
}

func TestDownloadDirectoryFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DOWNLOAD_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "nothing-here"))

	dir, err := DownloadDirectory()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "Downloads"); dir != want {
		t.Errorf("DownloadDirectory() = %q, want %q", dir, want)
	}
}
