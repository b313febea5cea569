package pathutil

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrEmptyFilename is returned when a file name is empty after sanitizing.
var ErrEmptyFilename = errors.New("file name is empty")

// invisibleChars are zero-width and formatting characters that make file
// names look identical while differing on disk.
var invisibleChars = []string{
	"\u200B", // Zero-width space
	"\u200C", // Zero-width non-joiner
	"\u200D", // Zero-width joiner
	"\uFEFF", // Zero-width no-break space (BOM)
	"\u00AD", // Soft hyphen
	"\u2060", // Word joiner
	"\u202E", // Right-to-left override
}

// SanitizeFilename reduces a name supplied by the web page to a single path
// element that is valid on every desktop OS. Directory components are
// dropped, so "../../etc/passwd" becomes "passwd".
func SanitizeFilename(name string) (string, error) {
	for _, char := range invisibleChars {
		name = strings.ReplaceAll(name, char, "")
	}

	// Treat both separators as separators regardless of host OS
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	name = strings.Map(func(r rune) rune {
		switch {
		case r < 0x20 || r == 0x7f:
			return -1
		case strings.ContainsRune(`<>:"|?*`, r):
			return '_'
		}
		return r
	}, name)

	// Windows drops trailing dots and spaces silently
	name = strings.TrimRight(strings.TrimSpace(name), ". ")

	if name == "" || name == "." || name == ".." {
		return "", ErrEmptyFilename
	}
	return filepath.Clean(name), nil
}
