package pathutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// maxCollisionSuffix bounds the search for a free name.
const maxCollisionSuffix = 10000

// ErrNoFreeName is returned when every candidate name up to the limit exists.
var ErrNoFreeName = errors.New("no free file name available")

// CandidateName returns the n-th candidate for path: n == 0 is path itself,
// n > 0 inserts " (n)" before the extension.
//
// Example: "report.pdf" -> "report (1).pdf", "report (2).pdf", ...
// Dotfiles keep their leading dot as part of the base: ".bashrc" -> ".bashrc (1)".
func CandidateName(path string, n int) string {
	if n == 0 {
		return path
	}
	dir, file := filepath.Split(path)
	ext := filepath.Ext(file)
	base := strings.TrimSuffix(file, ext)
	if base == "" {
		// ".bashrc": Ext would swallow the whole name
		base, ext = file, ""
	}
	return filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, n, ext))
}

// CreateUnique creates a new file at the first free candidate name with
// O_EXCL, so an existing file is never opened or truncated, and two callers
// racing on the same name end up with different files.
func CreateUnique(path string) (*os.File, string, error) {
	for n := 0; n < maxCollisionSuffix; n++ {
		candidate := CandidateName(path, n)
		f, err := os.OpenFile(candidate, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			return f, candidate, nil
		}
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return nil, "", err
	}
	return nil, "", fmt.Errorf("%s: %w", path, ErrNoFreeName)
}
