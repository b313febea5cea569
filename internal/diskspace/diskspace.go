// Package diskspace checks free space on the volume a download is written to.
package diskspace

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// SafetyMargin is applied to the requested size before comparing.
const SafetyMargin = 1.05

// InsufficientSpaceError indicates that there is not enough disk space available.
type InsufficientSpaceError struct {
	Path           string
	RequiredBytes  int64
	AvailableBytes int64
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("insufficient disk space for %s: need %s, have %s available",
		e.Path, humanize.Bytes(uint64(e.RequiredBytes)), humanize.Bytes(uint64(e.AvailableBytes)))
}

// availableFunc is swapped in tests.
var availableFunc = available

// CheckAvailableSpace returns an InsufficientSpaceError when the volume
// holding targetPath cannot fit requiredBytes plus SafetyMargin. The target
// itself need not exist, but its directory must. When free space cannot be
// determined the check passes and the write is left to fail on its own.
func CheckAvailableSpace(targetPath string, requiredBytes int64) error {
	free, ok := availableFunc(filepath.Dir(targetPath))
	if !ok {
		return nil
	}

	required := int64(float64(requiredBytes) * SafetyMargin)
	if free < required {
		return &InsufficientSpaceError{
			Path:           targetPath,
			RequiredBytes:  required,
			AvailableBytes: free,
		}
	}
	return nil
}

// GetAvailableSpace returns the free bytes for the volume containing path,
// or 0 if unknown.
func GetAvailableSpace(path string) int64 {
	free, _ := availableFunc(filepath.Dir(path))
	return free
}

// IsInsufficientSpaceError checks if an error is an InsufficientSpaceError
func IsInsufficientSpaceError(err error) bool {
	var target *InsufficientSpaceError
	return errors.As(err, &target)
}
