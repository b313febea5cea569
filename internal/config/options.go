package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pakemessenger/messenger/internal/constants"
)

// Options are runtime knobs that are not user preferences.
type Options struct {
	Debug           bool
	DownloadRetries int
	HTTPTimeout     time.Duration // 0 leaves the HTTP client without a deadline
}

// DefaultOptions returns options with no retries and no timeout.
func DefaultOptions() Options {
	return Options{DownloadRetries: constants.DefaultDownloadRetries}
}

// OptionsFromEnv reads MESSENGER_DOWNLOAD_RETRIES and MESSENGER_HTTP_TIMEOUT
// on top of DefaultOptions.
func OptionsFromEnv() (Options, error) {
	opts := DefaultOptions()

	if v := os.Getenv("MESSENGER_DOWNLOAD_RETRIES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("invalid MESSENGER_DOWNLOAD_RETRIES %q: %w", v, err)
		}
		opts.DownloadRetries = n
	}

	if v := os.Getenv("MESSENGER_HTTP_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return opts, fmt.Errorf("invalid MESSENGER_HTTP_TIMEOUT %q: %w", v, err)
		}
		opts.HTTPTimeout = d
	}

	return opts, opts.Validate()
}

// Validate clamps nothing; it rejects values outside supported ranges.
func (o Options) Validate() error {
	if o.DownloadRetries < 0 || o.DownloadRetries > constants.MaxDownloadRetries {
		return fmt.Errorf("download retries must be between 0 and %d, got %d", constants.MaxDownloadRetries, o.DownloadRetries)
	}
	if o.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative, got %s", o.HTTPTimeout)
	}
	return nil
}
