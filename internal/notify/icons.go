package notify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/pakemessenger/messenger/internal/config"
	"github.com/pakemessenger/messenger/internal/constants"
	mhttp "github.com/pakemessenger/messenger/internal/http"
	"github.com/pakemessenger/messenger/internal/logging"
)

var iconExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".ico":  true,
	".bmp":  true,
}

// IconCache turns notification icon references into local file paths.
// Remote icons are fetched once and kept under dir.
type IconCache struct {
	dir    string
	client *retryablehttp.Client
	logger *logging.Logger

	mu sync.Mutex // serialises writes to the same cache entry
}

// NewIconCache creates a cache rooted at dir. An empty dir uses
// CacheDirectory()/icons.
func NewIconCache(dir string, logger *logging.Logger) *IconCache {
	if dir == "" {
		dir = filepath.Join(config.CacheDirectory(), "icons")
	}
	if logger == nil {
		logger = logging.Nop()
	}

	opts := config.DefaultOptions()
	opts.HTTPTimeout = constants.IconFetchTimeout

	return &IconCache{
		dir:    dir,
		client: mhttp.NewDownloadClient(opts, logger),
		logger: logger,
	}
}

// Dir returns the cache directory.
func (c *IconCache) Dir() string {
	return c.dir
}

// Resolve returns a local path for icon. Empty input yields an empty path,
// non-URL input is treated as a local path and returned unchanged.
func (c *IconCache) Resolve(ctx context.Context, icon string) (string, error) {
	icon = strings.TrimSpace(icon)
	if icon == "" {
		return "", nil
	}

	lower := strings.ToLower(icon)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		return icon, nil
	}

	target := c.entryPath(icon)
	if _, err := os.Stat(target); err == nil {
		return target, nil
	}

	data, err := mhttp.Fetch(ctx, c.client, icon, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch icon: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.MkdirAll(c.dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create icon cache: %w", err)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write icon: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("failed to store icon: %w", err)
	}

	c.logger.Debug().Str("url", icon).Str("path", target).Msg("Cached notification icon")
	return target, nil
}

func (c *IconCache) entryPath(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))

	ext := ".png"
	p := rawURL
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if e := strings.ToLower(path.Ext(p)); iconExtensions[e] {
		ext = e
	}

	return filepath.Join(c.dir, hex.EncodeToString(sum[:])+ext)
}
