// Package imagecache keeps downloaded seed images on disk so repeated runs
// against the same URL sample the same bytes without refetching.
package imagecache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	httputil "github.com/jmylchreest/themer/internal/util/http"
)

// FetchFunc retrieves the body of a URL.
type FetchFunc func(ctx context.Context, url string) ([]byte, error)

// Cache stores fetched images in a directory, one file per URL.
type Cache struct {
	dir   string
	fetch FetchFunc
}

// DefaultCacheDir returns <user cache dir>/themer/images.
func DefaultCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine cache directory: %w", err)
		}
		return filepath.Join(home, ".cache", "themer", "images"), nil
	}
	return filepath.Join(cacheDir, "themer", "images"), nil
}

// New creates a cache in dir. An empty dir uses DefaultCacheDir and a nil
// fetch uses httputil.Fetch with default options.
func New(dir string, fetch FetchFunc) (*Cache, error) {
	if dir == "" {
		d, err := DefaultCacheDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if fetch == nil {
		fetch = func(ctx context.Context, url string) ([]byte, error) {
			return httputil.Fetch(ctx, url, httputil.FetchOptions{})
		}
	}
	return &Cache{dir: dir, fetch: fetch}, nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string {
	return c.dir
}

// Path returns where url is cached: the first 16 bytes of its SHA-256 in hex
// plus the URL's extension (".img" when it has none).
func (c *Cache) Path(rawURL string) string {
	sum := sha256.Sum256([]byte(rawURL))

	var ext string
	if u, err := url.Parse(rawURL); err == nil {
		ext = strings.ToLower(path.Ext(u.Path))
	}
	if ext == "" || len(ext) > 5 {
		ext = ".img"
	}
	return filepath.Join(c.dir, fmt.Sprintf("%x%s", sum[:16], ext))
}

// Get returns the cached bytes of url, fetching and storing them first when
// absent. A failure to write the cache is returned with the fetched data.
func (c *Cache) Get(ctx context.Context, rawURL string) ([]byte, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return nil, fmt.Errorf("invalid URL %q: must start with http:// or https://", rawURL)
	}

	p := c.Path(rawURL)
	if data, err := os.ReadFile(p); err == nil { // #nosec G304 - path derived from a hash inside the cache dir
		return data, nil
	}

	data, err := c.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return data, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return data, fmt.Errorf("failed to write cached image: %w", err)
	}
	return data, nil
}

// Purge deletes every cached image.
func (c *Cache) Purge() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return fmt.Errorf("failed to purge image cache: %w", err)
	}
	return nil
}
