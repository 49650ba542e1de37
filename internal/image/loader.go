// Package image loads the pictures that seed colours are sampled from.
package image

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format

	httputil "github.com/jmylchreest/themer/internal/util/http"
	"github.com/jmylchreest/themer/internal/util/imagecache"
)

// Loader handles loading images from various sources.
type Loader interface {
	// Load loads an image from the given path or URL.
	Load(ctx context.Context, path string) (image.Image, error)
}

// SupportedImageExtensions returns a list of supported image file extensions.
func SupportedImageExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}
}

func isImageFile(path string) bool {
	return slices.Contains(SupportedImageExtensions(), strings.ToLower(filepath.Ext(path)))
}

func isURL(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// FileLoader loads images from the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a new FileLoader instance.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load decodes an image file. A directory resolves to its first image in
// lexical order so repeated runs sample the same picture.
func (l *FileLoader) Load(_ context.Context, path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("image path cannot be empty")
	}

	resolved, err := ResolveImagePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(resolved) // #nosec G304 - User-specified image path, intended to be read
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("image file not found: %s", resolved)
		}
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}

	return decode(data)
}

// ResolveImagePath returns path unchanged for files and the first supported
// image (sorted by name) for directories.
func ResolveImagePath(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("image file or directory not found: %s", path)
		}
		return "", fmt.Errorf("failed to access image path: %w", err)
	}
	if !info.IsDir() {
		return path, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", fmt.Errorf("failed to read directory: %w", err)
	}
	for _, entry := range entries {
		if !entry.IsDir() && isImageFile(entry.Name()) {
			return filepath.Join(path, entry.Name()), nil
		}
	}
	return "", fmt.Errorf("no supported image files found in directory: %s", path)
}

// SmartLoader loads images from both local files and HTTP(S) URLs.
type SmartLoader struct {
	fileLoader *FileLoader
	fetch      imagecache.FetchFunc
	cache      *imagecache.Cache
	logger     hclog.Logger
}

// NewSmartLoader creates a new SmartLoader instance that fetches URLs
// directly.
func NewSmartLoader() *SmartLoader {
	return &SmartLoader{
		fileLoader: NewFileLoader(),
		fetch: func(ctx context.Context, url string) ([]byte, error) {
			return httputil.Fetch(ctx, url, httputil.FetchOptions{})
		},
		logger: hclog.NewNullLogger(),
	}
}

// WithCache routes URL loads through cache.
func (l *SmartLoader) WithCache(cache *imagecache.Cache) *SmartLoader {
	l.cache = cache
	return l
}

// WithLogger sets the logger for cache problems.
func (l *SmartLoader) WithLogger(logger hclog.Logger) *SmartLoader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// Load loads an image from either a local file path or HTTP(S) URL. A cache
// that cannot be written is logged and the fetched image is still used.
func (l *SmartLoader) Load(ctx context.Context, path string) (image.Image, error) {
	if !isURL(path) {
		return l.fileLoader.Load(ctx, path)
	}

	var (
		data []byte
		err  error
	)
	if l.cache != nil {
		data, err = l.cache.Get(ctx, path)
		if err != nil && data != nil {
			l.logger.Warn("image cache unavailable", "url", path, "error", err)
			err = nil
		}
	} else {
		data, err = l.fetch(ctx, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image from URL: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (image.Image, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return img, nil
}
