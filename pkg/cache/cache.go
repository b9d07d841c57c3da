// Package cache manages the directory ort result files are written into.
// There is no eviction policy: clearing the cache is deleting the directory.
package cache

import (
	"os"
	"path/filepath"

	"github.com/depscope/depscope/pkg/errors"
	"github.com/depscope/depscope/pkg/runner"
)

// Cache is a result directory.
type Cache struct {
	dir string
}

// New creates a cache rooted at dir. An empty dir resolves to a "depscope"
// directory under the user cache dir.
func New(dir string) *Cache {
	if dir == "" {
		dir = DefaultDir()
	}
	return &Cache{dir: dir}
}

// DefaultDir returns the default cache location.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "depscope")
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	return c.dir
}

// AnalyzerResult returns the expected analyzer result file path.
func (c *Cache) AnalyzerResult() string {
	return filepath.Join(c.dir, runner.AnalyzerResultFile)
}

// AdvisorResult returns the expected advisor result file path.
func (c *Cache) AdvisorResult() string {
	return filepath.Join(c.dir, runner.AdvisorResultFile)
}

// Ensure creates the cache directory if it does not exist.
func (c *Cache) Ensure() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return errors.E("cache.Ensure", errors.KindStorage, "cannot create cache directory", err)
	}
	return nil
}

// Clear deletes the cache directory and everything in it.
func (c *Cache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return errors.E("cache.Clear", errors.KindStorage, "cannot remove cache directory", err)
	}
	return nil
}

// Size returns the total size in bytes of all files under the cache dir.
func (c *Cache) Size() (int64, error) {
	var total int64
	err := filepath.Walk(c.dir, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if !info.IsDir() {
			total += info.Size()
		}
		return nil
	})
	if err != nil && !os.IsNotExist(err) {
		return 0, errors.E("cache.Size", errors.KindStorage, "cannot walk cache directory", err)
	}
	return total, nil
}
