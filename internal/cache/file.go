package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// FileCache keeps one JSON file per key under a directory.
type FileCache struct {
	dir    string
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

func NewFileCache(dir string, ttl time.Duration, logger *slog.Logger) (*FileCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache{
		dir:    dir,
		ttl:    ttl,
		logger: logger.With("component", "file_cache"),
		now:    time.Now,
	}, nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *FileCache) Get(_ context.Context, key string, dst any) bool {
	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug("cache read failed", "key", key, "error", err)
		}
		return false
	}

	ok, err := decode(raw, dst, c.now(), c.ttl)
	if err != nil {
		c.logger.Debug("cache entry unreadable", "key", key, "error", err)
		return false
	}
	return ok
}

func (c *FileCache) Set(_ context.Context, key string, value any) {
	raw, err := encode(value, c.now())
	if err != nil {
		c.logger.Debug("cache encode failed", "key", key, "error", err)
		return
	}

	tmp, err := os.CreateTemp(c.dir, key+".*.tmp")
	if err != nil {
		c.logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		c.logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		c.logger.Debug("cache write failed", "key", key, "error", err)
		return
	}
	if err := os.Rename(tmp.Name(), c.path(key)); err != nil {
		c.logger.Debug("cache write failed", "key", key, "error", err)
	}
}
