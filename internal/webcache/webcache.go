package webcache

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Cache stores fetched response bodies on disk, one JSON file per URL.
type Cache struct {
	dir string
	ttl time.Duration
}

// entry is the on-disk format: the fetch timestamp and the raw body.
type entry struct {
	Timestamp int64  `json:"timestamp"`
	Content   string `json:"content"`
}

// New creates a cache rooted at dir, creating the directory if needed.
// Entries older than ttl are treated as misses.
func New(dir string, ttl time.Duration) (*Cache, error) {
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	return &Cache{dir: dir, ttl: ttl}, nil
}

// entryPath returns the cache file path for a URL: <dir>/<md5(url)>.json.
func (c *Cache) entryPath(url string) string {
	sum := md5.Sum([]byte(url))
	return filepath.Join(c.dir, fmt.Sprintf("%x.json", sum))
}

// Get returns the cached body for a URL. Misses on absent, stale, or
// unreadable entries.
func (c *Cache) Get(url string) (string, bool) {
	data, err := os.ReadFile(c.entryPath(url))
	if err != nil {
		return "", false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return "", false
	}

	if time.Since(time.Unix(e.Timestamp, 0)) > c.ttl {
		return "", false
	}

	return e.Content, true
}

// Put stores a body for a URL, stamped with the current time.
func (c *Cache) Put(url, content string) error {
	data, err := json.Marshal(entry{
		Timestamp: time.Now().Unix(),
		Content:   content,
	})
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	if err := os.WriteFile(c.entryPath(url), data, 0644); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}

	return nil
}
