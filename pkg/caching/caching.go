// Package caching provides a file-based cache for raw page HTML so
// repeated scrapes of the same URL skip the network.
package caching

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Cache stores one file per URL, keyed by the URL's SHA256, with a
// modification-time TTL. A zero TTL disables reads, which is how
// --force-fetch bypasses the cache without clearing it.
type Cache struct {
	path string
	ttl  time.Duration
}

// New creates the cache directory if needed.
func New(path string, ttl time.Duration) (*Cache, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{path: path, ttl: ttl}, nil
}

func (c *Cache) key(url string) string {
	hash := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x.html", hash)
}

// Get returns the cached HTML for a URL and true on a hit. Expired or
// unreadable entries count as misses.
func (c *Cache) Get(url string) ([]byte, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	filePath := filepath.Join(c.path, c.key(url))
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > c.ttl {
		return nil, false
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores the HTML for a URL, overwriting any previous entry.
func (c *Cache) Set(url string, html []byte) error {
	filePath := filepath.Join(c.path, c.key(url))
	if err := os.WriteFile(filePath, html, 0644); err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	return nil
}

// Remove deletes the cache entry for a URL, if present.
func (c *Cache) Remove(url string) error {
	err := os.Remove(filepath.Join(c.path, c.key(url)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
