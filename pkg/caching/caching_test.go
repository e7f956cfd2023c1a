package caching

import (
	"bytes"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	cache, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	const url = "https://example.com/recipe"
	if _, ok := cache.Get(url); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	html := []byte("<html>cached</html>")
	if err := cache.Set(url, html); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := cache.Get(url)
	if !ok {
		t.Fatal("expected hit after Set")
	}
	if !bytes.Equal(got, html) {
		t.Errorf("Get() = %q, want %q", got, html)
	}

	// Different URLs do not collide.
	if _, ok := cache.Get(url + "/other"); ok {
		t.Error("hit for a URL that was never stored")
	}
}

func TestCacheZeroTTLDisablesReads(t *testing.T) {
	dir := t.TempDir()
	warm, err := New(dir, time.Hour)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	const url = "https://example.com/recipe"
	if err := warm.Set(url, []byte("x")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	cold, err := New(dir, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := cold.Get(url); ok {
		t.Error("zero-TTL cache returned a hit")
	}
}

func TestCacheRemove(t *testing.T) {
	cache, err := New(t.TempDir(), time.Hour)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	const url = "https://example.com/recipe"

	if err := cache.Remove(url); err != nil {
		t.Fatalf("Remove() on missing entry error = %v", err)
	}
	if err := cache.Set(url, []byte("x")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := cache.Remove(url); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if _, ok := cache.Get(url); ok {
		t.Error("entry still readable after Remove")
	}
}
