//go:build unit

package cache

import (
	"go-admin-dashboard/internal/config"
	"testing"
	"time"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(config.CacheConfig{FilePath: "file::memory:", TTLMinutes: 5})
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestCache_SetGet(t *testing.T) {
	c := newTestCache(t)

	if err := c.Set("k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := c.Get("k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "v" {
		t.Errorf("expected 'v', got %q", got)
	}
}

func TestCache_Miss(t *testing.T) {
	c := newTestCache(t)

	got, err := c.Get("absent")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for a cache miss, got %q", got)
	}
}

func TestCache_Expired(t *testing.T) {
	c := newTestCache(t)

	if err := c.Set("old", []byte("v"), -2*time.Second); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := c.Get("old")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected expired item to miss, got %q", got)
	}
}

func TestCache_TTLFromConfig(t *testing.T) {
	c := newTestCache(t)
	if c.TTL() != 5*time.Minute {
		t.Errorf("expected TTL of 5m, got %v", c.TTL())
	}
}

func TestCache_OverwritePurge(t *testing.T) {
	c := newTestCache(t)

	c.Set("md:a", []byte("<p>one</p>"), time.Minute)
	c.Set("md:a", []byte("<p>two</p>"), time.Minute)
	c.Set("md:b", []byte("<p>b</p>"), time.Minute)
	c.Set("md:stale", []byte("<p>x</p>"), -time.Minute)

	if got, _ := c.Get("md:a"); string(got) != "<p>two</p>" {
		t.Errorf("expected the newer value, got %q", got)
	}
	if n, _ := c.Len(); n != 3 {
		t.Errorf("expected 3 stored rows, got %d", n)
	}

	purged, err := c.Purge()
	if err != nil {
		t.Fatalf("Purge failed: %v", err)
	}
	if purged != 1 {
		t.Errorf("expected 1 purged row, got %d", purged)
	}
	if n, _ := c.Len(); n != 2 {
		t.Errorf("expected 2 remaining rows, got %d", n)
	}
}
