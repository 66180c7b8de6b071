//go:build unit

package service

import (
	"go-admin-dashboard/internal/cache"
	"go-admin-dashboard/internal/config"
	"strings"
	"testing"
)

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(config.CacheConfig{FilePath: "file::memory:", TTLMinutes: 5})
	if err != nil {
		t.Fatalf("failed to create test cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRichText_Render(t *testing.T) {
	rt := NewRichText(newTestCache(t))

	got := string(rt.Render("**bold** and <script>alert(1)</script>"))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("expected markdown to be rendered, got %q", got)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("expected script to be stripped, got %q", got)
	}

	if again := string(rt.Render("**bold** and <script>alert(1)</script>")); again != got {
		t.Errorf("cached render differs: %q vs %q", again, got)
	}
	if rt.Render("   ") != "" {
		t.Error("expected empty output for blank input")
	}
}

func TestRichText_Plain(t *testing.T) {
	rt := NewRichText(nil)
	if got := rt.Plain("# Title\n\nFish & *chips*"); got != "Title\nFish & chips" {
		t.Errorf("unexpected plain text %q", got)
	}
}

func TestRichText_RenderHTML(t *testing.T) {
	rt := NewRichText(nil)

	got := string(rt.Render("<p>Seminar <strong>IEEE</strong> day</p>"))
	if !strings.Contains(got, "<p>Seminar <strong>IEEE</strong> day</p>") {
		t.Errorf("expected stored HTML to survive rendering, got %q", got)
	}
	if plain := rt.Plain("<p>Seminar <strong>IEEE</strong> day</p>"); plain != "Seminar IEEE day" {
		t.Errorf("unexpected plain text %q", plain)
	}

	unsafe := string(rt.Render(`<p onclick="steal()">Hi</p><iframe src="https://evil.test"></iframe>`))
	if strings.Contains(unsafe, "onclick") || strings.Contains(unsafe, "iframe") {
		t.Errorf("expected unsafe markup to be stripped, got %q", unsafe)
	}
}
