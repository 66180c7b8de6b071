package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	stdhtml "html"
	"html/template"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderCache stores rendered HTML keyed by a hash of its source.
type RenderCache interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	TTL() time.Duration
}

// RichText renders the markdown or HTML used in news descriptions and FAQ
// answers.
type RichText struct {
	md        goldmark.Markdown
	sanitizer *bluemonday.Policy
	strict    *bluemonday.Policy
	cache     RenderCache
}

// NewRichText creates a renderer. cache may be nil.
func NewRichText(cache RenderCache) *RichText {
	return &RichText{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			// Raw HTML is kept so descriptions written as HTML render; the
			// sanitizer below decides what survives.
			goldmark.WithRendererOptions(html.WithHardWraps(), html.WithUnsafe()),
		),
		// UGCPolicy allows basic formatting such as links, lists and emphasis.
		sanitizer: bluemonday.UGCPolicy(),
		strict:    bluemonday.StrictPolicy(),
		cache:     cache,
	}
}

// Render converts src to sanitized HTML. Rendering failures fall back to the
// escaped source text.
func (r *RichText) Render(src string) template.HTML {
	if strings.TrimSpace(src) == "" {
		return ""
	}
	key := "md:" + hashOf(src)
	if r.cache != nil {
		if cached, err := r.cache.Get(key); err == nil && cached != nil {
			return template.HTML(cached)
		}
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	out := r.sanitizer.SanitizeBytes(buf.Bytes())

	if r.cache != nil {
		// Cache write failures only cost a re-render.
		_ = r.cache.Set(key, out, r.cache.TTL())
	}
	return template.HTML(out)
}

// Plain strips all markup from src, for table cells and log messages.
func (r *RichText) Plain(src string) string {
	return strings.TrimSpace(stdhtml.UnescapeString(r.strict.Sanitize(string(r.Render(src)))))
}

func hashOf(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
