//go:build unit

package view

import (
	"context"
	"go-admin-dashboard/internal/identity"
	"go-admin-dashboard/web"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

func TestNew_ParsesEmbeddedTemplates(t *testing.T) {
	v, err := New(web.TemplateFS, map[string]interface{}{
		"markdown": func(s string) string { return s },
		"plain":    func(s string) string { return s },
	})
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	for _, name := range []string{
		"achievements.html", "achievement_form.html", "activities.html", "activity_form.html",
		"news.html", "news_form.html", "faq.html", "faq_form.html", "trash.html", "confirm.html",
		"log.html", "settings.html", "login.html", "register.html", "error.html", "redirect.html",
	} {
		if !v.Has(name) {
			t.Errorf("template %s was not parsed", name)
		}
	}
}

func TestRender_InjectsRequestState(t *testing.T) {
	fsys := fstest.MapFS{
		"templates/layouts/base.html": {Data: []byte(`{{define "base"}}<body class="{{if .DarkMode}}dark{{end}}">{{.User.Name}}|{{.CurrentPath}}|{{template "content" .}}</body>{{end}}`)},
		"templates/pages/home.html":   {Data: []byte(`{{define "content"}}{{.Message}}{{end}}`)},
	}
	v, err := New(fsys, nil)
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}

	req := httptest.NewRequest("GET", "/news", nil)
	ctx := WithDarkMode(req.Context(), true)
	ctx = WithProfile(ctx, identity.Profile{Name: "Asep"})
	rr := httptest.NewRecorder()

	if err := v.Render(rr, req.WithContext(ctx), "home.html", map[string]interface{}{"Message": "hello"}); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := `<body class="dark">Asep|/news|hello</body>`
	if got := rr.Body.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("unexpected content type %q", ct)
	}

	if err := v.Render(rr, req, "missing.html", nil); err == nil {
		t.Error("expected an error for an unknown template")
	}
}

func TestContextDefaults(t *testing.T) {
	ctx := context.Background()
	if IsDarkMode(ctx) {
		t.Error("dark mode must default to off")
	}
	if p := ProfileFrom(ctx); p.Name != "" {
		t.Errorf("expected the zero profile, got %+v", p)
	}
}

func TestFormatDate(t *testing.T) {
	tests := map[string]string{
		"2024-05-01":           "01 May 2024",
		"2024-12-25T10:00:00Z": "25 December 2024",
		"someday":              "someday",
		"":                     "",
	}
	for in, want := range tests {
		if got := FormatDate(in); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCategoryClass(t *testing.T) {
	if got := CategoryClass("International"); got != "badge badge-international" {
		t.Errorf("unexpected class %q", got)
	}
	if got := CategoryClass("Events"); got != "badge badge-events" {
		t.Errorf("unexpected class %q", got)
	}
	if got := CategoryClass("other"); got != "badge" {
		t.Errorf("unexpected class %q", got)
	}
}

func TestDict(t *testing.T) {
	m, err := dict("Name", "photo", "Value", 3)
	if err != nil || m["Name"] != "photo" || m["Value"] != 3 {
		t.Errorf("unexpected dict %v (%v)", m, err)
	}
	if _, err := dict("odd"); err == nil {
		t.Error("expected an error for an odd argument count")
	}
	if _, err := dict(1, 2); err == nil {
		t.Error("expected an error for a non-string key")
	}
}
