//go:build unit

package middleware

import (
	"context"
	"errors"
	"go-admin-dashboard/internal/data"
	"go-admin-dashboard/internal/identity"
	"go-admin-dashboard/internal/logger"
	"go-admin-dashboard/internal/view"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
)

type stubKV map[string]data.Entry

func (s stubKV) Get(ctx context.Context, key string) (*data.Entry, error) {
	e, ok := s[key]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (s stubKV) Put(ctx context.Context, key string, e data.Entry) error {
	s[key] = e
	return nil
}

type stubProfile identity.Profile

func (s stubProfile) Profile() identity.Profile { return identity.Profile(s) }

func newTestView(t *testing.T) *view.View {
	t.Helper()
	fsys := fstest.MapFS{
		"templates/layouts/base.html": {Data: []byte(`{{define "base"}}<body class="{{if .DarkMode}}dark{{end}}">{{.User.Name}}|{{template "content" .}}</body>{{end}}`)},
		"templates/pages/error.html":  {Data: []byte(`{{define "content"}}Error {{.StatusCode}}: {{.StatusText}}{{end}}`)},
	}
	v, err := view.New(fsys, nil)
	if err != nil {
		t.Fatalf("failed to build view: %v", err)
	}
	return v
}

func TestDarkMode(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   bool
	}{
		{"absent", "", false},
		{"on", "true", true},
		{"off", "false", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := stubKV{}
			if tt.stored != "" {
				kv[data.KeyDarkMode] = data.Entry{Payload: []byte(tt.stored)}
			}
			var got bool
			h := DarkMode(kv, logger.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = view.IsDarkMode(r.Context())
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
			if got != tt.want {
				t.Errorf("want dark mode %v; got %v", tt.want, got)
			}
		})
	}
}

func TestIdentity(t *testing.T) {
	var got identity.Profile
	h := Identity(stubProfile{Name: "Siti", Avatar: "/media/a"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = view.ProfileFrom(r.Context())
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if got.Name != "Siti" || got.Avatar != "/media/a" {
		t.Errorf("unexpected profile in context: %+v", got)
	}
}

func TestError(t *testing.T) {
	v := newTestView(t)
	mw := Error(logger.Nop(), v)

	t.Run("app error", func(t *testing.T) {
		h := mw(func(w http.ResponseWriter, r *http.Request) *AppError {
			return &AppError{Error: errors.New("boom"), Message: "Not Found", Code: http.StatusNotFound}
		})
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest("GET", "/missing", nil))
		if rr.Code != http.StatusNotFound {
			t.Errorf("want status %d; got %d", http.StatusNotFound, rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "Error 404: Not Found") {
			t.Errorf("unexpected body %q", rr.Body.String())
		}
	})

	t.Run("panic", func(t *testing.T) {
		h := mw(func(w http.ResponseWriter, r *http.Request) *AppError {
			panic("unexpected")
		})
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
		if rr.Code != http.StatusInternalServerError {
			t.Errorf("want status %d; got %d", http.StatusInternalServerError, rr.Code)
		}
	})

	t.Run("no error", func(t *testing.T) {
		h := mw(func(w http.ResponseWriter, r *http.Request) *AppError {
			w.WriteHeader(http.StatusNoContent)
			return nil
		})
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest("GET", "/", nil))
		if rr.Code != http.StatusNoContent {
			t.Errorf("want status %d; got %d", http.StatusNoContent, rr.Code)
		}
	})
}
