//go:build unit

package media

import (
	"bytes"
	"context"
	"errors"
	"go-admin-dashboard/internal/data"
	"strings"
	"testing"
)

// mockRepository is an in-memory Repository.
type mockRepository struct {
	saved       map[string]*data.Media
	errToReturn error
}

func newMockRepository() *mockRepository {
	return &mockRepository{saved: map[string]*data.Media{}}
}

func (m *mockRepository) Save(ctx context.Context, md *data.Media) error {
	if m.errToReturn != nil {
		return m.errToReturn
	}
	m.saved[md.ID] = md
	return nil
}

func (m *mockRepository) Get(ctx context.Context, id string) (*data.Media, error) {
	md, ok := m.saved[id]
	if !ok {
		return nil, data.ErrNotFound
	}
	return md, nil
}

func (m *mockRepository) Delete(ctx context.Context, id string) error {
	if m.errToReturn != nil {
		return m.errToReturn
	}
	if _, ok := m.saved[id]; !ok {
		return data.ErrNotFound
	}
	delete(m.saved, id)
	return nil
}

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00")
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00")
)

func TestDetectType(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		content  []byte
		want     string
		wantErr  bool
	}{
		{"png", "logo.png", pngHeader, "image/png", false},
		{"jpg", "photo.JPG", jpegHeader, "image/jpeg", false},
		{"jpeg", "photo.jpeg", jpegHeader, "image/jpeg", false},
		{"gif", "anim.gif", gifHeader, "", true},
		{"gif renamed", "anim.png", gifHeader, "", true},
		{"png renamed to txt", "notes.txt", pngHeader, "", true},
		{"no extension", "image", pngHeader, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectType(tt.filename, tt.content)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedType) {
					t.Errorf("expected ErrUnsupportedType, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStore_Upload(t *testing.T) {
	repo := newMockRepository()
	s := NewStore(repo, 1)

	url, err := s.Upload(context.Background(), "logo.png", bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Upload() returned an unexpected error: %v", err)
	}
	if !strings.HasPrefix(url, URLPrefix) {
		t.Fatalf("expected a %s url, got %q", URLPrefix, url)
	}
	id := strings.TrimPrefix(url, URLPrefix)
	if repo.saved[id] == nil || repo.saved[id].ContentType != "image/png" {
		t.Errorf("expected the image to be saved as image/png, got %+v", repo.saved[id])
	}

	m, rs, err := s.Open(context.Background(), id)
	if err != nil {
		t.Fatalf("Open() returned an unexpected error: %v", err)
	}
	if m.ID != id || rs == nil {
		t.Errorf("unexpected Open() result %+v", m)
	}
}

func TestStore_UploadRejected(t *testing.T) {
	repo := newMockRepository()
	s := NewStore(repo, 1)
	ctx := context.Background()

	if _, err := s.Upload(ctx, "anim.gif", bytes.NewReader(gifHeader)); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType, got %v", err)
	}
	if _, err := s.Upload(ctx, "empty.png", bytes.NewReader(nil)); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	big := append(append([]byte{}, pngHeader...), make([]byte, 1<<20)...)
	if _, err := s.Upload(ctx, "big.png", bytes.NewReader(big)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Errorf("expected nothing to be stored, got %d", len(repo.saved))
	}
}

func TestStore_OpenInvalidID(t *testing.T) {
	s := NewStore(newMockRepository(), 1)
	if _, _, err := s.Open(context.Background(), "../etc/passwd"); !errors.Is(err, data.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Remove(t *testing.T) {
	repo := newMockRepository()
	s := NewStore(repo, 1)
	ctx := context.Background()

	url, err := s.Upload(ctx, "logo.png", bytes.NewReader(pngHeader))
	if err != nil {
		t.Fatalf("Upload() returned an unexpected error: %v", err)
	}
	if err := s.Remove(ctx, url); err != nil {
		t.Fatalf("Remove() returned an unexpected error: %v", err)
	}
	if len(repo.saved) != 0 {
		t.Errorf("expected the image to be deleted, %d left", len(repo.saved))
	}

	for _, ref := range []string{url, "", "/static/default-avatar.svg", "https://example.org/a.png", "/media/not-a-uuid"} {
		if err := s.Remove(ctx, ref); err != nil {
			t.Errorf("Remove(%q) returned an unexpected error: %v", ref, err)
		}
	}

	repo.errToReturn = errors.New("database is locked")
	if err := s.Remove(ctx, URLPrefix+"0f8fad5b-d9cb-469f-a165-70867728950e"); err == nil {
		t.Error("expected a storage failure to be returned")
	}
}
