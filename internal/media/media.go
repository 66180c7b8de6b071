package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go-admin-dashboard/internal/data"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrUnsupportedType is returned for anything other than PNG or JPEG.
	ErrUnsupportedType = errors.New("only PNG, JPEG, and JPG images are allowed")
	// ErrTooLarge is returned when an upload exceeds the configured limit.
	ErrTooLarge = errors.New("image is too large")
	// ErrEmpty is returned when no file content was sent.
	ErrEmpty = errors.New("no image was uploaded")
)

// URLPrefix is the path under which stored images are served.
const URLPrefix = "/media/"

var allowedExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

var allowedTypes = map[string]bool{"image/png": true, "image/jpeg": true}

// Repository persists image bytes.
type Repository interface {
	Save(ctx context.Context, m *data.Media) error
	Get(ctx context.Context, id string) (*data.Media, error)
	Delete(ctx context.Context, id string) error
}

// Store validates uploads and stores them as durable /media/{id} references.
type Store struct {
	repo     Repository
	maxBytes int64
}

// NewStore creates a Store accepting uploads up to maxMB megabytes.
func NewStore(repo Repository, maxMB int) *Store {
	if maxMB <= 0 {
		maxMB = 5
	}
	return &Store{repo: repo, maxBytes: int64(maxMB) << 20}
}

// MaxBytes returns the upload size limit.
func (s *Store) MaxBytes() int64 {
	return s.maxBytes
}

// DetectType checks the file name and the sniffed content and returns the
// content type of an accepted image.
func DetectType(filename string, head []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrUnsupportedType
	}
	ct := http.DetectContentType(head)
	if !allowedTypes[ct] {
		return "", ErrUnsupportedType
	}
	return ct, nil
}

// Upload validates and stores the image read from r, returning its URL.
func (s *Store) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	buf, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if len(buf) == 0 {
		return "", ErrEmpty
	}
	if int64(len(buf)) > s.maxBytes {
		return "", ErrTooLarge
	}

	head := buf
	if len(head) > 512 {
		head = head[:512]
	}
	ct, err := DetectType(filename, head)
	if err != nil {
		return "", err
	}

	m := &data.Media{ID: uuid.New().String(), ContentType: ct, Data: buf}
	if err := s.repo.Save(ctx, m); err != nil {
		return "", err
	}
	return URLPrefix + m.ID, nil
}

// Open returns the stored image for id.
func (s *Store) Open(ctx context.Context, id string) (*data.Media, io.ReadSeeker, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil, fmt.Errorf("media %s: %w", id, data.ErrNotFound)
	}
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return m, bytes.NewReader(m.Data), nil
}

// Remove deletes the image behind ref once no record uses it. References
// outside /media/ and images already gone are ignored.
func (s *Store) Remove(ctx context.Context, ref string) error {
	id, ok := strings.CutPrefix(ref, URLPrefix)
	if !ok {
		return nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil && !errors.Is(err, data.ErrNotFound) {
		return err
	}
	return nil
}
