//go:build unit

package identity

import (
	"context"
	"errors"
	"go-admin-dashboard/internal/data"
	"sync"
	"testing"
)

type mapKV struct {
	mu      sync.Mutex
	entries map[string]data.Entry
	err     error
}

func newMapKV() *mapKV { return &mapKV{entries: map[string]data.Entry{}} }

func (m *mapKV) Get(ctx context.Context, key string) (*data.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	e, ok := m.entries[key]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (m *mapKV) Put(ctx context.Context, key string, e data.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.entries[key] = e
	return nil
}

var defaults = Profile{Name: "Asep Jamaludin", Avatar: "/static/default-avatar.svg"}

func TestNew_Defaults(t *testing.T) {
	c, err := New(context.Background(), newMapKV(), defaults)
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}
	if c.Profile() != defaults {
		t.Errorf("expected defaults, got %+v", c.Profile())
	}
}

func TestNew_LoadsStoredProfile(t *testing.T) {
	kv := newMapKV()
	kv.entries[data.KeyUserName] = data.Entry{Payload: []byte("Siti")}
	kv.entries[data.KeyProfileImage] = data.Entry{Payload: []byte("/media/abc")}

	c, err := New(context.Background(), kv, defaults)
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}
	if got := c.Profile(); got.Name != "Siti" || got.Avatar != "/media/abc" {
		t.Errorf("expected stored profile, got %+v", got)
	}
}

func TestSetters_PersistImmediately(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	c, _ := New(ctx, kv, defaults)

	if err := c.SetName(ctx, "  Budi  "); err != nil {
		t.Fatalf("SetName() returned an unexpected error: %v", err)
	}
	if err := c.SetAvatar(ctx, "/media/xyz"); err != nil {
		t.Fatalf("SetAvatar() returned an unexpected error: %v", err)
	}

	reloaded, _ := New(ctx, kv, defaults)
	if got := reloaded.Profile(); got.Name != "Budi" || got.Avatar != "/media/xyz" {
		t.Errorf("expected persisted profile, got %+v", got)
	}
}

func TestSetName_RejectsBlank(t *testing.T) {
	ctx := context.Background()
	c, _ := New(ctx, newMapKV(), defaults)
	if err := c.SetName(ctx, "   "); err == nil {
		t.Error("expected an error for a blank name")
	}
	if c.Profile().Name != defaults.Name {
		t.Errorf("expected name to stay unchanged, got %q", c.Profile().Name)
	}
}

func TestSetAvatar_StoreFailureKeepsPrevious(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()
	c, _ := New(ctx, kv, defaults)
	kv.err = errors.New("disk full")

	if err := c.SetAvatar(ctx, "/media/new"); err == nil {
		t.Fatal("expected the store error to surface")
	}
	if c.Profile().Avatar != defaults.Avatar {
		t.Errorf("expected previous avatar, got %q", c.Profile().Avatar)
	}
}

func TestDarkMode(t *testing.T) {
	ctx := context.Background()
	kv := newMapKV()

	if on, err := DarkMode(ctx, kv); err != nil || on {
		t.Errorf("expected light mode by default, got %v, %v", on, err)
	}
	if err := SetDarkMode(ctx, kv, true); err != nil {
		t.Fatalf("SetDarkMode() returned an unexpected error: %v", err)
	}
	if string(kv.entries[data.KeyDarkMode].Payload) != "true" {
		t.Errorf("expected stored value \"true\", got %q", kv.entries[data.KeyDarkMode].Payload)
	}
	if on, _ := DarkMode(ctx, kv); !on {
		t.Error("expected dark mode to be on")
	}
	kv.entries[data.KeyDarkMode] = data.Entry{Payload: []byte("garbage")}
	if on, err := DarkMode(ctx, kv); err != nil || on {
		t.Errorf("expected garbage to read as light mode, got %v, %v", on, err)
	}
}
