package identity

import (
	"context"
	"fmt"
	"go-admin-dashboard/internal/data"
	"strconv"
	"strings"
	"sync"
)

// Profile is the display identity shown in the header and on the settings page.
type Profile struct {
	Name   string
	Avatar string
}

// Context holds the current user's profile. It is loaded once and every change
// is written through to the store immediately.
type Context struct {
	mu      sync.RWMutex
	kv      data.KV
	profile Profile
}

// New loads the profile from kv, falling back to defaults for absent keys.
func New(ctx context.Context, kv data.KV, defaults Profile) (*Context, error) {
	p := defaults
	name, ok, err := data.GetString(ctx, kv, data.KeyUserName)
	if err != nil {
		return nil, fmt.Errorf("failed to load user name: %w", err)
	}
	if ok && name != "" {
		p.Name = name
	}
	avatar, ok, err := data.GetString(ctx, kv, data.KeyProfileImage)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile image: %w", err)
	}
	if ok && avatar != "" {
		p.Avatar = avatar
	}
	return &Context{kv: kv, profile: p}, nil
}

// Profile returns a copy of the current profile.
func (c *Context) Profile() Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.profile
}

// SetName changes and persists the display name. Blank names are rejected.
func (c *Context) SetName(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := data.PutString(ctx, c.kv, data.KeyUserName, name); err != nil {
		return err
	}
	c.profile.Name = name
	return nil
}

// SetAvatar changes and persists the avatar image URL.
func (c *Context) SetAvatar(ctx context.Context, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := data.PutString(ctx, c.kv, data.KeyProfileImage, url); err != nil {
		return err
	}
	c.profile.Avatar = url
	return nil
}

// Close writes the current profile back to the store.
func (c *Context) Close(ctx context.Context) error {
	c.mu.RLock()
	p := c.profile
	c.mu.RUnlock()
	if err := data.PutString(ctx, c.kv, data.KeyUserName, p.Name); err != nil {
		return err
	}
	return data.PutString(ctx, c.kv, data.KeyProfileImage, p.Avatar)
}

// DarkMode reads the stored dark mode preference. Absent or unparseable
// values mean light mode.
func DarkMode(ctx context.Context, kv data.KV) (bool, error) {
	v, ok, err := data.GetString(ctx, kv, data.KeyDarkMode)
	if err != nil || !ok {
		return false, err
	}
	on, err := strconv.ParseBool(v)
	if err != nil {
		return false, nil
	}
	return on, nil
}

// SetDarkMode stores the dark mode preference as "true" or "false".
func SetDarkMode(ctx context.Context, kv data.KV, on bool) error {
	return data.PutString(ctx, kv, data.KeyDarkMode, strconv.FormatBool(on))
}
