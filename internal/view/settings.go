package view

import (
	"context"
	"go-admin-dashboard/internal/identity"
)

type settingsKey string

const (
	// DarkModeKey is the key for the dark mode preference in the request context.
	DarkModeKey settingsKey = "darkMode"
	// ProfileKey is the key for the current identity profile in the request context.
	ProfileKey settingsKey = "profile"
)

// WithDarkMode returns a copy of ctx carrying the dark mode preference.
func WithDarkMode(ctx context.Context, on bool) context.Context {
	return context.WithValue(ctx, DarkModeKey, on)
}

// IsDarkMode returns true if dark mode is enabled in the request context.
func IsDarkMode(ctx context.Context) bool {
	on, ok := ctx.Value(DarkModeKey).(bool)
	return ok && on
}

// WithProfile returns a copy of ctx carrying the current profile.
func WithProfile(ctx context.Context, p identity.Profile) context.Context {
	return context.WithValue(ctx, ProfileKey, p)
}

// ProfileFrom returns the profile stored in ctx, or the zero profile.
func ProfileFrom(ctx context.Context) identity.Profile {
	p, _ := ctx.Value(ProfileKey).(identity.Profile)
	return p
}
