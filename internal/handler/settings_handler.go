package handler

import (
	"context"
	"errors"
	"fmt"
	"go-admin-dashboard/internal/data"
	"go-admin-dashboard/internal/identity"
	"go-admin-dashboard/internal/media"
	"go-admin-dashboard/internal/middleware"
	"go-admin-dashboard/internal/service"
	"go-admin-dashboard/internal/session"
	"net/http"
	"strconv"
	"strings"
)

// ProfileEditor reads and changes the current display identity.
type ProfileEditor interface {
	Profile() identity.Profile
	SetName(ctx context.Context, name string) error
	SetAvatar(ctx context.Context, url string) error
}

var _ ProfileEditor = (*identity.Context)(nil)

// SettingsHandler serves the profile and display preference pages.
type SettingsHandler struct {
	*Base
	profile  ProfileEditor
	kv       data.KV
	media    *media.Store
	activity *service.ActivityLog
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(b *Base, p ProfileEditor, kv data.KV, ms *media.Store, activity *service.ActivityLog) *SettingsHandler {
	return &SettingsHandler{Base: b, profile: p, kv: kv, media: ms, activity: activity}
}

func (h *SettingsHandler) page(w http.ResponseWriter, r *http.Request, name string, fe service.FieldErrors, flash *session.Flash) *middleware.AppError {
	if fe == nil {
		fe = service.FieldErrors{}
	}
	d := map[string]interface{}{
		"Title":  "Settings",
		"Name":   name,
		"Errors": fe,
	}
	if flash != nil {
		d["Flash"] = flash
	}
	return h.render(w, r, "settings.html", d)
}

// showHandler renders the settings page.
func (h *SettingsHandler) showHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return h.page(w, r, h.profile.Profile().Name, nil, nil)
}

// profileHandler commits the submitted display name.
func (h *SettingsHandler) profileHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		fe := service.FieldErrors{}
		fe.Add("name", "Name is required")
		return h.page(w, r, name, fe, nil)
	}
	if err := h.profile.SetName(r.Context(), name); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to save profile", Code: http.StatusInternalServerError}
	}
	h.record(r.Context(), fmt.Sprintf("Profile name changed to %q", name))
	return h.finish(w, r, session.KindSuccess, "Profile updated successfully!", "/settings")
}

// avatarHandler stores the selected image and makes it the avatar. A
// rejected file keeps the current avatar.
func (h *SettingsHandler) avatarHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if appErr := parseForm(w, r, h.media.MaxBytes()+multipartMemory); appErr != nil {
		return appErr
	}
	file, header, err := r.FormFile("avatar")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return h.redirect(w, r, "/settings")
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to read upload", Code: http.StatusBadRequest}
	}
	defer file.Close()

	url, err := h.media.Upload(r.Context(), header.Filename, file)
	if err != nil {
		if msg, ok := uploadMessage(err, h.media.MaxBytes()); ok {
			return h.page(w, r, h.profile.Profile().Name, nil, &session.Flash{Kind: session.KindError, Message: msg})
		}
		return &middleware.AppError{Error: err, Message: "Failed to store image", Code: http.StatusInternalServerError}
	}
	old := h.profile.Profile().Avatar
	if err := h.profile.SetAvatar(r.Context(), url); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to save profile", Code: http.StatusInternalServerError}
	}
	h.discardImage(r.Context(), h.media, old)
	h.record(r.Context(), "Profile picture changed")
	return h.finish(w, r, session.KindSuccess, "Profile picture updated successfully!", "/settings")
}

// darkModeHandler stores the dark mode preference and returns to the page
// the toggle was clicked on.
func (h *SettingsHandler) darkModeHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	on, _ := strconv.ParseBool(r.FormValue("enabled"))
	if err := identity.SetDarkMode(r.Context(), h.kv, on); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to save preference", Code: http.StatusInternalServerError}
	}
	return h.redirect(w, r, localPath(r.FormValue("return"), "/settings"))
}

func (h *SettingsHandler) record(ctx context.Context, msg string) {
	if h.activity == nil {
		return
	}
	if err := h.activity.Record(ctx, msg); err != nil {
		h.log.Error(err, "Failed to append activity log")
	}
}

// localPath returns p when it is a path on this site, otherwise fallback.
func localPath(p, fallback string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return fallback
	}
	return p
}
