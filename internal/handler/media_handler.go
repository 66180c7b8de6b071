package handler

import (
	"errors"
	"go-admin-dashboard/internal/data"
	"go-admin-dashboard/internal/media"
	"go-admin-dashboard/internal/middleware"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// MediaHandler serves uploaded images.
type MediaHandler struct {
	store *media.Store
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(s *media.Store) *MediaHandler {
	return &MediaHandler{store: s}
}

func (h *MediaHandler) serveHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id := chi.URLParam(r, "id")
	m, content, err := h.store.Open(r.Context(), id)
	if errors.Is(err, data.ErrNotFound) {
		return &middleware.AppError{Error: err, Message: "Image not found", Code: http.StatusNotFound}
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load image", Code: http.StatusInternalServerError}
	}
	// Ids are never reused, so the bytes behind a URL never change.
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Header().Set("Content-Type", m.ContentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	http.ServeContent(w, r, m.ID, m.CreatedAt, content)
	return nil
}
