package handler

import (
	"errors"
	"fmt"
	"go-admin-dashboard/internal/data"
	"go-admin-dashboard/internal/media"
	"go-admin-dashboard/internal/middleware"
	"go-admin-dashboard/internal/service"
	"go-admin-dashboard/internal/session"
	"net/http"
)

// TrashHandler serves the FAQ soft delete and the recycle bin pages.
type TrashHandler struct {
	*Base
	faqs  *service.FAQService
	bin   *service.RecycleBin
	media *media.Store
}

// NewTrashHandler creates a new TrashHandler.
func NewTrashHandler(b *Base, faqs *service.FAQService, bin *service.RecycleBin, ms *media.Store) *TrashHandler {
	return &TrashHandler{Base: b, faqs: faqs, bin: bin, media: ms}
}

// confirmMoveHandler asks before moving an FAQ to the recycle bin.
func (h *TrashHandler) confirmMoveHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, ok := idParam(r)
	if !ok {
		return h.redirect(w, r, "/faq")
	}
	f, err := h.faqs.Get(r.Context(), id)
	if errors.Is(err, data.ErrNotFound) {
		return h.redirect(w, r, "/faq")
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load FAQ", Code: http.StatusInternalServerError}
	}
	return h.render(w, r, "confirm.html", map[string]interface{}{
		"Title":        "Are you sure?",
		"Text":         "Do you want to move this FAQ to Recycle Bin?",
		"Subject":      f.Question,
		"Action":       fmt.Sprintf("/faq/%d/delete", id),
		"ConfirmLabel": "Yes, move it!",
		"CancelLabel":  "Cancel",
	})
}

// moveHandler moves the FAQ to the recycle bin, or returns to the list when
// the confirmation was declined.
func (h *TrashHandler) moveHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, ok := idParam(r)
	if !ok || r.FormValue("confirm") != "yes" {
		return h.redirect(w, r, "/faq")
	}
	_, err := h.bin.MoveToBin(r.Context(), id)
	if errors.Is(err, data.ErrNotFound) {
		return h.redirect(w, r, "/faq")
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to move FAQ", Code: http.StatusInternalServerError}
	}
	h.log.With(map[string]interface{}{"collection": data.KeyFAQ, "id": id}).Info("Record moved to recycle bin")
	return h.finish(w, r, session.KindSuccess, "FAQ moved to Recycle Bin!", "/faq")
}

// listHandler renders the recycle bin contents.
func (h *TrashHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	items, err := h.bin.List(r.Context())
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load Recycle Bin", Code: http.StatusInternalServerError}
	}
	return h.render(w, r, "trash.html", map[string]interface{}{
		"Title": "Recycle Bin",
		"Items": items,
	})
}

// restoreHandler moves an entry back to the FAQ list.
func (h *TrashHandler) restoreHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, ok := idParam(r)
	if !ok {
		return h.redirect(w, r, "/trash")
	}
	_, err := h.bin.Restore(r.Context(), id)
	if errors.Is(err, data.ErrNotFound) {
		return h.redirect(w, r, "/trash")
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to restore FAQ", Code: http.StatusInternalServerError}
	}
	h.log.With(map[string]interface{}{"collection": data.KeyRecycleBin, "id": id}).Info("Record restored")
	return h.finish(w, r, session.KindSuccess, "FAQ restored successfully!", "/trash")
}

// confirmPurgeHandler asks before deleting an entry permanently.
func (h *TrashHandler) confirmPurgeHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, ok := idParam(r)
	if !ok {
		return h.redirect(w, r, "/trash")
	}
	f, err := h.bin.Get(r.Context(), id)
	if errors.Is(err, data.ErrNotFound) {
		return h.redirect(w, r, "/trash")
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load Recycle Bin", Code: http.StatusInternalServerError}
	}
	return h.render(w, r, "confirm.html", map[string]interface{}{
		"Title":        "Are you sure?",
		"Text":         "You will not be able to recover this item!",
		"Subject":      f.Question,
		"Action":       fmt.Sprintf("/trash/%d/delete", id),
		"ConfirmLabel": "Yes, delete it!",
		"CancelLabel":  "No, keep it",
	})
}

// purgeHandler deletes the entry permanently, or reports the cancellation.
func (h *TrashHandler) purgeHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, ok := idParam(r)
	if !ok {
		return h.redirect(w, r, "/trash")
	}
	if r.FormValue("confirm") != "yes" {
		return h.finish(w, r, session.KindInfo, "FAQ deletion canceled.", "/trash")
	}
	purged, err := h.bin.Purge(r.Context(), id)
	if errors.Is(err, data.ErrNotFound) {
		return h.redirect(w, r, "/trash")
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to delete FAQ", Code: http.StatusInternalServerError}
	}
	h.discardImage(r.Context(), h.media, purged.Picture)
	h.log.With(map[string]interface{}{"collection": data.KeyRecycleBin, "id": id}).Info("Record purged")
	return h.finish(w, r, session.KindSuccess, "FAQ deleted permanently!", "/trash")
}
