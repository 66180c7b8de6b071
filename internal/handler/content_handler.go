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
	"strings"
)

// imageField describes the optional image attached to a record.
type imageField[T any] struct {
	Name string
	Get  func(T) string
	Set  func(T, string) T
}

// ContentHandler serves the list, create, edit and delete pages of one
// content type.
type ContentHandler[T service.Entity[T]] struct {
	*Base
	svc        *service.ContentService[T]
	media      *media.Store
	collection string
	title      string
	listPath   string
	addPath    string
	editPath   string
	listTmpl   string
	formTmpl   string
	decode     func(r *http.Request, rec T) T
	image      imageField[T]
}

func (h *ContentHandler[T]) fields(id int64) map[string]interface{} {
	return map[string]interface{}{"collection": h.collection, "id": id}
}

// listHandler renders one page of the collection.
func (h *ContentHandler[T]) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	res, err := h.svc.List(r.Context(), h.query(r))
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load " + h.title, Code: http.StatusInternalServerError}
	}
	return h.render(w, r, h.listTmpl, map[string]interface{}{
		"Title":   h.title,
		"Result":  res,
		"List":    listState{Path: h.listPath, Query: res.Query},
		"AddPath": h.addPath,
	})
}

// newHandler renders the empty create form.
func (h *ContentHandler[T]) newHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	var rec T
	return h.form(w, r, rec, nil, nil)
}

// createHandler validates the submitted form and appends a new record.
func (h *ContentHandler[T]) createHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	if appErr := parseForm(w, r, h.media.MaxBytes()+multipartMemory); appErr != nil {
		return appErr
	}
	var zero T
	rec := h.decode(r, zero)
	rec, flash, appErr := h.applyImage(r, rec, "")
	if appErr != nil {
		return appErr
	}
	if flash != nil {
		return h.form(w, r, rec, nil, flash)
	}

	created, err := h.svc.Create(r.Context(), rec)
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return h.form(w, r, rec, verr.Fields, nil)
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to save " + h.svc.Label(), Code: http.StatusInternalServerError}
	}
	h.log.With(h.fields(created.RecordID())).Info("Record created")
	return h.finish(w, r, session.KindSuccess, h.svc.Label()+" added successfully!", h.listPath)
}

// editHandler renders the form pre-filled with the stored record. Unknown ids
// go back to the list.
func (h *ContentHandler[T]) editHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	rec, appErr, found := h.load(r)
	if appErr != nil {
		return appErr
	}
	if !found {
		return h.redirect(w, r, h.listPath)
	}
	return h.form(w, r, rec, nil, nil)
}

// updateHandler replaces the stored record with the submitted form.
func (h *ContentHandler[T]) updateHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	prev, appErr, found := h.load(r)
	if appErr != nil {
		return appErr
	}
	if !found {
		return h.redirect(w, r, h.listPath)
	}
	if appErr := parseForm(w, r, h.media.MaxBytes()+multipartMemory); appErr != nil {
		return appErr
	}

	rec := h.decode(r, prev)
	rec, flash, appErr := h.applyImage(r, rec, h.imageOf(prev))
	if appErr != nil {
		return appErr
	}
	if flash != nil {
		return h.form(w, r, rec, nil, flash)
	}

	_, err := h.svc.Update(r.Context(), rec)
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		return h.form(w, r, rec, verr.Fields, nil)
	case errors.Is(err, data.ErrNotFound):
		return h.redirect(w, r, h.listPath)
	case err != nil:
		return &middleware.AppError{Error: err, Message: "Failed to update " + h.svc.Label(), Code: http.StatusInternalServerError}
	}
	if old := h.imageOf(prev); old != h.imageOf(rec) {
		h.discardImage(r.Context(), h.media, old)
	}
	h.log.With(h.fields(rec.RecordID())).Info("Record updated")
	return h.finish(w, r, session.KindSuccess, h.svc.Label()+" updated successfully!", h.listPath)
}

// deleteHandler removes a record immediately.
func (h *ContentHandler[T]) deleteHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	id, ok := idParam(r)
	if !ok {
		return h.redirect(w, r, h.listPath)
	}
	removed, err := h.svc.Delete(r.Context(), id)
	if errors.Is(err, data.ErrNotFound) {
		return h.redirect(w, r, h.listPath)
	}
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to delete " + h.svc.Label(), Code: http.StatusInternalServerError}
	}
	h.discardImage(r.Context(), h.media, h.imageOf(removed))
	h.log.With(h.fields(id)).Info("Record deleted")
	return h.finish(w, r, session.KindSuccess, h.svc.Label()+" deleted successfully!", h.listPath)
}

// load fetches the record named by {id}. found is false for malformed or
// unknown ids.
func (h *ContentHandler[T]) load(r *http.Request) (T, *middleware.AppError, bool) {
	var zero T
	id, ok := idParam(r)
	if !ok {
		return zero, nil, false
	}
	rec, err := h.svc.Get(r.Context(), id)
	if errors.Is(err, data.ErrNotFound) {
		return zero, nil, false
	}
	if err != nil {
		return zero, &middleware.AppError{Error: err, Message: "Failed to load " + h.svc.Label(), Code: http.StatusInternalServerError}, false
	}
	return rec, nil, true
}

func (h *ContentHandler[T]) imageOf(rec T) string {
	if h.image.Name == "" {
		return ""
	}
	return h.image.Get(rec)
}

// applyImage settles the image of rec from the form, in order: stored, the
// reference carried by current_<field> from an earlier submit, the remove
// checkbox, a new upload. stored is the persisted image, empty on create. A
// carried reference is accepted only when it is stored or one of our own
// uploads. A rejected upload keeps the current image and returns the
// notification to show.
func (h *ContentHandler[T]) applyImage(r *http.Request, rec T, stored string) (T, *session.Flash, *middleware.AppError) {
	if h.image.Name == "" {
		return rec, nil, nil
	}
	rec = h.image.Set(rec, stored)
	if carried := r.FormValue("current_" + h.image.Name); carried == stored || strings.HasPrefix(carried, media.URLPrefix) {
		rec = h.image.Set(rec, carried)
	}
	if r.FormValue("remove_"+h.image.Name) != "" {
		rec = h.image.Set(rec, "")
	}
	file, header, err := r.FormFile(h.image.Name)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return rec, nil, nil
	}
	if err != nil {
		return rec, nil, &middleware.AppError{Error: err, Message: "Failed to read upload", Code: http.StatusBadRequest}
	}
	defer file.Close()

	url, err := h.media.Upload(r.Context(), header.Filename, file)
	if err != nil {
		if msg, ok := uploadMessage(err, h.media.MaxBytes()); ok {
			return rec, &session.Flash{Kind: session.KindError, Message: msg}, nil
		}
		return rec, nil, &middleware.AppError{Error: err, Message: "Failed to store image", Code: http.StatusInternalServerError}
	}
	return h.image.Set(rec, url), nil, nil
}

// form renders the create or edit form for rec.
func (h *ContentHandler[T]) form(w http.ResponseWriter, r *http.Request, rec T, fe service.FieldErrors, flash *session.Flash) *middleware.AppError {
	if fe == nil {
		fe = service.FieldErrors{}
	}
	action, heading := h.addPath, "Add "+h.svc.Label()
	if id := rec.RecordID(); id > 0 {
		action, heading = fmt.Sprintf("%s/%d", h.editPath, id), "Edit "+h.svc.Label()
	}
	d := map[string]interface{}{
		"Title":     heading,
		"Record":    rec,
		"Errors":    fe,
		"Action":    action,
		"IsEdit":    rec.RecordID() > 0,
		"CancelURL": h.listPath,
	}
	if h.image.Name != "" {
		d["Image"] = h.image.Get(rec)
	}
	if flash != nil {
		d["Flash"] = flash
	}
	return h.render(w, r, h.formTmpl, d)
}
