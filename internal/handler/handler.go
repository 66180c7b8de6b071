package handler

import (
	"context"
	"errors"
	"fmt"
	"go-admin-dashboard/internal/logger"
	"go-admin-dashboard/internal/media"
	"go-admin-dashboard/internal/middleware"
	"go-admin-dashboard/internal/service"
	"go-admin-dashboard/internal/session"
	"go-admin-dashboard/internal/view"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// multipartMemory is how much of a multipart form is kept in memory.
const multipartMemory = 8 << 20

// Base holds the dependencies shared by every page handler.
type Base struct {
	view     *view.View
	sessions session.Manager
	log      logger.Logger
	delay    time.Duration
	pageSize int
}

// NewBase creates a Base. A positive delay shows an interstitial page with the
// notification before navigating; zero redirects immediately.
func NewBase(v *view.View, sm session.Manager, log logger.Logger, delay time.Duration, pageSize int) *Base {
	return &Base{view: v, sessions: sm, log: log, delay: delay, pageSize: pageSize}
}

// render executes a page template, adding any pending notification.
func (b *Base) render(w http.ResponseWriter, r *http.Request, name string, data map[string]interface{}) *middleware.AppError {
	if data == nil {
		data = make(map[string]interface{})
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = session.PopFlash(r.Context(), b.sessions)
	}
	if err := b.view.Render(w, r, name, data); err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to render page", Code: http.StatusInternalServerError}
	}
	return nil
}

// finish notifies the user and navigates to target, either after the
// configured delay or straight away.
func (b *Base) finish(w http.ResponseWriter, r *http.Request, kind, message, target string) *middleware.AppError {
	if b.delay <= 0 {
		session.PutFlash(r.Context(), b.sessions, kind, message)
		http.Redirect(w, r, target, http.StatusSeeOther)
		return nil
	}
	return b.render(w, r, "redirect.html", map[string]interface{}{
		"Title":        "Redirecting",
		"Flash":        &session.Flash{Kind: kind, Message: message},
		"Target":       target,
		"DelayMS":      b.delay.Milliseconds(),
		"DelaySeconds": int(math.Ceil(b.delay.Seconds())),
	})
}

// redirect navigates to target without a notification.
func (b *Base) redirect(w http.ResponseWriter, r *http.Request, target string) *middleware.AppError {
	http.Redirect(w, r, target, http.StatusSeeOther)
	return nil
}

// query reads the list state from the URL.
func (b *Base) query(r *http.Request) service.Query {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	return service.Query{
		Search:   q.Get("q"),
		Sort:     service.Sort{Key: q.Get("sort"), Desc: q.Get("dir") == "desc"},
		Page:     page,
		PageSize: b.pageSize,
	}
}

// parseForm parses url-encoded and multipart bodies up to limit bytes.
func parseForm(w http.ResponseWriter, r *http.Request, limit int64) *middleware.AppError {
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	err := r.ParseMultipartForm(multipartMemory)
	if err == nil || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &middleware.AppError{Error: err, Message: "Request is too large", Code: http.StatusRequestEntityTooLarge}
	}
	return &middleware.AppError{Error: err, Message: "Invalid form data", Code: http.StatusBadRequest}
}

// idParam reads the numeric {id} URL parameter.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// uploadMessage turns a media error into the notification shown to the user.
func uploadMessage(err error, maxBytes int64) (string, bool) {
	switch {
	case errors.Is(err, media.ErrUnsupportedType):
		return "Only PNG, JPEG, and JPG images are allowed!", true
	case errors.Is(err, media.ErrTooLarge):
		return fmt.Sprintf("Images must be smaller than %d MB!", maxBytes>>20), true
	case errors.Is(err, media.ErrEmpty):
		return "The selected image is empty!", true
	}
	return "", false
}

// listState builds the links of a list page.
type listState struct {
	Path  string
	Query service.Query
}

func (l listState) link(search string, s service.Sort, page int) string {
	v := url.Values{}
	if search != "" {
		v.Set("q", search)
	}
	if s.Key != "" {
		v.Set("sort", s.Key)
		v.Set("dir", s.Dir())
	}
	if page > 1 {
		v.Set("page", strconv.Itoa(page))
	}
	if len(v) == 0 {
		return l.Path
	}
	return l.Path + "?" + v.Encode()
}

// SortURL returns the link for clicking the column header key.
func (l listState) SortURL(key string) string {
	return l.link(l.Query.Search, l.Query.Sort.Toggle(key), 1)
}

// PageURL returns the link to page n keeping search and sort.
func (l listState) PageURL(n int) string {
	return l.link(l.Query.Search, l.Query.Sort, n)
}

// SortIcon returns the direction marker for column key.
func (l listState) SortIcon(key string) string {
	if l.Query.Sort.Key != key {
		return ""
	}
	if l.Query.Sort.Desc {
		return "▼"
	}
	return "▲"
}

// discardImage deletes an image that no record refers to any more. Failures
// are logged and otherwise ignored.
func (b *Base) discardImage(ctx context.Context, ms *media.Store, ref string) {
	if err := ms.Remove(ctx, ref); err != nil {
		b.log.With(map[string]interface{}{"image": ref}).Error(err, "Failed to remove image")
	}
}
