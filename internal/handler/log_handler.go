package handler

import (
	"go-admin-dashboard/internal/middleware"
	"go-admin-dashboard/internal/service"
	"net/http"
)

// LogHandler serves the activity log page.
type LogHandler struct {
	*Base
	activity *service.ActivityLog
}

// NewLogHandler creates a new LogHandler.
func NewLogHandler(b *Base, activity *service.ActivityLog) *LogHandler {
	return &LogHandler{Base: b, activity: activity}
}

func (h *LogHandler) listHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	q := service.Query{Search: r.URL.Query().Get("q")}
	res, err := h.activity.List(r.Context(), q)
	if err != nil {
		return &middleware.AppError{Error: err, Message: "Failed to load activity log", Code: http.StatusInternalServerError}
	}
	return h.render(w, r, "log.html", map[string]interface{}{
		"Title":  "Activity Log",
		"Result": res,
	})
}
