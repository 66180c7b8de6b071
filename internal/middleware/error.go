package middleware

import (
	"fmt"
	"go-admin-dashboard/internal/logger"
	"go-admin-dashboard/internal/view"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// AppError is a failed request: the cause for the log, the text shown to the
// user, and the HTTP status.
type AppError struct {
	Error   error
	Message string
	Code    int
}

// AppHandler is a custom handler function type that returns an AppError.
type AppHandler func(http.ResponseWriter, *http.Request) *AppError

// Error adapts an AppHandler to http.Handler. A returned AppError or a panic
// is logged and rendered with error.html.
func Error(log logger.Logger, v *view.View) func(AppHandler) http.Handler {
	return func(next AppHandler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					log.Error(err, "Panic recovered")
					renderError(w, r, log, v, http.StatusInternalServerError, "Internal Server Error")
				}
			}()

			appErr := next(w, r)
			if appErr == nil {
				return
			}
			l := log.With(map[string]interface{}{
				"path":       r.URL.Path,
				"method":     r.Method,
				"status":     appErr.Code,
				"request_id": chimw.GetReqID(r.Context()),
			})
			if appErr.Code < http.StatusInternalServerError {
				l.Warn(fmt.Sprintf("%s: %v", appErr.Message, appErr.Error))
			} else {
				l.Error(appErr.Error, appErr.Message)
			}
			renderError(w, r, log, v, appErr.Code, appErr.Message)
		})
	}
}

func renderError(w http.ResponseWriter, r *http.Request, log logger.Logger, v *view.View, code int, text string) {
	data := map[string]interface{}{
		"StatusCode": code,
		"StatusText": text,
		"Title":      http.StatusText(code),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if err := v.Render(w, r, "error.html", data); err != nil {
		log.Error(err, "Failed to render error page")
		fmt.Fprintf(w, "Error %d: %s", code, text)
	}
}
