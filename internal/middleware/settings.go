package middleware

import (
	"go-admin-dashboard/internal/data"
	"go-admin-dashboard/internal/identity"
	"go-admin-dashboard/internal/logger"
	"go-admin-dashboard/internal/view"
	"net/http"
)

// DarkMode reads the stored dark mode preference and sets a corresponding
// flag in the request context for the layout template.
func DarkMode(kv data.KV, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			on, err := identity.DarkMode(r.Context(), kv)
			if err != nil {
				log.Error(err, "Failed to read dark mode preference")
			}
			next.ServeHTTP(w, r.WithContext(view.WithDarkMode(r.Context(), on)))
		})
	}
}
