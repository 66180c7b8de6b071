package middleware

import (
	"go-admin-dashboard/internal/identity"
	"go-admin-dashboard/internal/view"
	"net/http"
)

// ProfileSource provides the current display identity.
type ProfileSource interface {
	Profile() identity.Profile
}

// Identity adds the current profile to the request context so templates can
// show the user's name and avatar.
func Identity(src ProfileSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := view.WithProfile(r.Context(), src.Profile())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
