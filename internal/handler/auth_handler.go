package handler

import (
	"go-admin-dashboard/internal/middleware"
	"go-admin-dashboard/internal/session"
	"net/http"
)

// AuthHandler serves the sign in and sign up pages. Credentials are not
// verified; submitting a form only navigates.
type AuthHandler struct {
	*Base
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(b *Base) *AuthHandler {
	return &AuthHandler{Base: b}
}

// loginHandler renders the sign in form.
func (h *AuthHandler) loginHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return h.render(w, r, "login.html", map[string]interface{}{"Title": "Sign In"})
}

// loginSubmitHandler accepts any credentials and opens the dashboard.
func (h *AuthHandler) loginSubmitHandler(w http.ResponseWriter, r *http.Request) {
	h.log.With(map[string]interface{}{"email": r.FormValue("email")}).Debug("Sign in submitted")
	http.Redirect(w, r, "/achievements", http.StatusSeeOther)
}

// registerHandler renders the sign up form.
func (h *AuthHandler) registerHandler(w http.ResponseWriter, r *http.Request) *middleware.AppError {
	return h.render(w, r, "register.html", map[string]interface{}{"Title": "Sign Up"})
}

// registerSubmitHandler accepts the form and continues to sign in.
func (h *AuthHandler) registerSubmitHandler(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
}

// handleLogout clears the session and returns to the sign in page.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		h.log.Error(err, "Failed to destroy session")
	}
	session.PutFlash(r.Context(), h.sessions, session.KindInfo, "Logged out!")
	http.Redirect(w, r, "/auth/login", http.StatusFound)
}
