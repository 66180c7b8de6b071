package handler

import (
	"go-admin-dashboard/internal/data"
	"go-admin-dashboard/internal/logger"
	mw "go-admin-dashboard/internal/middleware"
	"go-admin-dashboard/internal/service"
	"go-admin-dashboard/internal/session"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Handlers groups every page handler served by the router.
type Handlers struct {
	Achievements *ContentHandler[data.Achievement]
	Activities   *ContentHandler[data.Activity]
	News         *ContentHandler[data.News]
	FAQ          *ContentHandler[data.FAQ]
	Trash        *TrashHandler
	Settings     *SettingsHandler
	Auth         *AuthHandler
	Log          *LogHandler
	Media        *MediaHandler
	Export       *ExportHandler
}

// RouterDeps are the cross-cutting pieces the router wires around the handlers.
type RouterDeps struct {
	Log      logger.Logger
	Sessions session.Manager
	Error    func(mw.AppHandler) http.Handler
	Identity func(http.Handler) http.Handler
	DarkMode func(http.Handler) http.Handler
	Static   fs.FS
}

// NewRouter creates and configures a new chi router.
func NewRouter(h Handlers, deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	e := deps.Error

	// A good base middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(deps.Log))
	r.Use(middleware.Recoverer)

	r.Get("/robots.txt", h.Export.robotsHandler)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(deps.Static))))
	r.Method(http.MethodGet, "/media/{id}", e(h.Media.serveHandler))

	r.Group(func(r chi.Router) {
		r.Use(deps.Sessions.LoadAndSave)
		r.Use(deps.Identity)
		r.Use(deps.DarkMode)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/achievements", http.StatusFound)
		})

		// Authentication routes
		r.Method(http.MethodGet, "/auth/login", e(h.Auth.loginHandler))
		r.Post("/auth/login", h.Auth.loginSubmitHandler)
		r.Method(http.MethodGet, "/auth/register", e(h.Auth.registerHandler))
		r.Post("/auth/register", h.Auth.registerSubmitHandler)
		r.Post("/auth/logout", h.Auth.handleLogout)

		content(r, e, h.Achievements, true)
		content(r, e, h.Activities, true)
		content(r, e, h.News, true)
		content(r, e, h.FAQ, false)

		// FAQ soft delete and recycle bin
		r.Method(http.MethodGet, "/faq/{id}/delete", e(h.Trash.confirmMoveHandler))
		r.Method(http.MethodPost, "/faq/{id}/delete", e(h.Trash.moveHandler))
		r.Method(http.MethodGet, "/trash", e(h.Trash.listHandler))
		r.Method(http.MethodPost, "/trash/{id}/restore", e(h.Trash.restoreHandler))
		r.Method(http.MethodGet, "/trash/{id}/delete", e(h.Trash.confirmPurgeHandler))
		r.Method(http.MethodPost, "/trash/{id}/delete", e(h.Trash.purgeHandler))

		r.Method(http.MethodGet, "/settings", e(h.Settings.showHandler))
		r.Method(http.MethodPost, "/settings/profile", e(h.Settings.profileHandler))
		r.Method(http.MethodPost, "/settings/avatar", e(h.Settings.avatarHandler))
		r.Method(http.MethodPost, "/settings/dark-mode", e(h.Settings.darkModeHandler))

		r.Method(http.MethodGet, "/log", e(h.Log.listHandler))
		r.Get("/export/{key}.json", h.Export.exportHandler)
	})

	return r
}

// content registers the list, form and optionally the delete routes of one
// content type.
func content[T service.Entity[T]](r chi.Router, e func(mw.AppHandler) http.Handler, h *ContentHandler[T], withDelete bool) {
	r.Method(http.MethodGet, h.listPath, e(h.listHandler))
	r.Method(http.MethodGet, h.addPath, e(h.newHandler))
	r.Method(http.MethodPost, h.addPath, e(h.createHandler))
	r.Method(http.MethodGet, h.editPath+"/{id}", e(h.editHandler))
	r.Method(http.MethodPost, h.editPath+"/{id}", e(h.updateHandler))
	if withDelete {
		r.Method(http.MethodPost, h.listPath+"/{id}/delete", e(h.deleteHandler))
	}
}
