package main

import (
	"context"
	"errors"
	"fmt"
	"go-admin-dashboard/internal/cache"
	"go-admin-dashboard/internal/config"
	"go-admin-dashboard/internal/data"
	"go-admin-dashboard/internal/handler"
	"go-admin-dashboard/internal/identity"
	"go-admin-dashboard/internal/logger"
	"go-admin-dashboard/internal/media"
	"go-admin-dashboard/internal/middleware"
	"go-admin-dashboard/internal/service"
	"go-admin-dashboard/internal/session"
	"go-admin-dashboard/internal/view"
	"go-admin-dashboard/web"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, nil)

	// --- Database Initialization and Migration ---
	log.Info("Connecting to the database...")
	db, err := data.NewDB(cfg.DB)
	if err != nil {
		log.Fatal(err, "Failed to connect to database")
	}
	defer db.Close()
	log.Info("Database connection successful.")

	log.Info("Applying database migrations...")
	if err := data.ApplyMigrations(db); err != nil {
		log.Fatal(err, "Failed to apply migrations")
	}
	log.Info("Migrations applied successfully.")

	// --- Session Management Setup ---
	sessionManager := session.New(cfg.Session, db, cfg.Server.TLS.Enabled)

	// --- Cache Initialization ---
	log.Info("Initializing SQLite cache...")
	renderCache, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal(err, "Failed to initialize cache")
	}
	defer renderCache.Close()
	if n, err := renderCache.Purge(); err != nil {
		log.Error(err, "Failed to purge expired cache entries")
	} else if n > 0 {
		log.Info(fmt.Sprintf("Purged %d expired cache entries.", n))
	}
	if n, err := renderCache.Len(); err == nil {
		log.With(map[string]interface{}{"entries": n}).Info("Cache initialized.")
	}

	// --- Dependency Injection and Handler Initialization ---
	// Initialize the application layers, injecting dependencies from top to bottom.
	kv := data.NewSQLKVRepository(db)
	mediaStore := media.NewStore(data.NewMediaRepository(db), cfg.UI.MaxUploadMB)
	ids := data.NewIDGenerator()
	activityLog := service.NewActivityLog(kv, ids)
	achievements := service.NewAchievementService(kv, ids, activityLog)
	activities := service.NewActivityService(kv, ids, activityLog)
	news := service.NewNewsService(kv, ids, activityLog)
	faqs := service.NewFAQService(kv, ids, activityLog)
	recycleBin := service.NewRecycleBin(kv, activityLog)
	richText := service.NewRichText(renderCache)

	profile, err := identity.New(context.Background(), kv, identity.Profile{
		Name:   cfg.UI.DefaultUserName,
		Avatar: cfg.UI.DefaultAvatar,
	})
	if err != nil {
		log.Fatal(err, "Failed to load user profile")
	}

	// --- View Template Initialization ---
	log.Info("Initializing view templates...")
	viewService, err := view.New(web.TemplateFS, view.RichTextFuncs(richText))
	if err != nil {
		log.Fatal(err, "Failed to initialize view templates")
	}
	log.Info("View templates initialized.")

	base := handler.NewBase(viewService, sessionManager, log,
		time.Duration(cfg.UI.RedirectDelayMS)*time.Millisecond, cfg.UI.PageSize)
	handlers := handler.Handlers{
		Achievements: handler.NewAchievementHandler(base, achievements, mediaStore),
		Activities:   handler.NewActivityHandler(base, activities, mediaStore),
		News:         handler.NewNewsHandler(base, news, mediaStore),
		FAQ:          handler.NewFAQHandler(base, faqs, mediaStore),
		Trash:        handler.NewTrashHandler(base, faqs, recycleBin, mediaStore),
		Settings:     handler.NewSettingsHandler(base, profile, kv, mediaStore, activityLog),
		Auth:         handler.NewAuthHandler(base),
		Log:          handler.NewLogHandler(base, activityLog),
		Media:        handler.NewMediaHandler(mediaStore),
		Export:       handler.NewExportHandler(kv),
	}

	// --- Router Setup ---
	// The router is the central hub that directs incoming requests to the correct handlers.
	router := handler.NewRouter(handlers, handler.RouterDeps{
		Log:      log,
		Sessions: sessionManager,
		Error:    middleware.Error(log, viewService),
		Identity: middleware.Identity(profile),
		DarkMode: middleware.DarkMode(kv, log),
		Static:   web.StaticFS,
	})

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if cfg.Server.TLS.Enabled {
			log.Info(fmt.Sprintf("Starting HTTPS server on %s", server.Addr))
			if err := server.ListenAndServeTLS(cfg.Server.TLS.CertFile, cfg.Server.TLS.KeyFile); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTPS server")
			}
		} else {
			log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal(err, "Could not start HTTP server")
			}
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	if err := profile.Close(ctx); err != nil {
		log.Error(err, "Failed to flush user profile")
	}
	log.Info("Server exiting")
}
