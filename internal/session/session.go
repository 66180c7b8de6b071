package session

import (
	"context"
	"go-admin-dashboard/internal/config"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jmoiron/sqlx"
)

// Manager is an interface that abstracts the session management implementation.
// This allows for easier testing and dependency injection.
type Manager interface {
	LoadAndSave(next http.Handler) http.Handler
	Put(ctx context.Context, key string, val interface{})
	GetString(ctx context.Context, key string) string
	PopString(ctx context.Context, key string) string
	Destroy(ctx context.Context) error
	Remove(ctx context.Context, key string)
}

var _ Manager = (*scs.SessionManager)(nil)

// New creates a session manager persisting to the sessions table of db.
func New(cfg config.SessionConfig, db *sqlx.DB, secure bool) *scs.SessionManager {
	sm := scs.New()
	switch db.DriverName() {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	default:
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = time.Duration(cfg.Lifetime) * time.Hour
	if cfg.CookieName != "" {
		sm.Cookie.Name = cfg.CookieName
	}
	sm.Cookie.Persist = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure
	return sm
}

// Notification kinds, mirrored by CSS classes in the layout.
const (
	KindSuccess = "success"
	KindInfo    = "info"
	KindError   = "error"
)

const (
	flashMessageKey = "flash_message"
	flashKindKey    = "flash_kind"
)

// Flash is a one-shot notification shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// PutFlash stores a notification for the next page render.
func PutFlash(ctx context.Context, m Manager, kind, message string) {
	m.Put(ctx, flashKindKey, kind)
	m.Put(ctx, flashMessageKey, message)
}

// PopFlash removes and returns the pending notification, if any.
func PopFlash(ctx context.Context, m Manager) *Flash {
	msg := m.PopString(ctx, flashMessageKey)
	kind := m.PopString(ctx, flashKindKey)
	if msg == "" {
		return nil
	}
	if kind == "" {
		kind = KindInfo
	}
	return &Flash{Kind: kind, Message: msg}
}
