package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"go-admin-dashboard/internal/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS rendered (
	key        TEXT PRIMARY KEY,
	html       BLOB NOT NULL,
	expires_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_rendered_expires_at ON rendered (expires_at);
`

// Cache keeps rendered rich text in a SQLite file, keyed by a digest of the
// source. Expired rows read as misses and are dropped by Purge.
type Cache struct {
	db  *sqlx.DB
	ttl time.Duration

	get *sqlx.Stmt
	set *sqlx.Stmt
}

// New opens the cache file named by cfg and prepares its statements.
func New(cfg config.CacheConfig) (*Cache, error) {
	db, err := sqlx.Connect("sqlite", cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sqlite cache: %w", err)
	}
	// A single connection keeps in-memory caches on one database.
	db.SetMaxOpenConns(1)

	c := &Cache{db: db, ttl: time.Duration(cfg.TTLMinutes) * time.Minute}
	if c.ttl <= 0 {
		c.ttl = time.Hour
	}
	if err := c.init(); err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

func (c *Cache) init() error {
	if _, err := c.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return fmt.Errorf("failed to set WAL mode on sqlite cache: %w", err)
	}
	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create cache schema: %w", err)
	}

	var err error
	if c.get, err = c.db.Preparex(`SELECT html FROM rendered WHERE key = ? AND expires_at >= ?`); err != nil {
		return fmt.Errorf("failed to prepare cache lookup: %w", err)
	}
	if c.set, err = c.db.Preparex(`INSERT INTO rendered (key, html, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET html = excluded.html, expires_at = excluded.expires_at`); err != nil {
		return fmt.Errorf("failed to prepare cache store: %w", err)
	}
	return nil
}

// TTL returns how long rendered output stays valid.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Get returns the rendered bytes for key, or nil on a miss.
func (c *Cache) Get(key string) ([]byte, error) {
	var html []byte
	err := c.get.Get(&html, key, time.Now().Unix())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered %s: %w", key, err)
	}
	return html, nil
}

// Set stores html under key until ttl has passed.
func (c *Cache) Set(key string, html []byte, ttl time.Duration) error {
	if _, err := c.set.Exec(key, html, time.Now().Add(ttl).Unix()); err != nil {
		return fmt.Errorf("failed to store rendered %s: %w", key, err)
	}
	return nil
}

// Purge removes every expired row and returns how many were dropped.
func (c *Cache) Purge() (int64, error) {
	res, err := c.db.Exec(`DELETE FROM rendered WHERE expires_at < ?`, time.Now().Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	return res.RowsAffected()
}

// Len reports how many rows are stored, expired ones included.
func (c *Cache) Len() (int, error) {
	var n int
	if err := c.db.Get(&n, `SELECT COUNT(*) FROM rendered`); err != nil {
		return 0, fmt.Errorf("failed to count cache rows: %w", err)
	}
	return n, nil
}

// Close releases the statements and the database.
func (c *Cache) Close() error {
	for _, st := range []*sqlx.Stmt{c.get, c.set} {
		if st != nil {
			st.Close()
		}
	}
	return c.db.Close()
}
