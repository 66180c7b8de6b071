package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
)

// Entry is one stored value together with the schema version it was written with.
type Entry struct {
	Payload       []byte `db:"payload"`
	SchemaVersion int    `db:"schema_version"`
}

// KV is the read/write surface shared by the repository and its transactions.
type KV interface {
	// Get returns nil, nil when the key has never been written.
	Get(ctx context.Context, key string) (*Entry, error)
	// Put overwrites whatever is stored under key.
	Put(ctx context.Context, key string, e Entry) error
}

// KVStore is a KV that can also run a read-modify-write cycle atomically.
type KVStore interface {
	KV
	Update(ctx context.Context, fn func(kv KV) error) error
}

// SQLKVRepository stores one JSON document per key in the kv_store table.
type SQLKVRepository struct {
	db *sqlx.DB
	// mu serialises writers so a read-modify-write never interleaves with another.
	mu sync.Mutex
}

var _ KVStore = (*SQLKVRepository)(nil)

// NewSQLKVRepository creates a new SQLKVRepository.
func NewSQLKVRepository(db *sqlx.DB) *SQLKVRepository {
	return &SQLKVRepository{db: db}
}

// Get reads the entry stored under key.
func (r *SQLKVRepository) Get(ctx context.Context, key string) (*Entry, error) {
	return sqlKV{q: r.db}.Get(ctx, key)
}

// Put overwrites the entry stored under key. Last writer wins.
func (r *SQLKVRepository) Put(ctx context.Context, key string, e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return sqlKV{q: r.db}.Put(ctx, key, e)
}

// Update runs fn inside a single transaction. Any error returned by fn rolls
// back every write fn made.
func (r *SQLKVRepository) Update(ctx context.Context, fn func(kv KV) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(sqlKV{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// sqlKV executes KV statements against either the pool or a transaction.
type sqlKV struct {
	q sqlx.ExtContext
}

func (s sqlKV) Get(ctx context.Context, key string) (*Entry, error) {
	var e Entry
	query := `SELECT payload, schema_version FROM kv_store WHERE store_key = ?`
	if err := sqlx.GetContext(ctx, s.q, &e, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}
	return &e, nil
}

func (s sqlKV) Put(ctx context.Context, key string, e Entry) error {
	// REPLACE INTO is understood by both SQLite and MySQL.
	query := `REPLACE INTO kv_store (store_key, payload, schema_version, updated_at) VALUES (?, ?, ?, ?)`
	if _, err := s.q.ExecContext(ctx, query, key, string(e.Payload), e.SchemaVersion, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to put key %q: %w", key, err)
	}
	return nil
}

// GetString reads a scalar value. ok is false when the key is absent.
func GetString(ctx context.Context, kv KV, key string) (value string, ok bool, err error) {
	e, err := kv.Get(ctx, key)
	if err != nil || e == nil {
		return "", false, err
	}
	return string(e.Payload), true, nil
}

// PutString writes a scalar value.
func PutString(ctx context.Context, kv KV, key, value string) error {
	return kv.Put(ctx, key, Entry{Payload: []byte(value), SchemaVersion: 1})
}
