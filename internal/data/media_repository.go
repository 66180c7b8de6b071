package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Media is an uploaded image referenced from records as /media/{id}.
type Media struct {
	ID          string    `db:"id"`
	ContentType string    `db:"content_type"`
	Data        []byte    `db:"data"`
	CreatedAt   time.Time `db:"created_at"`
}

// MediaRepository handles database operations for uploaded images.
type MediaRepository struct {
	db *sqlx.DB
}

// NewMediaRepository creates a new MediaRepository.
func NewMediaRepository(db *sqlx.DB) *MediaRepository {
	return &MediaRepository{db: db}
}

// Save inserts a new media row.
func (r *MediaRepository) Save(ctx context.Context, m *Media) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO media (id, content_type, data, created_at) VALUES (:id, :content_type, :data, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to save media: %w", err)
	}
	return nil
}

// Get retrieves a media row by id.
func (r *MediaRepository) Get(ctx context.Context, id string) (*Media, error) {
	var m Media
	query := `SELECT id, content_type, data, created_at FROM media WHERE id = ?`
	if err := r.db.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("media %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get media: %w", err)
	}
	return &m, nil
}

// Delete removes a media row by id.
func (r *MediaRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete media: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("media %s: %w", id, ErrNotFound)
	}
	return nil
}
