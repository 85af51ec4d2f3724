package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resumesense/internal/ingestion"
)

// -----------------------------------------------------------------------------
// Resume Methods
// -----------------------------------------------------------------------------

// InsertResume stores resume text and returns its ID. Identical text maps to
// the existing row.
func (db *DB) InsertResume(ctx context.Context, text string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (id, resume_text, content_hash)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (content_hash) DO UPDATE SET updated_at = NOW()
		 RETURNING id`,
		uuid.New(), text, ingestion.ContentHash(text),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert resume: %w", err)
	}
	return id, nil
}

// GetResume retrieves a resume by ID. Returns nil, nil when absent.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var r Resume
	err := db.pool.QueryRow(ctx,
		`SELECT id, resume_text, content_hash, created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.ResumeText, &r.ContentHash, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return &r, nil
}
