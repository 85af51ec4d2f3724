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
// Job Description Methods
// -----------------------------------------------------------------------------

// InsertJob stores a job description and returns its ID. Identical text maps
// to the existing row.
func (db *DB) InsertJob(ctx context.Context, description string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, job_description, content_hash)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (content_hash) DO UPDATE SET updated_at = NOW()
		 RETURNING id`,
		uuid.New(), description, ingestion.ContentHash(description),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job description by ID. Returns nil, nil when absent.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	var j Job
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_description, content_hash, created_at, updated_at
		 FROM jobs WHERE id = $1`,
		id,
	).Scan(&j.ID, &j.JobDescription, &j.ContentHash, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &j, nil
}
