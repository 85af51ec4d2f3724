package server

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/resumesense/internal/db"
)

// Store is the persistence used by the API. *db.DB satisfies it.
type Store interface {
	InsertResume(ctx context.Context, text string) (uuid.UUID, error)
	InsertJob(ctx context.Context, description string) (uuid.UUID, error)
	InsertAnalysis(ctx context.Context, input *db.AnalysisInput) (uuid.UUID, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	GetJob(ctx context.Context, id uuid.UUID) (*db.Job, error)
	GetAnalysis(ctx context.Context, id uuid.UUID) (*db.AnalysisRecord, error)
	ListHistory(ctx context.Context, limit int) ([]db.HistoryItem, error)
	Ping(ctx context.Context) error
	Close()
}

var _ Store = (*db.DB)(nil)
