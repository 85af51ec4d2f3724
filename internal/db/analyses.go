package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resumesense/internal/types"
)

// AnalysisInput links an engine result to its stored resume and job.
type AnalysisInput struct {
	ResumeID uuid.UUID
	JobID    *uuid.UUID
	Result   *types.AnalysisResult
}

// analysisRow holds the column values derived from an AnalysisInput.
type analysisRow struct {
	matchScore      *float64
	atsFlags        []byte
	powerVerbs      []byte
	matchDetails    []byte
	qualityFeatures []byte
	insights        []byte
}

func newAnalysisRow(input *AnalysisInput) (*analysisRow, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("analysis result is required")
	}
	result := input.Result
	row := &analysisRow{}

	var err error
	if row.atsFlags, err = json.Marshal(result.ATS); err != nil {
		return nil, fmt.Errorf("failed to marshal ats report: %w", err)
	}
	if row.powerVerbs, err = json.Marshal(result.PowerVerbs); err != nil {
		return nil, fmt.Errorf("failed to marshal power verbs: %w", err)
	}
	if row.qualityFeatures, err = json.Marshal(result.Quality.Features); err != nil {
		return nil, fmt.Errorf("failed to marshal quality features: %w", err)
	}
	if row.insights, err = json.Marshal(result.Insights); err != nil {
		return nil, fmt.Errorf("failed to marshal insights: %w", err)
	}
	if result.Match != nil {
		score := result.Match.MatchScore
		row.matchScore = &score
		if row.matchDetails, err = json.Marshal(result.Match); err != nil {
			return nil, fmt.Errorf("failed to marshal match details: %w", err)
		}
	}
	return row, nil
}

// -----------------------------------------------------------------------------
// Analysis Result Methods
// -----------------------------------------------------------------------------

// InsertAnalysis stores an analysis result and returns its ID.
func (db *DB) InsertAnalysis(ctx context.Context, input *AnalysisInput) (uuid.UUID, error) {
	row, err := newAnalysisRow(input)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO analysis_results (id, resume_id, job_id, match_score, ats_score,
		                               quality_score, model_used, ats_flags,
		                               power_verb_suggestions, match_details,
		                               quality_features, insights)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		id, input.ResumeID, input.JobID, row.matchScore, input.Result.ATS.ATSScore,
		input.Result.Quality.QualityScore, input.Result.Quality.ModelUsed, row.atsFlags,
		row.powerVerbs, row.matchDetails, row.qualityFeatures, row.insights,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves an analysis with its resume and job texts. Returns
// nil, nil when absent.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var a AnalysisRecord
	var atsFlags, powerVerbs, matchDetails, features, insights []byte

	err := db.pool.QueryRow(ctx,
		`SELECT a.id, a.resume_id, a.job_id, a.match_score, a.ats_score, a.quality_score,
		        a.model_used, a.ats_flags, a.power_verb_suggestions, a.match_details,
		        a.quality_features, a.insights, a.created_at, r.resume_text, j.job_description
		 FROM analysis_results a
		 JOIN resumes r ON r.id = a.resume_id
		 LEFT JOIN jobs j ON j.id = a.job_id
		 WHERE a.id = $1`,
		id,
	).Scan(&a.ID, &a.ResumeID, &a.JobID, &a.MatchScore, &a.ATSScore, &a.QualityScore,
		&a.ModelUsed, &atsFlags, &powerVerbs, &matchDetails,
		&features, &insights, &a.CreatedAt, &a.ResumeText, &a.JobDescription)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	a.ATSFlags = atsFlags
	a.PowerVerbSuggestions = powerVerbs
	a.MatchDetails = matchDetails
	a.QualityFeatures = features
	a.Insights = insights
	return &a, nil
}

// ListHistory returns the newest analyses first, at most limit rows.
func (db *DB) ListHistory(ctx context.Context, limit int) ([]HistoryItem, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT a.id, a.resume_id, a.job_id, a.match_score, a.ats_score, a.quality_score,
		        a.model_used, a.created_at, r.resume_text, j.job_description
		 FROM analysis_results a
		 JOIN resumes r ON r.id = a.resume_id
		 LEFT JOIN jobs j ON j.id = a.job_id
		 ORDER BY a.created_at DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	items := []HistoryItem{}
	for rows.Next() {
		var item HistoryItem
		var resumeText string
		var jobDescription *string
		if err := rows.Scan(&item.ID, &item.ResumeID, &item.JobID, &item.MatchScore,
			&item.ATSScore, &item.QualityScore, &item.ModelUsed, &item.CreatedAt,
			&resumeText, &jobDescription); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		item.ResumePreview = Preview(resumeText, PreviewLength)
		if jobDescription != nil {
			jd := Preview(*jobDescription, PreviewLength)
			item.JDPreview = &jd
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return items, nil
}
