package db

import (
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// PreviewLength is the number of characters kept in history previews.
const PreviewLength = 200

// Resume is a stored resume text.
type Resume struct {
	ID          uuid.UUID `json:"id"`
	ResumeText  string    `json:"resume_text"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Job is a stored job description.
type Job struct {
	ID             uuid.UUID `json:"id"`
	JobDescription string    `json:"job_description"`
	ContentHash    string    `json:"content_hash"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// AnalysisRecord is a stored analysis joined with its resume and job texts.
type AnalysisRecord struct {
	ID                   uuid.UUID       `json:"id"`
	ResumeID             uuid.UUID       `json:"resume_id"`
	JobID                *uuid.UUID      `json:"job_id"`
	MatchScore           *float64        `json:"match_score"`
	ATSScore             float64         `json:"ats_score"`
	QualityScore         float64         `json:"quality_score"`
	ModelUsed            string          `json:"model_used"`
	ATSFlags             json.RawMessage `json:"ats_flags"`
	PowerVerbSuggestions json.RawMessage `json:"power_verb_suggestions"`
	MatchDetails         json.RawMessage `json:"match_details"`
	QualityFeatures      json.RawMessage `json:"quality_features"`
	Insights             json.RawMessage `json:"insights"`
	CreatedAt            time.Time       `json:"created_at"`
	ResumeText           string          `json:"resume_text"`
	JobDescription       *string         `json:"job_description"`
}

// HistoryItem is one row of the analysis history listing.
type HistoryItem struct {
	ID            uuid.UUID  `json:"id"`
	ResumeID      uuid.UUID  `json:"resume_id"`
	JobID         *uuid.UUID `json:"job_id"`
	MatchScore    *float64   `json:"match_score"`
	ATSScore      float64    `json:"ats_score"`
	QualityScore  float64    `json:"quality_score"`
	ModelUsed     string     `json:"model_used"`
	CreatedAt     time.Time  `json:"created_at"`
	ResumePreview string     `json:"resume_preview"`
	JDPreview     *string    `json:"jd_preview"`
}

// Preview truncates text to n characters, marking the cut with "...".
func Preview(text string, n int) string {
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "..."
}
