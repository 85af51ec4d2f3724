package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resumesense/internal/db"
	"github.com/jonathan/resumesense/internal/features"
	"github.com/jonathan/resumesense/internal/ingestion"
	"github.com/jonathan/resumesense/internal/types"
)

// Response limits
const (
	MaxResponseFindings = 10
	DefaultHistoryLimit = 20
)

// persistTimeout bounds the database writes that follow an analysis.
const persistTimeout = 5 * time.Second

// QualityDetails is the scoring half of an analysis response.
type QualityDetails struct {
	ModelUsed string              `json:"model_used"`
	Features  types.FeatureVector `json:"features"`
}

// AnalyzeResponse represents the response for /api/analyze
type AnalyzeResponse struct {
	AnalysisID     *uuid.UUID            `json:"analysis_id,omitempty"`
	ResumeID       *uuid.UUID            `json:"resume_id,omitempty"`
	JobID          *uuid.UUID            `json:"job_id,omitempty"`
	MatchScore     *float64              `json:"match_score"`
	MatchDetails   *types.MatchResult    `json:"match_details"`
	ATSScore       float64               `json:"ats_score"`
	ATSReport      types.ATSReport       `json:"ats_report"`
	PowerVerbs     types.PowerVerbReport `json:"power_verbs"`
	QualityScore   float64               `json:"quality_score"`
	QualityDetails QualityDetails        `json:"quality_details"`
	Insights       types.Insights        `json:"insights"`
}

// HistoryResponse represents the response for /api/history
type HistoryResponse struct {
	Items []db.HistoryItem `json:"items"`
	Count int              `json:"count"`
}

// newAnalyzeResponse flattens an engine result into the API shape.
func newAnalyzeResponse(result *types.AnalysisResult) *AnalyzeResponse {
	resp := &AnalyzeResponse{
		MatchDetails: result.Match,
		ATSScore:     result.ATS.ATSScore,
		ATSReport:    result.ATS,
		PowerVerbs:   result.PowerVerbs,
		QualityScore: result.Quality.QualityScore,
		QualityDetails: QualityDetails{
			ModelUsed: result.Quality.ModelUsed,
			Features:  result.Quality.Features,
		},
		Insights: result.Insights,
	}
	if result.Match != nil {
		score := result.Match.MatchScore
		resp.MatchScore = &score
	}
	if len(resp.PowerVerbs.Findings) > MaxResponseFindings {
		resp.PowerVerbs.Findings = resp.PowerVerbs.Findings[:MaxResponseFindings]
	}
	return resp
}

// handleAnalyze runs the engine on a JSON or multipart request.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadSize)

	req, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}

	start := time.Now()
	result, err := s.engine.Analyze(r.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		s.errorFromErr(w, err)
		return
	}
	withJD := result.Match != nil
	s.metrics.ObserveAnalysis(result.Quality.ModelUsed, withJD, result.Quality.QualityScore, time.Since(start))

	resp := newAnalyzeResponse(result)
	if s.store != nil {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), persistTimeout)
		defer cancel()
		if err := s.persist(ctx, req, result, resp); err != nil {
			s.metrics.ObservePersistFailure()
			slog.Warn("failed to store analysis", "error", err)
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// parseAnalyzeRequest reads the resume and job description from either a
// JSON body or a multipart form. An uploaded resume_file takes precedence
// over a resume_text field.
func (s *Server) parseAnalyzeRequest(r *http.Request) (*types.AnalyzeRequest, error) {
	var req types.AnalyzeRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(s.maxUploadSize); err != nil {
			return nil, requestBodyError(err)
		}
		text, err := resumeFromForm(r)
		if err != nil {
			return nil, err
		}
		req.ResumeText = text
		req.JobDescription = r.FormValue("job_description")
	default:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, requestBodyError(err)
		}
	}

	if err := req.Validate(); err != nil {
		return nil, &ErrValidation{Field: "resume_text", Message: "resume text or file is required"}
	}
	return &req, nil
}

// resumeFromForm returns the text of the uploaded resume_file, or the
// resume_text field when no file was sent.
func resumeFromForm(r *http.Request) (string, error) {
	file, header, err := r.FormFile("resume_file")
	if errors.Is(err, http.ErrMissingFile) {
		return r.FormValue("resume_text"), nil
	}
	if err != nil {
		return "", requestBodyError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	return ingestion.ExtractText(header.Filename, header.Header.Get("Content-Type"), data)
}

// requestBodyError keeps size errors intact and reports anything else as a
// malformed body.
func requestBodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return &ErrValidation{Field: "body", Message: err.Error()}
}

// persist stores the resume, the job description and the analysis, and
// records the new IDs on resp.
func (s *Server) persist(ctx context.Context, req *types.AnalyzeRequest, result *types.AnalysisResult, resp *AnalyzeResponse) error {
	resumeID, err := s.store.InsertResume(ctx, req.ResumeText)
	if err != nil {
		return err
	}

	var jobID *uuid.UUID
	if features.HasJobDescription(req.JobDescription) {
		id, err := s.store.InsertJob(ctx, req.JobDescription)
		if err != nil {
			return err
		}
		jobID = &id
	}

	analysisID, err := s.store.InsertAnalysis(ctx, &db.AnalysisInput{
		ResumeID: resumeID,
		JobID:    jobID,
		Result:   result,
	})
	if err != nil {
		return err
	}

	resp.ResumeID = &resumeID
	resp.JobID = jobID
	resp.AnalysisID = &analysisID
	return nil
}

// handleHistory lists recent analyses, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	query := types.HistoryQuery{Limit: DefaultHistoryLimit}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			s.errorFromErr(w, &ErrValidation{Field: "limit", Message: "must be an integer"})
			return
		}
		query.Limit = limit
	}
	if err := query.Validate(); err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "limit", Message: fmt.Sprintf("must be between 1 and %d", types.MaxHistoryLimit)})
		return
	}
	if s.store == nil {
		s.errorFromErr(w, &ErrPersistenceDisabled{})
		return
	}

	items, err := s.store.ListHistory(r.Context(), query.Limit)
	if err != nil {
		s.errorFromErr(w, fmt.Errorf("failed to list history: %w", err))
		return
	}
	if items == nil {
		items = []db.HistoryItem{}
	}

	s.jsonResponse(w, http.StatusOK, HistoryResponse{Items: items, Count: len(items)})
}

// handleGetResume returns a stored resume.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	resume, err := s.store.GetResume(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, fmt.Errorf("failed to get resume: %w", err))
		return
	}
	if resume == nil {
		s.errorFromErr(w, &ErrNotFound{Resource: "resume", ID: id.String()})
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleGetJob returns a stored job description.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	job, err := s.store.GetJob(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, fmt.Errorf("failed to get job: %w", err))
		return
	}
	if job == nil {
		s.errorFromErr(w, &ErrNotFound{Resource: "job", ID: id.String()})
		return
	}

	s.jsonResponse(w, http.StatusOK, job)
}

// handleGetAnalysis returns a stored analysis with its resume and job texts.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}

	record, err := s.store.GetAnalysis(r.Context(), id)
	if err != nil {
		s.errorFromErr(w, fmt.Errorf("failed to get analysis: %w", err))
		return
	}
	if record == nil {
		s.errorFromErr(w, &ErrNotFound{Resource: "analysis", ID: id.String()})
		return
	}

	s.jsonResponse(w, http.StatusOK, record)
}

// pathID parses the {id} path value and checks that a store is configured.
// It writes the error response and returns false on failure.
func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorFromErr(w, &ErrValidation{Field: "id", Message: "must be a valid UUID"})
		return uuid.Nil, false
	}
	if s.store == nil {
		s.errorFromErr(w, &ErrPersistenceDisabled{})
		return uuid.Nil, false
	}
	return id, true
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{
		"status":     "ok",
		"model_used": s.engine.ModelUsed(),
		"database":   "disabled",
	}
	status := http.StatusOK

	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			slog.Warn("database ping failed", "error", err)
			resp["status"] = "degraded"
			resp["database"] = "unavailable"
			status = http.StatusServiceUnavailable
		} else {
			resp["database"] = "ok"
		}
	}

	s.jsonResponse(w, status, resp)
}
