// Package analysis orchestrates the resume engine: JD matching, ATS
// compliance, power-verb analysis and insight extraction run in parallel,
// then their reports feed the quality scorer.
package analysis

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resumesense/internal/ats"
	"github.com/jonathan/resumesense/internal/features"
	"github.com/jonathan/resumesense/internal/insights"
	"github.com/jonathan/resumesense/internal/matching"
	"github.com/jonathan/resumesense/internal/scoring"
	"github.com/jonathan/resumesense/internal/types"
	"github.com/jonathan/resumesense/internal/verbs"
)

// Engine runs full analyses. It holds only the read-only scorer and is safe
// for concurrent use.
type Engine struct {
	scorer *scoring.Scorer
}

// NewEngine creates an engine around scorer. A nil scorer scores with the
// rule-based formula.
func NewEngine(scorer *scoring.Scorer) *Engine {
	if scorer == nil {
		scorer = scoring.NewScorerWithPredictor(nil)
	}
	return &Engine{scorer: scorer}
}

// ModelUsed reports which predictor the engine's scorer prefers.
func (e *Engine) ModelUsed() string {
	return e.scorer.ModelUsed()
}

// Analyze runs every analysis over resumeText. jdText is optional; when it is
// blank the match result is nil and JD features are 0. Blank resume text is
// rejected with an InputError.
func (e *Engine) Analyze(ctx context.Context, resumeText, jdText string) (*types.AnalysisResult, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, &InputError{Field: "resume_text", Message: "resume text is required"}
	}

	var (
		match   *types.MatchResult
		report  *types.ATSReport
		power   *types.PowerVerbReport
		extract *types.Insights
	)

	g, gCtx := errgroup.WithContext(ctx)

	if features.HasJobDescription(jdText) {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			match = matching.ComputeMatchScore(resumeText, jdText)
			return nil
		})
	}

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		report = ats.CheckCompliance(resumeText)
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		power = verbs.Analyze(resumeText)
		return nil
	})

	g.Go(func() error {
		if err := gCtx.Err(); err != nil {
			return err
		}
		extract = insights.Extract(resumeText)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analysis canceled: %w", err)
	}

	fv := features.FromReports(resumeText, report, &power.Stats, match)
	quality := e.scorer.ScoreFeatures(fv)

	return &types.AnalysisResult{
		Match:      match,
		ATS:        *report,
		PowerVerbs: *power,
		Quality:    *quality,
		Insights:   *extract,
	}, nil
}
