package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resumesense/internal/ats"
	"github.com/jonathan/resumesense/internal/features"
	"github.com/jonathan/resumesense/internal/matching"
	"github.com/jonathan/resumesense/internal/scoring"
	"github.com/jonathan/resumesense/internal/types"
	"github.com/jonathan/resumesense/internal/verbs"
)

const testResume = `Alex Rivera
alex.rivera@example.com | 555-123-4567

SUMMARY
Backend engineer focused on data platforms.

EXPERIENCE
Software Engineer | Acme | 2019 - 2023
- Built Python and Docker services handling 2M requests per day
- Reduced latency by 35% with Redis caching
- Worked on internal tooling and did code reviews

EDUCATION
BS Computer Science | State University | 2019

SKILLS
Python, Go, Docker, Kubernetes, SQL`

const testJD = "We are looking for a Python engineer with Docker and Kubernetes experience. AWS is a plus."

func TestAnalyze_WithJobDescription(t *testing.T) {
	engine := NewEngine(nil)

	result, err := engine.Analyze(context.Background(), testResume, testJD)
	require.NoError(t, err)

	require.NotNil(t, result.Match)
	assert.Equal(t, matching.ComputeMatchScore(testResume, testJD), result.Match)
	assert.Equal(t, *ats.CheckCompliance(testResume), result.ATS)
	assert.Equal(t, *verbs.Analyze(testResume), result.PowerVerbs)

	assert.Equal(t, features.Extract(testResume, testJD), result.Quality.Features)
	assert.Equal(t, types.ModelUsedRuleBased, result.Quality.ModelUsed)
	assert.Equal(t, scoring.RuleScore(result.Quality.Features), result.Quality.QualityScore)
	assert.Greater(t, result.Quality.Features.JDMatchScore, 0.0)
}

func TestAnalyze_WithoutJobDescription(t *testing.T) {
	engine := NewEngine(nil)

	for _, jd := range []string{"", "  \n "} {
		result, err := engine.Analyze(context.Background(), testResume, jd)
		require.NoError(t, err)
		assert.Nil(t, result.Match)
		assert.Equal(t, 0.0, result.Quality.Features.JDMatchScore)
		assert.Equal(t, 0.0, result.Quality.Features.CommonKeywords)
	}
}

func TestAnalyze_RejectsBlankResume(t *testing.T) {
	engine := NewEngine(nil)

	for _, resume := range []string{"", "   ", "\n\t"} {
		result, err := engine.Analyze(context.Background(), resume, testJD)
		require.Error(t, err)
		assert.Nil(t, result)

		var inputErr *InputError
		require.True(t, errors.As(err, &inputErr))
		assert.Equal(t, "resume_text", inputErr.Field)
	}
}

func TestAnalyze_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(nil).Analyze(ctx, testResume, testJD)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyze_Idempotent(t *testing.T) {
	engine := NewEngine(nil)

	first, err := engine.Analyze(context.Background(), testResume, testJD)
	require.NoError(t, err)
	second, err := engine.Analyze(context.Background(), testResume, testJD)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyze_ConcurrentCallsAgree(t *testing.T) {
	engine := NewEngine(scoring.NewScorer(""))
	want, err := engine.Analyze(context.Background(), testResume, testJD)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*types.AnalysisResult, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = engine.Analyze(context.Background(), testResume, testJD)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestEngine_ModelUsed(t *testing.T) {
	assert.Equal(t, types.ModelUsedRuleBased, NewEngine(nil).ModelUsed())
}
