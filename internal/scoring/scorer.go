package scoring

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"

	"github.com/jonathan/resumesense/internal/features"
	"github.com/jonathan/resumesense/internal/types"
)

// Scorer holds the predictor loaded at startup. It is read-only after
// construction and safe for concurrent use.
type Scorer struct {
	predictor Predictor
	fallback  RuleBased
}

// LoadPredictor loads the trained predictor at path.
func LoadPredictor(path string) (Predictor, error) {
	if path == "" {
		return nil, &ModelLoadError{Path: path, Message: "no model path configured"}
	}
	return LoadModel(path)
}

// NewScorer loads the predictor at modelPath. Load failures are logged and
// the scorer falls back to rule-based scoring.
func NewScorer(modelPath string) *Scorer {
	predictor, err := LoadPredictor(modelPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || modelPath == "" {
			slog.Info("model artifact not found, using rule-based scoring", slog.String("path", modelPath))
		} else {
			slog.Warn("failed to load model, using rule-based scoring", slog.String("path", modelPath), slog.Any("error", err))
		}
		return NewScorerWithPredictor(nil)
	}
	slog.Debug("loaded quality model", slog.String("path", modelPath))
	return NewScorerWithPredictor(predictor)
}

// NewScorerWithPredictor builds a scorer around p. A nil p means rule-based
// scoring only.
func NewScorerWithPredictor(p Predictor) *Scorer {
	return &Scorer{predictor: p}
}

// ModelUsed reports which path scores will come from while prediction succeeds.
func (s *Scorer) ModelUsed() string {
	if s.predictor == nil {
		return s.fallback.Name()
	}
	return s.predictor.Name()
}

// Score extracts features from the resume and job description and scores them.
func (s *Scorer) Score(resumeText, jdText string) *types.QualityResult {
	return s.ScoreFeatures(features.Extract(resumeText, jdText))
}

// ScoreFeatures scores an already-extracted feature vector. It never fails:
// prediction errors fall back to the rule-based formula.
func (s *Scorer) ScoreFeatures(fv types.FeatureVector) *types.QualityResult {
	if s.predictor != nil {
		score, err := safePredict(s.predictor, fv)
		if err == nil {
			return &types.QualityResult{
				QualityScore: round2(score),
				Features:     fv,
				ModelUsed:    s.predictor.Name(),
			}
		}
		slog.Debug("prediction failed, using rule-based scoring", slog.Any("error", err))
	}

	return &types.QualityResult{
		QualityScore: RuleScore(fv),
		Features:     fv,
		ModelUsed:    s.fallback.Name(),
	}
}

func safePredict(p Predictor, fv types.FeatureVector) (score float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("predictor panicked: %v", r)
		}
	}()
	score, err = p.Predict(fv)
	if err == nil && (score < minQualityScore || score > maxQualityScore || math.IsNaN(score)) {
		err = fmt.Errorf("predictor returned out-of-range score %v", score)
	}
	return score, err
}
