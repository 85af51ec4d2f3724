package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/jonathan/resumesense/internal/schemas"
	"github.com/jonathan/resumesense/internal/types"
	schemadocs "github.com/jonathan/resumesense/schemas"
)

// ModelVersion is the only artifact version this build reads.
const ModelVersion = 1

// Model kinds.
const (
	KindRegression     = "regression"
	KindClassification = "classification"
)

// LinearModel is a trained linear predictor over the feature vector.
// Regression models output the score directly; classification models output
// the probability of the "good resume" class, scaled to 100.
type LinearModel struct {
	Version      int              `json:"version"`
	Kind         string           `json:"kind"`
	FeatureNames []string         `json:"feature_names"`
	Intercept    float64          `json:"intercept"`
	Coefficients []float64        `json:"coefficients"`
	Means        []float64        `json:"means,omitempty"`
	Scales       []float64        `json:"scales,omitempty"`
	TrainedAt    *time.Time       `json:"trained_at,omitempty"`
	Metrics      *TrainingMetrics `json:"metrics,omitempty"`
}

// TrainingMetrics records how the artifact was fitted.
type TrainingMetrics struct {
	TrainR2     float64 `json:"train_r2"`
	TestR2      float64 `json:"test_r2"`
	TrainSize   int     `json:"train_size"`
	TestSize    int     `json:"test_size"`
	Seed        int64   `json:"seed"`
	RidgeLambda float64 `json:"ridge_lambda"`
}

// Name implements Predictor.
func (m *LinearModel) Name() string { return types.ModelUsedML }

// Predict implements Predictor.
func (m *LinearModel) Predict(fv types.FeatureVector) (float64, error) {
	if n := len(types.FeatureNames); len(m.Coefficients) != n {
		return 0, fmt.Errorf("model expects %d features, got %d", len(m.Coefficients), n)
	}
	z := m.linear(fv)

	var score float64
	switch m.Kind {
	case KindRegression:
		score = clamp(z)
	case KindClassification:
		score = 100 / (1 + math.Exp(-z))
	default:
		return 0, fmt.Errorf("unknown model kind %q", m.Kind)
	}

	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, fmt.Errorf("model produced non-finite score")
	}
	return score, nil
}

// linear returns intercept + Σ coef·x, standardizing x when the artifact
// carries means and scales.
func (m *LinearModel) linear(fv types.FeatureVector) float64 {
	x := fv.Values()
	z := m.Intercept
	standardize := len(m.Means) == len(x) && len(m.Scales) == len(x)
	for i, v := range x {
		if standardize {
			v = (v - m.Means[i]) / m.Scales[i]
		}
		z += m.Coefficients[i] * v
	}
	return z
}

// Check verifies the artifact honors the feature-order contract.
func (m *LinearModel) Check() error {
	if m.Version != ModelVersion {
		return fmt.Errorf("unsupported version %d", m.Version)
	}
	if m.Kind != KindRegression && m.Kind != KindClassification {
		return fmt.Errorf("unknown kind %q", m.Kind)
	}
	if len(m.FeatureNames) != len(types.FeatureNames) {
		return fmt.Errorf("expected %d feature names, got %d", len(types.FeatureNames), len(m.FeatureNames))
	}
	for i, name := range types.FeatureNames {
		if m.FeatureNames[i] != name {
			return fmt.Errorf("feature %d is %q, expected %q", i, m.FeatureNames[i], name)
		}
	}
	if len(m.Coefficients) != len(types.FeatureNames) {
		return fmt.Errorf("expected %d coefficients, got %d", len(types.FeatureNames), len(m.Coefficients))
	}
	if len(m.Means) != len(m.Scales) || (len(m.Means) != 0 && len(m.Means) != len(types.FeatureNames)) {
		return errors.New("means and scales must both be absent or cover every feature")
	}
	for i, s := range m.Scales {
		if s == 0 {
			return fmt.Errorf("scale for %s is zero", types.FeatureNames[i])
		}
	}
	return nil
}

// LoadModel reads, schema-validates and checks a predictor artifact.
func LoadModel(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Message: "failed to read artifact", Cause: err}
	}

	if err := schemas.ValidateJSONString(schemadocs.PredictorModel, string(data)); err != nil {
		return nil, &ModelLoadError{Path: path, Message: "artifact does not match schema", Cause: err}
	}

	var model LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, &ModelLoadError{Path: path, Message: "failed to parse artifact", Cause: err}
	}

	if err := model.Check(); err != nil {
		return nil, &IncompatibleModelError{Path: path, Message: err.Error()}
	}
	return &model, nil
}

// Save writes the artifact as indented JSON, creating parent directories.
// Artifacts that would not load back are rejected before anything is written.
func (m *LinearModel) Save(path string) error {
	if err := m.Check(); err != nil {
		return fmt.Errorf("refusing to save incompatible model: %w", err)
	}
	if err := schemas.ValidateDocument(schemadocs.PredictorModel, m); err != nil {
		return fmt.Errorf("model does not match schema: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create model directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write model: %w", err)
	}
	return nil
}
