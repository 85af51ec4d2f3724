// Package scoring computes the resume quality score. A trained linear
// predictor is used when one is loaded; otherwise, and whenever prediction
// fails, the deterministic rule-based formula is used.
package scoring

import (
	"math"

	"github.com/jonathan/resumesense/internal/types"
)

// Predictor maps a feature vector to a quality score in [0, 100].
type Predictor interface {
	// Name is the modelUsed label reported with the score.
	Name() string
	Predict(fv types.FeatureVector) (float64, error)
}

// Rule-based component weights.
const (
	atsWeight       = 30.0
	sectionWeight   = 20.0
	powerVerbWeight = 15.0
	numbersCap      = 15.0
	numbersPerItem  = 0.5
	densityWeight   = 10.0
	jdMatchWeight   = 10.0
	maxQualityScore = 100.0
	minQualityScore = 0.0
)

// RuleBased is the fallback predictor. It never fails.
type RuleBased struct{}

// Name implements Predictor.
func (RuleBased) Name() string { return types.ModelUsedRuleBased }

// Predict implements Predictor.
func (RuleBased) Predict(fv types.FeatureVector) (float64, error) {
	return RuleScore(fv), nil
}

// RuleScore applies the weighted rule formula, clamped to [0, 100] and
// rounded to 2 decimals.
func RuleScore(fv types.FeatureVector) float64 {
	score := fv.ATSScore * atsWeight

	sections := fv.HasEducation + fv.HasExperience + fv.HasSkills + fv.HasContact
	score += sections / 4.0 * sectionWeight

	score += fv.PowerVerbRatio * powerVerbWeight

	if fv.HasNumbers > 0 {
		score += math.Min(numbersCap, fv.NumbersCount*numbersPerItem)
	}

	score += fv.KeywordDensity * densityWeight

	if fv.JDMatchScore > 0 {
		score += fv.JDMatchScore * jdMatchWeight
	}

	return round2(clamp(score))
}

func clamp(score float64) float64 {
	return math.Max(minQualityScore, math.Min(maxQualityScore, score))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
