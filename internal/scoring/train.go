package scoring

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/jonathan/resumesense/internal/features"
	"github.com/jonathan/resumesense/internal/types"
)

// TrainOptions configures Train. Zero values take the defaults below.
type TrainOptions struct {
	Seed           int64
	SamplesPerTier int
	TestFraction   float64
	RidgeLambda    float64
}

// Training defaults.
const (
	DefaultSeed           = 42
	DefaultSamplesPerTier = 10
	DefaultTestFraction   = 0.2
	DefaultRidgeLambda    = 1.0
)

func (o TrainOptions) withDefaults() TrainOptions {
	if o.SamplesPerTier <= 0 {
		o.SamplesPerTier = DefaultSamplesPerTier
	}
	if o.TestFraction <= 0 || o.TestFraction >= 1 {
		o.TestFraction = DefaultTestFraction
	}
	if o.RidgeLambda <= 0 {
		o.RidgeLambda = DefaultRidgeLambda
	}
	return o
}

// Sample is one labelled training example.
type Sample struct {
	Features types.FeatureVector
	Label    float64
}

// GenerateSamples synthesizes labelled samples from the reference resumes.
// Even-numbered variants of the strongest resume get a different tenure so
// that tier is not a single point.
func GenerateSamples(rng *rand.Rand, perTier int) []Sample {
	samples := make([]Sample, 0, perTier*len(qualityTiers))
	for tierIdx, tier := range qualityTiers {
		for i := 0; i < perTier; i++ {
			text := tier.text
			if tierIdx == 0 && i%2 == 0 {
				text = strings.Replace(text, "5+ years", fmt.Sprintf("%d years", 5+i), 1)
			}
			label := tier.base + tier.low + rng.Float64()*(tier.high-tier.low)
			samples = append(samples, Sample{
				Features: features.Extract(text, ""),
				Label:    label,
			})
		}
	}
	return samples
}

// Train fits a ridge regression model on synthetic samples and reports R²
// on a held-out split.
func Train(opts TrainOptions) (*LinearModel, error) {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewSource(opts.Seed))

	samples := GenerateSamples(rng, opts.SamplesPerTier)
	perm := rng.Perm(len(samples))
	testSize := int(math.Ceil(opts.TestFraction * float64(len(samples))))
	if testSize >= len(samples) {
		return nil, errors.New("not enough samples for a train/test split")
	}

	train := make([]Sample, 0, len(samples)-testSize)
	test := make([]Sample, 0, testSize)
	for i, idx := range perm {
		if i < testSize {
			test = append(test, samples[idx])
		} else {
			train = append(train, samples[idx])
		}
	}

	model, err := fitRidge(train, opts.RidgeLambda)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	model.TrainedAt = &now
	model.Metrics = &TrainingMetrics{
		TrainR2:     rSquared(model, train),
		TestR2:      rSquared(model, test),
		TrainSize:   len(train),
		TestSize:    len(test),
		Seed:        opts.Seed,
		RidgeLambda: opts.RidgeLambda,
	}
	return model, nil
}

// fitRidge solves (ZᵀZ + λI)β = Zᵀ(y - ȳ) on standardized features.
func fitRidge(samples []Sample, lambda float64) (*LinearModel, error) {
	if len(samples) == 0 {
		return nil, errors.New("no training samples")
	}
	n := len(samples)
	p := len(types.FeatureNames)

	x := mat.NewDense(n, p, nil)
	labels := make([]float64, n)
	for i, s := range samples {
		x.SetRow(i, s.Features.Values())
		labels[i] = s.Label
	}
	yMean := stat.Mean(labels, nil)

	means := make([]float64, p)
	scales := make([]float64, p)
	z := mat.NewDense(n, p, nil)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, x)
		means[j], scales[j] = stat.PopMeanStdDev(col, nil)
		if scales[j] == 0 {
			scales[j] = 1
		}
		for i, v := range col {
			z.Set(i, j, (v-means[j])/scales[j])
		}
	}

	var a mat.SymDense
	a.SymOuterK(1, z.T())
	for j := 0; j < p; j++ {
		a.SetSym(j, j, a.At(j, j)+lambda)
	}

	dy := mat.NewVecDense(n, nil)
	for i, y := range labels {
		dy.SetVec(i, y-yMean)
	}
	b := mat.NewVecDense(p, nil)
	b.MulVec(z.T(), dy)

	var chol mat.Cholesky
	if ok := chol.Factorize(&a); !ok {
		return nil, errors.New("failed to fit model: normal equations are not positive definite")
	}
	var beta mat.VecDense
	if err := chol.SolveVecTo(&beta, b); err != nil {
		return nil, fmt.Errorf("failed to fit model: %w", err)
	}

	return &LinearModel{
		Version:      ModelVersion,
		Kind:         KindRegression,
		FeatureNames: append([]string(nil), types.FeatureNames...),
		Intercept:    yMean,
		Coefficients: mat.Col(nil, 0, &beta),
		Means:        means,
		Scales:       scales,
	}, nil
}

// rSquared uses the unclamped linear output so the fit is judged on the
// regression itself.
func rSquared(m *LinearModel, samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	estimates := make([]float64, len(samples))
	labels := make([]float64, len(samples))
	for i, s := range samples {
		estimates[i] = m.linear(s.Features)
		labels[i] = s.Label
	}
	r2 := stat.RSquaredFrom(estimates, labels, nil)
	if math.IsNaN(r2) || math.IsInf(r2, 0) {
		return 0
	}
	return r2
}
