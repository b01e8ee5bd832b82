package training

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/feature"
	"leadscore_backend/internal/leads/scoring"
)

// Sample is one training example: the encoded feature vector and its label.
type Sample struct {
	Features domain.EncodedFeatures
	Intent   int
}

// LoadCSV reads a leads dataset written by WriteCSV and encodes each row
// through the same feature encoder the API uses, so training and serving
// share one categorical schema.
func LoadCSV(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("dataset missing column %q", name)
		}
	}

	var samples []Sample
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		creditScore, err := strconv.Atoi(record[col["credit_score"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad credit_score: %w", len(samples)+1, err)
		}
		income, err := strconv.Atoi(record[col["income"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad income: %w", len(samples)+1, err)
		}
		intent, err := strconv.Atoi(record[col["intent"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad intent: %w", len(samples)+1, err)
		}

		encoded, err := feature.Encode(domain.Lead{
			CreditScore:      creditScore,
			AgeGroup:         record[col["age_group"]],
			FamilyBackground: record[col["family_background"]],
			Income:           income,
		})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(samples)+1, err)
		}

		samples = append(samples, Sample{Features: encoded, Intent: intent})
	}

	return samples, nil
}

// FitOptions controls the gradient descent run.
type FitOptions struct {
	Epochs       int
	LearningRate float64
}

// DefaultFitOptions returns settings that converge comfortably on the
// synthetic dataset.
func DefaultFitOptions() FitOptions {
	return FitOptions{Epochs: 300, LearningRate: 0.1}
}

// Fit trains a logistic regression by full-batch gradient descent. The
// credit_score and income columns are standardized to zero mean and unit
// variance; the two enumeration codes pass through unscaled, matching the
// original training pipeline.
func Fit(samples []Sample, opts FitOptions) (*scoring.LogisticModel, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no training samples")
	}
	if opts.Epochs < 1 || opts.LearningRate <= 0 {
		return nil, fmt.Errorf("invalid fit options: epochs=%d lr=%g", opts.Epochs, opts.LearningRate)
	}

	means, stds := scalerFor(samples)

	// Pre-standardize once; the model applies the same transform at serving
	// time via its stored scaler parameters.
	xs := make([][4]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		v := s.Features.Vector()
		for j := range v {
			xs[i][j] = (v[j] - means[j]) / stds[j]
		}
		ys[i] = float64(s.Intent)
	}

	var bias float64
	var weights [4]float64
	n := float64(len(samples))

	for epoch := 0; epoch < opts.Epochs; epoch++ {
		var gradBias float64
		var gradWeights [4]float64

		for i := range xs {
			z := bias
			for j := range weights {
				z += weights[j] * xs[i][j]
			}
			diff := sigmoid(z) - ys[i]

			gradBias += diff
			for j := range gradWeights {
				gradWeights[j] += diff * xs[i][j]
			}
		}

		bias -= opts.LearningRate * gradBias / n
		for j := range weights {
			weights[j] -= opts.LearningRate * gradWeights[j] / n
		}
	}

	return scoring.NewLogisticModel(bias, weights, means, stds)
}

// scalerFor computes per-feature standardization parameters. Only the
// continuous features (credit_score, income) are scaled; the enum codes keep
// mean 0 and std 1.
func scalerFor(samples []Sample) (means, stds [4]float64) {
	for j := range stds {
		stds[j] = 1
	}

	for _, j := range []int{0, 3} {
		var sum float64
		for _, s := range samples {
			sum += s.Features.Vector()[j]
		}
		mean := sum / float64(len(samples))

		var sq float64
		for _, s := range samples {
			d := s.Features.Vector()[j] - mean
			sq += d * d
		}
		std := math.Sqrt(sq / float64(len(samples)))
		if std == 0 {
			std = 1
		}

		means[j], stds[j] = mean, std
	}
	return means, stds
}

// Metrics summarizes a fitted model's quality on a labeled sample set.
type Metrics struct {
	Accuracy float64
	ROCAUC   float64
}

// Evaluate scores the samples with the model and reports accuracy at the 0.5
// threshold plus the rank-based ROC AUC.
func Evaluate(model *scoring.LogisticModel, samples []Sample) (Metrics, error) {
	if len(samples) == 0 {
		return Metrics{}, fmt.Errorf("no evaluation samples")
	}

	type scored struct {
		proba float64
		label int
	}
	all := make([]scored, 0, len(samples))

	correct := 0
	for _, s := range samples {
		proba, err := model.PredictProba(s.Features)
		if err != nil {
			return Metrics{}, err
		}
		predicted := 0
		if proba >= 0.5 {
			predicted = 1
		}
		if predicted == s.Intent {
			correct++
		}
		all = append(all, scored{proba: proba, label: s.Intent})
	}

	sort.Slice(all, func(i, j int) bool { return all[i].proba < all[j].proba })

	// Mann-Whitney U formulation of ROC AUC over rank sums, with midranks
	// for tied probabilities.
	ranks := make([]float64, len(all))
	for i := 0; i < len(all); {
		j := i
		for j < len(all) && all[j].proba == all[i].proba {
			j++
		}
		midrank := float64(i+j+1) / 2
		for k := i; k < j; k++ {
			ranks[k] = midrank
		}
		i = j
	}

	var positives, rankSum float64
	for i, s := range all {
		if s.label == 1 {
			positives++
			rankSum += ranks[i]
		}
	}
	negatives := float64(len(all)) - positives

	auc := math.NaN()
	if positives > 0 && negatives > 0 {
		auc = (rankSum - positives*(positives+1)/2) / (positives * negatives)
	}

	return Metrics{
		Accuracy: float64(correct) / float64(len(samples)),
		ROCAUC:   auc,
	}, nil
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}
