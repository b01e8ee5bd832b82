// Package scoring turns an encoded lead into an intent score in [0,100]:
// a trained binary classifier produces the initial probability-derived score
// and a keyword re-ranker applies deterministic adjustments from the lead's
// free-text comments.
package scoring

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"leadscore_backend/internal/leads/domain"
)

// Model computes the positive-class probability for an encoded lead.
type Model interface {
	PredictProba(f domain.EncodedFeatures) (float64, error)
}

// featureNames is the fixed training order of the 4-feature vector.
var featureNames = [4]string{"credit_score", "age_group", "family_background", "income"}

// LogisticModel is a logistic regression over the standardized 4-feature
// vector. Parameters are immutable after load.
type LogisticModel struct {
	bias    float64
	weights [4]float64
	means   [4]float64
	stds    [4]float64
}

// artifact is the on-disk JSON shape of a trained model. The scaler block
// covers the standardized features (credit_score, income); enum codes pass
// through with mean 0 and std 1.
type artifact struct {
	Bias    float64                 `json:"bias"`
	Weights map[string]float64      `json:"weights"`
	Scaler  map[string]scalerParams `json:"scaler,omitempty"`
}

type scalerParams struct {
	Mean float64 `json:"mean"`
	Std  float64 `json:"std"`
}

// LoadModel reads a trained model artifact from disk. Callers treat any
// error as "no model loaded" and fall back to the neutral score.
func LoadModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw artifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}

	m := &LogisticModel{bias: raw.Bias}
	for i, name := range featureNames {
		w, ok := raw.Weights[name]
		if !ok {
			return nil, fmt.Errorf("model artifact missing weight for %q", name)
		}
		m.weights[i] = w

		m.means[i], m.stds[i] = 0, 1
		if s, ok := raw.Scaler[name]; ok {
			if s.Std <= 0 {
				return nil, fmt.Errorf("model artifact has non-positive std for %q", name)
			}
			m.means[i], m.stds[i] = s.Mean, s.Std
		}
	}

	return m, nil
}

// NewLogisticModel builds a model from in-memory parameters, in the fixed
// feature order. Used by the trainer and by tests.
func NewLogisticModel(bias float64, weights, means, stds [4]float64) (*LogisticModel, error) {
	for i := range stds {
		if stds[i] <= 0 {
			return nil, fmt.Errorf("non-positive std for %q", featureNames[i])
		}
	}
	return &LogisticModel{bias: bias, weights: weights, means: means, stds: stds}, nil
}

// PredictProba returns the positive-class probability for the encoded lead.
func (m *LogisticModel) PredictProba(f domain.EncodedFeatures) (float64, error) {
	x := f.Vector()
	z := m.bias
	for i := range x {
		z += m.weights[i] * (x[i] - m.means[i]) / m.stds[i]
	}
	return 1 / (1 + math.Exp(-z)), nil
}

// Save writes the model parameters as a JSON artifact readable by LoadModel.
func (m *LogisticModel) Save(path string) error {
	raw := artifact{
		Bias:    m.bias,
		Weights: make(map[string]float64, len(featureNames)),
		Scaler:  make(map[string]scalerParams),
	}
	for i, name := range featureNames {
		raw.Weights[name] = m.weights[i]
		if m.means[i] != 0 || m.stds[i] != 1 {
			raw.Scaler[name] = scalerParams{Mean: m.means[i], Std: m.stds[i]}
		}
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
