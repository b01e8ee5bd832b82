package scoring

import (
	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/logger"
)

// NeutralScore is returned whenever no model is loaded or inference fails.
// The service stays available without a trained artifact, trading accuracy
// for availability.
const NeutralScore = 50.0

// Predictor wraps the optional trained model and produces the initial score
// in [0,100]. A nil model means degraded mode.
type Predictor struct {
	model Model
	log   *logger.Logger
}

// NewPredictor creates a predictor. model may be nil when no artifact was
// loaded at startup; the caller is expected to have logged that once.
func NewPredictor(model Model, log *logger.Logger) *Predictor {
	return &Predictor{model: model, log: log}
}

// Degraded reports whether the predictor runs without a trained model.
func (p *Predictor) Degraded() bool {
	return p.model == nil
}

// Score returns the probability-derived initial score. Inference failures
// degrade to the neutral score instead of propagating: the API consumer has
// no recourse to fix model internals.
func (p *Predictor) Score(f domain.EncodedFeatures) float64 {
	if p.model == nil {
		return NeutralScore
	}

	proba, err := p.model.PredictProba(f)
	if err != nil {
		p.log.Warn("model inference failed, using neutral score", "error", err)
		return NeutralScore
	}
	return proba * 100
}
