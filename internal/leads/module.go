// Package leads provides the lead scoring bounded context module.
// It wires the pipeline stages (validator, encoder, predictor, reranker) to
// the in-process lead store and exposes the scoring HTTP surface.
package leads

import (
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/leads/handler"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/leads/service"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"
)

// Module is the lead scoring bounded context implementing http.Module.
type Module struct {
	handler   *handler.Handler
	service   *service.Service
	repo      repository.Repository
	predictor *scoring.Predictor
}

// NewModule creates and initializes the leads module with all its
// dependencies. model may be nil when no trained artifact was loaded at
// startup; the predictor then serves the neutral score.
func NewModule(model scoring.Model, rules []scoring.Rule, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.NewMemory()
	predictor := scoring.NewPredictor(model, log)
	reranker := scoring.NewReranker(rules)
	svc := service.New(repo, predictor, reranker, log)
	h := handler.New(svc, val)

	return &Module{
		handler:   h,
		service:   svc,
		repo:      repo,
		predictor: predictor,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Degraded reports whether scoring runs without a trained model.
func (m *Module) Degraded() bool {
	return m.predictor.Degraded()
}

// RegisterRoutes mounts the scoring routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.V1.Group("/leads")
	group.POST("/score", m.handler.Score)
	group.GET("", m.handler.List)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
