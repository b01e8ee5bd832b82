// Package service orchestrates the scoring pipeline: validate, encode,
// predict, rerank, record. Every stage before the store append is pure and
// idempotent; the append is the only stateful mutation.
package service

import (
	"context"
	"time"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/feature"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/platform/logger"

	"github.com/google/uuid"
)

// Service provides the lead scoring business logic.
type Service struct {
	repo      repository.Repository
	predictor *scoring.Predictor
	reranker  *scoring.Reranker
	log       *logger.Logger
}

// New creates a new lead scoring service.
func New(repo repository.Repository, predictor *scoring.Predictor, reranker *scoring.Reranker, log *logger.Logger) *Service {
	return &Service{repo: repo, predictor: predictor, reranker: reranker, log: log}
}

// Score runs the full pipeline for one lead. On success the scored lead is
// appended to the store; on any failure nothing is recorded.
func (s *Service) Score(ctx context.Context, req transport.ScoreLeadRequest) (transport.LeadScoreResponse, error) {
	lead := domain.Lead{
		PhoneNumber:      req.PhoneNumber,
		Email:            req.Email,
		CreditScore:      req.CreditScore,
		AgeGroup:         req.AgeGroup,
		FamilyBackground: req.FamilyBackground,
		Income:           req.Income,
		Comments:         req.Comments,
		Consent:          req.Consent,
	}

	if err := domain.ValidateLead(lead); err != nil {
		return transport.LeadScoreResponse{}, err
	}

	features, err := feature.Encode(lead)
	if err != nil {
		return transport.LeadScoreResponse{}, err
	}

	initialScore := s.predictor.Score(features)
	rerankedScore := s.reranker.Rerank(initialScore, lead.Comments)

	record := domain.ScoredLead{
		ID:            uuid.New(),
		Email:         lead.Email,
		InitialScore:  initialScore,
		RerankedScore: rerankedScore,
		Comments:      lead.Comments,
		ScoredAt:      time.Now().UTC(),
	}
	if err := s.repo.Record(ctx, record); err != nil {
		return transport.LeadScoreResponse{}, err
	}

	s.log.WithContext(ctx).ScoringEvent(record.Email, record.InitialScore, record.RerankedScore)

	return toResponse(record), nil
}

// List returns all previously scored leads in insertion order.
func (s *Service) List(ctx context.Context) (transport.LeadListResponse, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return transport.LeadListResponse{}, err
	}

	items := make([]transport.LeadScoreResponse, 0, len(records))
	for _, r := range records {
		items = append(items, toResponse(r))
	}
	return transport.LeadListResponse{Items: items, Total: len(items)}, nil
}

func toResponse(r domain.ScoredLead) transport.LeadScoreResponse {
	return transport.LeadScoreResponse{
		Email:         r.Email,
		InitialScore:  r.InitialScore,
		RerankedScore: r.RerankedScore,
		Comments:      r.Comments,
	}
}
