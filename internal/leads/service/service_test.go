package service

import (
	"context"
	"testing"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/leads/transport"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"
)

type fixedModel struct{}

func (fixedModel) PredictProba(domain.EncodedFeatures) (float64, error) {
	return 0.625, nil
}

func newTestService(model scoring.Model) (*Service, *repository.Memory) {
	log := logger.New("development")
	repo := repository.NewMemory()
	svc := New(repo, scoring.NewPredictor(model, log), scoring.NewReranker(scoring.DefaultRules()), log)
	return svc, repo
}

func validRequest() transport.ScoreLeadRequest {
	return transport.ScoreLeadRequest{
		PhoneNumber:      "+919812345678",
		Email:            "ravi@example.com",
		CreditScore:      700,
		AgeGroup:         "26-35",
		FamilyBackground: "Single",
		Income:           500000,
		Comments:         "interested, call now",
		Consent:          true,
	}
}

func TestScorePipeline(t *testing.T) {
	svc, _ := newTestService(fixedModel{})

	// initial = 0.625 * 100; "interested" +5 and "now" +5.
	got, err := svc.Score(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.InitialScore != 62.5 {
		t.Fatalf("expected initial 62.5, got %g", got.InitialScore)
	}
	if got.RerankedScore != 72.5 {
		t.Fatalf("expected reranked 72.5, got %g", got.RerankedScore)
	}
	if got.Email != "ravi@example.com" || got.Comments != "interested, call now" {
		t.Fatalf("response fields not echoed: %+v", got)
	}
}

func TestScoreDegradedModeNeutralInitial(t *testing.T) {
	svc, _ := newTestService(nil)

	req := validRequest()
	req.Comments = "no keywords here"

	got, err := svc.Score(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.InitialScore != 50.0 {
		t.Fatalf("degraded mode must yield exactly 50.0, got %g", got.InitialScore)
	}
	if got.RerankedScore != 50.0 {
		t.Fatalf("expected reranked 50.0, got %g", got.RerankedScore)
	}
}

func TestScoreValidationFailureRecordsNothing(t *testing.T) {
	svc, repo := newTestService(nil)

	req := validRequest()
	req.Consent = false

	_, err := svc.Score(context.Background(), req)
	if err == nil || err.Error() != domain.ReasonConsentRequired {
		t.Fatalf("expected consent reason, got %v", err)
	}

	leads, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 0 {
		t.Fatalf("failed scoring must not append, got %d records", len(leads))
	}
}

func TestScoreUnknownCategoryRecordsNothing(t *testing.T) {
	svc, repo := newTestService(nil)

	req := validRequest()
	req.FamilyBackground = "Widowed"

	_, err := svc.Score(context.Background(), req)
	if !apperr.Is(err, apperr.KindUnprocessable) {
		t.Fatalf("expected unprocessable error, got %v", err)
	}

	leads, _ := repo.List(context.Background())
	if len(leads) != 0 {
		t.Fatalf("failed scoring must not append, got %d records", len(leads))
	}
}

func TestRescoringKeepsBothRecords(t *testing.T) {
	svc, _ := newTestService(nil)
	ctx := context.Background()

	req := validRequest()
	if _, err := svc.Score(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req.Comments = "maybe later"
	if _, err := svc.Score(ctx, req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 2 || len(list.Items) != 2 {
		t.Fatalf("expected 2 records, got total=%d items=%d", list.Total, len(list.Items))
	}
	if list.Items[0].Comments != "interested, call now" || list.Items[1].Comments != "maybe later" {
		t.Fatalf("records not in call order: %+v", list.Items)
	}
	if list.Items[0].Email != list.Items[1].Email {
		t.Fatal("both records should carry the same email")
	}
}

func TestListEmptyStore(t *testing.T) {
	svc, _ := newTestService(nil)

	list, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Total != 0 || len(list.Items) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}
}
