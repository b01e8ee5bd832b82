// Package repository provides the lead store: an append-only, process-lifetime
// collection of scored leads, readable in insertion order.
package repository

import (
	"context"

	"leadscore_backend/internal/leads/domain"
)

// Repository is the lead store contract. Appends are atomic per call and
// duplicates are permitted: a rescored lead yields a second record.
type Repository interface {
	// Record appends a scored lead.
	Record(ctx context.Context, lead domain.ScoredLead) error
	// List returns all scored leads in insertion order.
	List(ctx context.Context) ([]domain.ScoredLead, error)
}
