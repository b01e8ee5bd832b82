package repository

import (
	"context"
	"sync"

	"leadscore_backend/internal/leads/domain"
)

// Memory is the in-process lead store. It lives for the process lifetime and
// starts empty; there is no persistence across restarts. A mutex serializes
// appends so concurrent callers never observe a partially written record.
type Memory struct {
	mu    sync.RWMutex
	leads []domain.ScoredLead
}

// NewMemory creates an empty in-memory lead store.
func NewMemory() *Memory {
	return &Memory{}
}

// Record appends a scored lead. Never fails for the in-memory store.
func (m *Memory) Record(_ context.Context, lead domain.ScoredLead) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.leads = append(m.leads, lead)
	return nil
}

// List returns a snapshot copy of all records in insertion order, so callers
// can iterate without holding the store lock.
func (m *Memory) List(_ context.Context) ([]domain.ScoredLead, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.ScoredLead, len(m.leads))
	copy(out, m.leads)
	return out, nil
}

var _ Repository = (*Memory)(nil)
