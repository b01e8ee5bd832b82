package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"leadscore_backend/internal/leads/domain"

	"github.com/google/uuid"
)

func record(email string, score float64) domain.ScoredLead {
	return domain.ScoredLead{
		ID:            uuid.New(),
		Email:         email,
		InitialScore:  score,
		RerankedScore: score,
		Comments:      "interested",
		ScoredAt:      time.Now().UTC(),
	}
}

func TestMemoryInsertionOrder(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if err := store.Record(ctx, record(email, 50)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	leads, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 3 {
		t.Fatalf("expected 3 records, got %d", len(leads))
	}
	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if leads[i].Email != email {
			t.Fatalf("record %d: expected %q, got %q", i, email, leads[i].Email)
		}
	}
}

func TestMemoryAllowsDuplicateEmails(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	first := record("repeat@example.com", 40)
	second := record("repeat@example.com", 60)
	if err := store.Record(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Record(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	leads, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != 2 {
		t.Fatalf("rescoring must keep both records, got %d", len(leads))
	}
	if leads[0].InitialScore != 40 || leads[1].InitialScore != 60 {
		t.Fatalf("records out of call order: %v", leads)
	}
}

func TestMemoryListReturnsSnapshot(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	if err := store.Record(ctx, record("a@example.com", 50)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snapshot, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Record(ctx, record("b@example.com", 50)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	snapshot[0].Email = "mutated@example.com"

	leads, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snapshot) != 1 {
		t.Fatalf("snapshot grew after later append: %d", len(snapshot))
	}
	if leads[0].Email != "a@example.com" {
		t.Fatal("mutating a snapshot must not affect the store")
	}
}

func TestMemoryConcurrentAppends(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	const writers = 16
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				if err := store.Record(ctx, record("concurrent@example.com", 50)); err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	leads, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leads) != writers*perWriter {
		t.Fatalf("expected %d records, got %d", writers*perWriter, len(leads))
	}
	for i, l := range leads {
		if l.Email != "concurrent@example.com" || l.InitialScore != 50 {
			t.Fatalf("record %d corrupted: %+v", i, l)
		}
	}
}
