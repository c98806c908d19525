package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "leaderboard.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestTopRecordsOrdering(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	for _, rec := range []struct {
		name  string
		score int
	}{
		{"ana", 300},
		{"bo", 900},
		{"cy", 300},
		{"di", 50},
	} {
		if _, err := st.AddRecord(ctx, rec.name, rec.score); err != nil {
			t.Fatalf("add record: %v", err)
		}
	}

	top, err := st.TopRecords(ctx, 3)
	if err != nil {
		t.Fatalf("top records: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 records, got %d", len(top))
	}
	if top[0].Name != "bo" || top[1].Name != "ana" || top[2].Name != "cy" {
		t.Fatalf("unexpected order: %+v", top)
	}
	if top[0].CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}
}

func TestTopRecordsDefaultLimit(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < DefaultTopLimit+5; i++ {
		if _, err := st.AddRecord(ctx, "p", i); err != nil {
			t.Fatalf("add record: %v", err)
		}
	}
	top, err := st.TopRecords(ctx, 0)
	if err != nil {
		t.Fatalf("top records: %v", err)
	}
	if len(top) != DefaultTopLimit {
		t.Fatalf("expected %d records, got %d", DefaultTopLimit, len(top))
	}
}

func TestAddRecordValidation(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.AddRecord(ctx, "  ", 10); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := st.AddRecord(ctx, "ana", -1); err == nil {
		t.Fatalf("expected error for negative score")
	}
}

func TestHighScore(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	best, err := st.HighScore(ctx)
	if err != nil {
		t.Fatalf("high score: %v", err)
	}
	if best != 0 {
		t.Fatalf("expected 0 on empty board, got %d", best)
	}
	if _, err := st.AddRecord(ctx, "ana", 420); err != nil {
		t.Fatalf("add record: %v", err)
	}
	if best, _ = st.HighScore(ctx); best != 420 {
		t.Fatalf("expected 420, got %d", best)
	}
}
