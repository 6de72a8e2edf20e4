package stats

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.jsonl")
	ctx := context.Background()

	s, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("OpenFileStore: %v", err)
	}
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	for _, n := range []int{5, 9} {
		if _, err := s.Create(ctx, n); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	reopened, err := OpenFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	rec, err := reopened.Create(ctx, 11)
	if err != nil {
		t.Fatalf("Create after reopen: %v", err)
	}
	if rec.ID != 3 {
		t.Fatalf("ID=%d, want 3", rec.ID)
	}

	recs, err := reopened.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recs) != 3 || recs[0].Iterations != 5 || recs[1].Iterations != 9 || recs[2].Iterations != 11 {
		t.Fatalf("unexpected records %+v", recs)
	}
	if !recs[0].CreatedAt.Equal(fixed) {
		t.Fatalf("CreatedAt=%s, want %s", recs[0].CreatedAt, fixed)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.jsonl")
	if err := os.WriteFile(path, []byte("{\"id\":1}\nnot json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFileStore(path); err == nil {
		t.Fatal("expected an error for a corrupt line")
	}
}

func TestMemoryStoreSequence(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	a, _ := m.Create(ctx, 1)
	b, _ := m.Create(ctx, 2)
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("IDs %d,%d want 1,2", a.ID, b.ID)
	}
	recs, _ := m.List(ctx)
	recs[0].Iterations = 99
	again, _ := m.List(ctx)
	if again[0].Iterations != 1 {
		t.Fatal("List exposed internal storage")
	}
}
