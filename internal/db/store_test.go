package db

import (
	"path/filepath"
	"testing"
	"time"

	"parkview/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "parkview.db"))
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOpen_CreatesNestedDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "parkview.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("Close returned error: %v", err)
	}
}

func TestMarkSeen_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	rows := []models.Row{
		{Title: "글 하나", URL: "/service/board/park/1"},
		{Title: "글 둘", URL: "/service/board/park/2"},
	}
	for _, r := range rows {
		if err := store.MarkSeen("/service/board/park", r); err != nil {
			t.Fatalf("MarkSeen(%s) returned error: %v", r.URL, err)
		}
	}

	// Marking twice is a no-op, not an error.
	if err := store.MarkSeen("/service/board/park", rows[0]); err != nil {
		t.Fatalf("duplicate MarkSeen returned error: %v", err)
	}

	seen, err := store.SeenURLs("/service/board/park")
	if err != nil {
		t.Fatalf("SeenURLs returned error: %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("len(seen) = %d, want 2", len(seen))
	}
	for _, r := range rows {
		if !seen[r.URL] {
			t.Errorf("seen[%q] = false, want true", r.URL)
		}
	}
}

func TestSeenURLs_IsolatedPerBoard(t *testing.T) {
	store := openTestStore(t)

	if err := store.MarkSeen("/service/board/park", models.Row{URL: "/service/board/park/1"}); err != nil {
		t.Fatalf("MarkSeen returned error: %v", err)
	}

	seen, err := store.SeenURLs("/service/board/kin")
	if err != nil {
		t.Fatalf("SeenURLs returned error: %v", err)
	}
	if len(seen) != 0 {
		t.Errorf("len(seen) = %d for another board, want 0", len(seen))
	}
}

func TestMarkSeenAll(t *testing.T) {
	store := openTestStore(t)

	rows := []models.Row{
		{Title: "a", URL: "/p/1"},
		{Title: "b", URL: "/p/2"},
		{Title: "c", URL: "/p/3"},
	}
	if err := store.MarkSeenAll("/service/board/use", rows); err != nil {
		t.Fatalf("MarkSeenAll returned error: %v", err)
	}
	if err := store.MarkSeenAll("/service/board/use", nil); err != nil {
		t.Fatalf("MarkSeenAll(nil) returned error: %v", err)
	}

	seen, err := store.SeenURLs("/service/board/use")
	if err != nil {
		t.Fatalf("SeenURLs returned error: %v", err)
	}
	if len(seen) != 3 {
		t.Errorf("len(seen) = %d, want 3", len(seen))
	}
}

func TestPruneSeenBefore(t *testing.T) {
	store := openTestStore(t)

	if err := store.MarkSeen("/service/board/park", models.Row{URL: "/p/old"}); err != nil {
		t.Fatalf("MarkSeen returned error: %v", err)
	}

	// A cutoff in the future removes everything recorded so far.
	n, err := store.PruneSeenBefore(time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("PruneSeenBefore returned error: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned = %d, want 1", n)
	}

	seen, err := store.SeenURLs("/service/board/park")
	if err != nil {
		t.Fatalf("SeenURLs returned error: %v", err)
	}
	if len(seen) != 0 {
		t.Errorf("len(seen) = %d after prune, want 0", len(seen))
	}
}

func TestLastBoard_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	path, err := store.LastBoard()
	if err != nil {
		t.Fatalf("LastBoard returned error: %v", err)
	}
	if path != "" {
		t.Fatalf("LastBoard = %q before any save, want empty", path)
	}

	if err := store.SetLastBoard("/service/board/jirum"); err != nil {
		t.Fatalf("SetLastBoard returned error: %v", err)
	}
	if err := store.SetLastBoard("/service/board/news"); err != nil {
		t.Fatalf("second SetLastBoard returned error: %v", err)
	}

	path, err = store.LastBoard()
	if err != nil {
		t.Fatalf("LastBoard returned error: %v", err)
	}
	if path != "/service/board/news" {
		t.Errorf("LastBoard = %q, want %q", path, "/service/board/news")
	}
}
