package fetchcache_test

import (
	"context"
	"errors"
	"testing"

	"voicegen/internal/fetchcache"
)

func openStore(t *testing.T) *fetchcache.Store {
	t.Helper()
	store, err := fetchcache.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close returned error: %v", err)
		}
	})
	return store
}

func TestLatestRunEmpty(t *testing.T) {
	store := openStore(t)
	if _, err := store.LatestRun(context.Background()); !errors.Is(err, fetchcache.ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns, got %v", err)
	}
}

func TestSaveAndLatestRun(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	first, err := store.SaveRun(ctx, []byte(`{"voices":[]}`), 0)
	if err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected run id")
	}

	payload := []byte(`{"voices":[{"name":"en-US-Wavenet-B"}]}`)
	second, err := store.SaveRun(ctx, payload, 1)
	if err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	latest, err := store.LatestRun(ctx)
	if err != nil {
		t.Fatalf("LatestRun returned error: %v", err)
	}
	if latest.ID != second.ID {
		t.Fatalf("latest run = %q, want %q", latest.ID, second.ID)
	}
	if string(latest.Payload) != string(payload) {
		t.Fatalf("latest payload = %s", latest.Payload)
	}
	if latest.VoiceCount != 1 {
		t.Fatalf("latest voice count = %d, want 1", latest.VoiceCount)
	}
}

func TestGetRun(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	saved, err := store.SaveRun(ctx, []byte(`{}`), 3)
	if err != nil {
		t.Fatalf("SaveRun returned error: %v", err)
	}

	got, err := store.GetRun(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetRun returned error: %v", err)
	}
	if got.VoiceCount != 3 {
		t.Fatalf("voice count = %d, want 3", got.VoiceCount)
	}

	if _, err := store.GetRun(ctx, "missing"); !errors.Is(err, fetchcache.ErrNoRuns) {
		t.Fatalf("expected ErrNoRuns for missing id, got %v", err)
	}
}

func TestListRunsNewestFirstWithoutPayload(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.SaveRun(ctx, []byte(`{}`), i); err != nil {
			t.Fatalf("SaveRun returned error: %v", err)
		}
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	for _, run := range runs {
		if len(run.Payload) != 0 {
			t.Fatal("ListRuns should not load payloads")
		}
	}
	for i := 1; i < len(runs); i++ {
		if runs[i-1].FetchedAt.Before(runs[i].FetchedAt) {
			t.Fatal("runs not ordered newest first")
		}
	}
}

func TestPrune(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := store.SaveRun(ctx, []byte(`{}`), i); err != nil {
			t.Fatalf("SaveRun returned error: %v", err)
		}
	}

	removed, err := store.Prune(ctx, 2)
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if removed != 3 {
		t.Fatalf("pruned %d runs, want 3", removed)
	}

	runs, err := store.ListRuns(ctx, 10)
	if err != nil {
		t.Fatalf("ListRuns returned error: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs after prune, got %d", len(runs))
	}
}

func TestOpenRejectsConcurrentUse(t *testing.T) {
	dir := t.TempDir()
	store, err := fetchcache.Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, err := fetchcache.Open(dir); err == nil {
		t.Fatal("expected second Open on the same directory to fail")
	}
}
