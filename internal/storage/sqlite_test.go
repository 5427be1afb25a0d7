package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/replay"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleJournal(seed int64) replay.Journal {
	cfg := config.Default()
	cfg.Scoring.PerPair = 1
	return replay.Journal{
		Seed:   seed,
		Config: cfg,
		Events: []replay.Event{
			{Tick: 0, Kind: replay.EventJump},
			{Tick: 89, Kind: replay.EventSpawn},
			{Tick: 120, Kind: replay.EventJump},
		},
		Points: 2,
		Ticks:  150,
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndLoad(t *testing.T) {
	store := openTestStore(t)
	want := sampleJournal(42)

	id, err := store.SaveRun(want)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}

	got := run.Journal
	if got.Seed != want.Seed || got.Points != want.Points || got.Ticks != want.Ticks {
		t.Errorf("header mismatch: got seed=%d points=%g ticks=%d", got.Seed, got.Points, got.Ticks)
	}
	if got.Config != want.Config {
		t.Errorf("config mismatch:\n got %+v\nwant %+v", got.Config, want.Config)
	}
	if len(got.Events) != len(want.Events) {
		t.Fatalf("got %d events, expected %d", len(got.Events), len(want.Events))
	}
	for i := range want.Events {
		if got.Events[i] != want.Events[i] {
			t.Errorf("event %d = %+v, expected %+v", i, got.Events[i], want.Events[i])
		}
	}
	if run.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreLoadMissingRun(t *testing.T) {
	store := openTestStore(t)

	_, err := store.LoadRun(99)
	if !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for seed := int64(1); seed <= 5; seed++ {
		if _, err := store.SaveRun(sampleJournal(seed)); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(3)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}

	// Newest first
	if runs[0].Seed != 5 || runs[1].Seed != 4 || runs[2].Seed != 3 {
		t.Errorf("Runs not in expected order: %+v", runs)
	}
	if runs[0].Events != 3 || runs[0].Score != 2 || runs[0].Ticks != 150 {
		t.Errorf("summary mismatch: %+v", runs[0])
	}
}

func TestStoreDeleteRun(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(sampleJournal(1))
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	keep, _ := store.SaveRun(sampleJournal(2))

	if err := store.DeleteRun(id); err != nil {
		t.Fatalf("DeleteRun() failed: %v", err)
	}
	if _, err := store.LoadRun(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("deleted run should be gone, got %v", err)
	}
	if err := store.DeleteRun(id); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("second delete should report ErrRunNotFound, got %v", err)
	}

	run, err := store.LoadRun(keep)
	if err != nil {
		t.Fatalf("other run should survive: %v", err)
	}
	if len(run.Journal.Events) != 3 {
		t.Errorf("other run lost events: %d", len(run.Journal.Events))
	}
}

func TestStoreEmptyJournal(t *testing.T) {
	store := openTestStore(t)

	j := sampleJournal(7)
	j.Events = nil
	id, err := store.SaveRun(j)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.LoadRun(id)
	if err != nil {
		t.Fatalf("LoadRun() failed: %v", err)
	}
	if len(run.Journal.Events) != 0 {
		t.Errorf("expected no events, got %d", len(run.Journal.Events))
	}
}
