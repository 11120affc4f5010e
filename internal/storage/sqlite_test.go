package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/zxrescue/internal/sim"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("zxrescue_hs")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}

	for _, score := range []int{1200, 3400, 800} {
		if err := store.SaveHighScore("zxrescue_hs", score); err != nil {
			t.Fatalf("SaveHighScore() failed: %v", err)
		}
	}

	high, err = store.HighScore("zxrescue_hs")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 3400 {
		t.Errorf("Expected high score of 3400, got %d", high)
	}

	// Keys are independent
	other, _ := store.HighScore("other")
	if other != 0 {
		t.Errorf("Expected 0 for other key, got %d", other)
	}

	if err := store.ClearHighScore("zxrescue_hs"); err != nil {
		t.Fatalf("ClearHighScore() failed: %v", err)
	}
	if high, _ := store.HighScore("zxrescue_hs"); high != 0 {
		t.Errorf("Expected 0 after clear, got %d", high)
	}
}

func TestStoreHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveHighScore("zxrescue_hs", 2500)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if high, _ := store.HighScore("zxrescue_hs"); high != 2500 {
		t.Errorf("Expected persisted high score 2500, got %d", high)
	}
}

func TestStoreSaveRun(t *testing.T) {
	store := openTestStore(t)

	result := sim.RunResult{
		Seed:      "ZXRESCUE",
		Round:     2,
		Score:     2580,
		Crates:    5,
		Refugees:  1,
		EndReason: sim.EndOutOfLives,
		SimTime:   412.5,
	}
	runID, err := store.SaveRun(result)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(runID); err != nil {
		t.Errorf("run id %q is not a uuid: %v", runID, err)
	}

	got, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() found nothing")
	}
	if got.Seed != result.Seed || got.Round != 2 || got.Score != 2580 ||
		got.Crates != 5 || got.Refugees != 1 || got.EndReason != sim.EndOutOfLives || got.SimSecs != 412.5 {
		t.Errorf("stored run mismatch: %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not parsed")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("unknown run id: %+v, %v", missing, err)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []sim.RunResult{
		{Seed: "A", Score: 100, EndReason: sim.EndTimeUp},
		{Seed: "A", Score: 500, EndReason: sim.EndOutOfLives},
		{Seed: "B", Score: 900, EndReason: sim.EndOutOfLives},
		{Seed: "A", Score: 300, EndReason: sim.EndTimeUp},
	}
	for _, r := range runs {
		if err := store.SaveRunResult(r); err != nil {
			t.Fatalf("SaveRunResult() failed: %v", err)
		}
	}

	all, err := store.TopRuns("", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(all) != 4 || all[0].Score != 900 || all[3].Score != 100 {
		t.Errorf("TopRuns(all) order wrong: %+v", all)
	}

	seedA, _ := store.TopRuns("A", 2)
	if len(seedA) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(seedA))
	}
	if seedA[0].Score != 500 || seedA[1].Score != 300 {
		t.Errorf("TopRuns(A) = %d, %d; expected 500, 300", seedA[0].Score, seedA[1].Score)
	}

	recent, _ := store.RecentRuns(2)
	if len(recent) != 2 || recent[0].Score != 300 || recent[1].Score != 900 {
		t.Errorf("RecentRuns order wrong: %+v", recent)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 {
		t.Errorf("empty stats: %+v", stats)
	}

	store.SaveRunResult(sim.RunResult{Seed: "A", Round: 1, Score: 200, Crates: 2, Refugees: 3, EndReason: sim.EndTimeUp})
	store.SaveRunResult(sim.RunResult{Seed: "A", Round: 3, Score: 400, Crates: 11, Refugees: 5, EndReason: sim.EndOutOfLives})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.BestScore != 400 || stats.AvgScore != 300 {
		t.Errorf("stats scores: %+v", stats)
	}
	if stats.TotalCrates != 13 || stats.TotalRefugees != 8 || stats.BestRound != 3 {
		t.Errorf("stats totals: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not parsed")
	}
}

func TestStoreAsResultSaver(t *testing.T) {
	store := openTestStore(t)
	store.SaveHighScore("zxrescue_hs", 700)

	var saver sim.ResultSaver = store
	if high, _ := saver.HighScore("zxrescue_hs"); high != 700 {
		t.Errorf("ResultSaver.HighScore = %d, expected 700", high)
	}
}
