package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
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

func TestStoreSaveRunAssignsID(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Player: "alice", Difficulty: "normal", Score: 1200, Level: 2, Kills: 4, Ticks: 900})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id = %q, expected a UUID: %v", id, err)
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}
	got := runs[0]
	if got.ID != id || got.Player != "alice" || got.Difficulty != "normal" ||
		got.Score != 1200 || got.Level != 2 || got.Kills != 4 || got.Ticks != 900 {
		t.Errorf("TopRuns()[0] = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not set")
	}
}

func TestStoreSaveRunKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.New().String()

	id, err := store.SaveRun(Run{ID: want, Player: "bob", Difficulty: "hard"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != want {
		t.Errorf("SaveRun() = %q, expected %q", id, want)
	}

	if _, err := store.SaveRun(Run{ID: want, Player: "bob", Difficulty: "hard"}); err == nil {
		t.Error("SaveRun() with duplicate ID succeeded")
	}
}

func TestStoreSaveRunRequiresPlayer(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRun(Run{Score: 10}); err == nil {
		t.Error("SaveRun() without player succeeded")
	}
}

func TestStoreTopRunsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i, score := range []int{300, 500, 100, 400, 200} {
		player := "p" + string(rune('a'+i))
		if _, err := store.SaveRun(Run{Player: player, Difficulty: "normal", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}

	all, _ := store.TopRuns(0)
	if len(all) != 5 {
		t.Errorf("TopRuns(0) = %d runs, expected default limit to include all 5", len(all))
	}
}

func TestStoreTiesKeepInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "first", Difficulty: "normal", Score: 100})
	store.SaveRun(Run{Player: "second", Difficulty: "normal", Score: 100})

	runs, _ := store.TopRuns(10)
	if len(runs) != 2 || runs[0].Player != "first" {
		t.Errorf("TopRuns() = %v, expected first before second", runs)
	}
}

func TestStorePlayerRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "alice", Difficulty: "easy", Score: 50})
	store.SaveRun(Run{Player: "bob", Difficulty: "easy", Score: 500})
	store.SaveRun(Run{Player: "alice", Difficulty: "hard", Score: 150})

	runs, err := store.PlayerRuns("alice", 10)
	if err != nil {
		t.Fatalf("PlayerRuns() failed: %v", err)
	}
	if len(runs) != 2 || runs[0].Score != 150 || runs[1].Score != 50 {
		t.Errorf("PlayerRuns() = %v", runs)
	}
}

func TestStoreDifficultyRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "alice", Difficulty: "easy", Score: 900})
	store.SaveRun(Run{Player: "bob", Difficulty: "hard", Score: 300})
	store.SaveRun(Run{Player: "carol", Difficulty: "hard", Score: 700})

	tests := []struct {
		difficulty string
		expected   []int
	}{
		{"hard", []int{700, 300}},
		{"easy", []int{900}},
		{"normal", nil},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			runs, err := store.DifficultyRuns(tt.difficulty, 10)
			if err != nil {
				t.Fatalf("DifficultyRuns() failed: %v", err)
			}
			if len(runs) != len(tt.expected) {
				t.Fatalf("DifficultyRuns(%q) = %d runs, expected %d", tt.difficulty, len(runs), len(tt.expected))
			}
			for i, r := range runs {
				if r.Score != tt.expected[i] || r.Difficulty != tt.difficulty {
					t.Errorf("DifficultyRuns(%q)[%d] = %+v, expected score %d", tt.difficulty, i, r, tt.expected[i])
				}
			}
		})
	}
}

func TestStoreHighScoreAndCount(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty store, got %d", high)
	}
	if n, _ := store.RunCount(); n != 0 {
		t.Errorf("RunCount() = %d, expected 0", n)
	}

	store.SaveRun(Run{Player: "a", Difficulty: "normal", Score: 100})
	store.SaveRun(Run{Player: "a", Difficulty: "normal", Score: 300})
	store.SaveRun(Run{Player: "b", Difficulty: "normal", Score: 200})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("RunCount() = %d, expected 3", n)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.RunCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() on empty store = %+v", empty)
	}

	store.SaveRun(Run{Player: "a", Difficulty: "normal", Score: 100, Level: 1, Kills: 3})
	store.SaveRun(Run{Player: "a", Difficulty: "normal", Score: 300, Level: 4, Kills: 7})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunCount != 2 || stats.HighScore != 300 || stats.BestLevel != 4 || stats.TotalKills != 10 {
		t.Errorf("Stats() = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed was not set")
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Player: "a", Difficulty: "normal", Score: 100})
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if n, _ := store.RunCount(); n != 0 {
		t.Errorf("RunCount() after clear = %d, expected 0", n)
	}
}
