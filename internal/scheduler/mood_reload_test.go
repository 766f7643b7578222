package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MrSnakeDoc/songjournal/internal/index"
	"github.com/MrSnakeDoc/songjournal/internal/logger"
)

func writeMoods(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write moods file: %v", err)
	}
}

func TestMoodReloader_Reload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moods.yaml")
	writeMoods(t, path, "moods: [sleepy, hyped]\n")

	catalog := index.NewMoodCatalog()
	mr := NewMoodReloader(path, catalog, logger.New("error", false), time.Hour, nil)

	if err := mr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if catalog.Count() != 2 || !catalog.Contains("hyped") {
		t.Errorf("catalog = %v, want [sleepy hyped]", catalog.All())
	}
}

func TestMoodReloader_ReloadFailureKeepsCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moods.yaml")
	writeMoods(t, path, "moods: [sleepy]\n")

	catalog := index.NewMoodCatalog()
	mr := NewMoodReloader(path, catalog, logger.New("error", false), time.Hour, nil)
	if err := mr.Reload(context.Background()); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}

	writeMoods(t, path, "moods: [broken")
	if err := mr.Reload(context.Background()); err == nil {
		t.Fatal("Reload should fail on invalid yaml")
	}
	if all := catalog.All(); len(all) != 1 || all[0] != "sleepy" {
		t.Errorf("catalog = %v, previous moods should survive a failed reload", all)
	}
}

func TestMoodReloader_StartMissingFile(t *testing.T) {
	catalog := index.NewMoodCatalog()
	before := catalog.Count()

	mr := NewMoodReloader("/nonexistent/moods.yaml", catalog, logger.New("error", false), time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := mr.Start(ctx); err != nil {
		t.Fatalf("Start should tolerate a missing file: %v", err)
	}
	mr.Stop()

	if catalog.Count() != before || catalog.Source() != "builtin" {
		t.Error("built-in moods should stay when the file is missing")
	}
}

func TestMoodReloader_StartInvalidInterval(t *testing.T) {
	mr := NewMoodReloader("x.yaml", index.NewMoodCatalog(), logger.New("error", false), 0, nil)
	if err := mr.Start(context.Background()); err == nil {
		t.Error("Start should reject a zero interval")
	}
}

func TestMoodReloader_ManualTrigger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moods.yaml")
	writeMoods(t, path, "moods: [one]\n")

	catalog := index.NewMoodCatalog()
	trigger := make(chan struct{}, 1)
	mr := NewMoodReloader(path, catalog, logger.New("error", false), time.Hour, trigger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := mr.Start(ctx); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer mr.Stop()

	writeMoods(t, path, "moods: [one, two]\n")
	trigger <- struct{}{}

	deadline := time.Now().Add(2 * time.Second)
	for catalog.Count() != 2 {
		if time.Now().After(deadline) {
			t.Fatalf("manual trigger did not reload moods, catalog = %v", catalog.All())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
