package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func openSeededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	recs := []storage.EpisodeRecord{
		{RunID: "run-a", Controller: "autopilot", Seed: 1, Score: 7, Frames: 900, Cause: "none"},
		{RunID: "run-a", Controller: "idle", Seed: 1, Frames: 23, Cause: "floor-breach"},
		{RunID: "run-a", Controller: "autopilot", Seed: 2, Score: 4, Frames: 610, Cause: "obstacle-collision"},
		{RunID: "run-b", Controller: "autopilot", Seed: 3, Score: 2, Frames: 400, Cause: "obstacle-collision"},
		{RunID: "session", Controller: "keyboard", Seed: 9, Score: 1, Frames: 150, Cause: "quit-requested"},
	}
	if err := store.SaveEpisodes(recs); err != nil {
		t.Fatalf("SaveEpisodes() failed: %v", err)
	}
	return store
}

func TestControllerFor(t *testing.T) {
	tests := []struct {
		name string
		game *flappy.Game
		want string
	}{
		{"keyboard variant", flappy.New(), "keyboard"},
		{"autopilot variant", flappy.NewAuto(), "autopilot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := controllerFor(tt.game); got != tt.want {
				t.Errorf("controllerFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintEpisodesFiltersByController(t *testing.T) {
	store := openSeededStore(t)

	var buf bytes.Buffer
	if err := printEpisodes(&buf, store, "autopilot", 10); err != nil {
		t.Fatalf("printEpisodes() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Recent Episodes - autopilot") {
		t.Errorf("missing header in:\n%s", out)
	}
	for _, other := range []string{"idle", "keyboard"} {
		if strings.Contains(out, other) {
			t.Errorf("output lists %s episodes:\n%s", other, out)
		}
	}
	if n := strings.Count(out, "  autopilot "); n != 3 {
		t.Errorf("got %d autopilot rows, want 3", n)
	}

	wantEndings := map[flappy.Cause]int{
		flappy.CauseCollision: 2,
		flappy.CauseFloor:     0,
		flappy.CauseQuit:      0,
		flappy.CauseNone:      1,
	}
	for cause, n := range wantEndings {
		line := fmt.Sprintf("  %-18s  %d\n", cause, n)
		if !strings.Contains(out, line) {
			t.Errorf("missing ending line %q in:\n%s", line, out)
		}
	}
}

func TestPrintEpisodesEmpty(t *testing.T) {
	store := openSeededStore(t)

	var buf bytes.Buffer
	if err := printEpisodes(&buf, store, "perceptron", 10); err != nil {
		t.Fatalf("printEpisodes() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No episodes recorded yet.") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Endings") {
		t.Error("empty controller should not print endings")
	}
}

func TestPrintRun(t *testing.T) {
	store := openSeededStore(t)

	var buf bytes.Buffer
	if err := printRun(&buf, store, "run-a"); err != nil {
		t.Fatalf("printRun() failed: %v", err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "Run run-a\n") {
		t.Errorf("missing header in:\n%s", out)
	}
	if strings.Contains(out, "keyboard") {
		t.Errorf("run-a output includes another run:\n%s", out)
	}

	tallies := []string{
		fmt.Sprintf("  %-12s  episodes %d  failures %d  best %d\n", "autopilot", 2, 1, 7),
		fmt.Sprintf("  %-12s  episodes %d  failures %d  best %d\n", "idle", 1, 1, 0),
	}
	for _, line := range tallies {
		if !strings.Contains(out, line) {
			t.Errorf("missing tally %q in:\n%s", line, out)
		}
	}
	if strings.Index(out, tallies[0]) > strings.Index(out, tallies[1]) {
		t.Error("tallies should be sorted by controller")
	}
}

func TestPrintRunUnknown(t *testing.T) {
	store := openSeededStore(t)

	var buf bytes.Buffer
	if err := printRun(&buf, store, "missing"); err == nil {
		t.Error("expected error for unknown run")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output for unknown run:\n%s", buf.String())
	}
}
