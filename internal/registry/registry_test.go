package registry

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string {
	return g.id
}

func (g stubGame) Title() string {
	return "Stub " + g.id
}

func (g stubGame) Reset(core.RuntimeConfig) {}

func (g stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g stubGame) Render(*core.Screen) {}

func (g stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should be registered")
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("ID() = %q, want aa_stub", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown game")
	}

	ids := IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs not sorted: %v", ids)
		}
	}

	for _, info := range List() {
		if info.ID == "aa_stub" && info.Title != "Stub aa_stub" {
			t.Errorf("Title = %q", info.Title)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
}
