package registry

import (
	"strings"
	"testing"

	"github.com/poligon98/arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                                    { return g.id }
func (g *stubGame) Title() string                                 { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)                      {}
func (g *stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (g *stubGame) Paint(core.Canvas)                             {}
func (g *stubGame) Render(*core.Screen)                           {}
func (g *stubGame) WorldSize() (int, int)                         { return 100, 50 }
func (g *stubGame) State() core.GameState                         { return core.GameState{} }

func TestRegisterListCreate(t *testing.T) {
	Register("zz-stub-b", func() Game { return &stubGame{id: "zz-stub-b"} })
	Register("zz-stub-a", func() Game { return &stubGame{id: "zz-stub-a"} })

	if !Exists("zz-stub-a") || !Exists("zz-stub-b") {
		t.Fatal("registered games should exist")
	}
	if Exists("zz-missing") {
		t.Error("unregistered game should not exist")
	}

	list := List()
	var ids []string
	for _, info := range list {
		if strings.HasPrefix(info.ID, "zz-stub-") {
			ids = append(ids, info.ID)
			if info.Title != strings.ToUpper(info.ID) {
				t.Errorf("title for %s = %q", info.ID, info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz-stub-a" || ids[1] != "zz-stub-b" {
		t.Errorf("List() should be sorted by ID, got %v", ids)
	}

	g, err := Create("zz-stub-a")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "zz-stub-a" {
		t.Errorf("Create() returned %q", g.ID())
	}

	if _, err := Create("zz-missing"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", func() Game { return &stubGame{id: "zz-dup"} })
}
