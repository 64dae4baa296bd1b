package tui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/poligon98/arcade/internal/core"
)

// fakeGame records what the model feeds it.
type fakeGame struct {
	resets int
	steps  []core.InputFrame
	dts    []float64
	script []core.GameState // States returned by successive steps
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
}
func (g *fakeGame) Step(in core.InputFrame, dt float64) core.StepResult {
	copied := core.NewInputFrame()
	for a := range in.Actions {
		copied.Set(a)
	}
	g.steps = append(g.steps, copied)
	g.dts = append(g.dts, dt)
	var state core.GameState
	if i := len(g.steps) - 1; i < len(g.script) {
		state = g.script[i]
	}
	state.Score = len(g.steps)
	return core.StepResult{State: state}
}
func (g *fakeGame) Paint(core.Canvas) {}
func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake game")
}
func (g *fakeGame) WorldSize() (int, int) { return 1000, 600 }
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func newTestModel(g *fakeGame) Model {
	return NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, nil)
}

func TestModelInitResetsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	if cmd := m.Init(); cmd == nil {
		t.Error("Init should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
}

func TestModelTickUsesFrameClock(t *testing.T) {
	g := &fakeGame{}
	var model tea.Model = newTestModel(g)

	start := time.Unix(1000, 0)
	model, _ = model.Update(TickMsg(start))
	model, _ = model.Update(TickMsg(start.Add(50 * time.Millisecond)))

	if len(g.dts) != 2 {
		t.Fatalf("got %d steps, want 2", len(g.dts))
	}
	if math.Abs(g.dts[0]-1.0/60) > 1e-9 {
		t.Errorf("first dt = %v, want one tick", g.dts[0])
	}
	if math.Abs(g.dts[1]-0.05) > 1e-9 {
		t.Errorf("second dt = %v, want 0.05", g.dts[1])
	}
	if model.(Model).State().Score != 2 {
		t.Errorf("state not refreshed from step result")
	}
}

func TestModelTickAfterResumeIsOneStep(t *testing.T) {
	tests := []struct {
		name   string
		script []core.GameState
	}{
		{"unpause", []core.GameState{{Paused: true}, {Paused: true}, {}}},
		{"restart", []core.GameState{{GameOver: true}, {GameOver: true}, {}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := &fakeGame{script: tc.script}
			var model tea.Model = newTestModel(g)

			start := time.Unix(1000, 0)
			for _, offset := range []time.Duration{0, 50, 100, 400} {
				model, _ = model.Update(TickMsg(start.Add(offset * time.Millisecond)))
			}

			if len(g.dts) != 4 {
				t.Fatalf("got %d steps, want 4", len(g.dts))
			}
			if math.Abs(g.dts[2]-0.05) > 1e-9 {
				t.Errorf("resuming step dt = %v, want 0.05", g.dts[2])
			}
			if math.Abs(g.dts[3]-1.0/60) > 1e-9 {
				t.Errorf("step after resume dt = %v, want one tick", g.dts[3])
			}
		})
	}
}

func TestModelInputClearedAfterTick(t *testing.T) {
	g := &fakeGame{}
	var model tea.Model = newTestModel(g)

	model, _ = model.Update(runeKey('h'))
	model, _ = model.Update(TickMsg(time.Unix(1, 0)))
	_, _ = model.Update(TickMsg(time.Unix(2, 0)))

	if !g.steps[0].Has(core.ActionToggleHitboxes) {
		t.Error("first step should carry the key press")
	}
	if g.steps[1].Has(core.ActionToggleHitboxes) {
		t.Error("input should be cleared after a tick")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{}
	var model tea.Model = newTestModel(g)

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command should be tea.Quit")
	}
	if model.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelViewAndResize(t *testing.T) {
	g := &fakeGame{}
	var model tea.Model = newTestModel(g)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m := model.(Model)
	if m.screen.Width() != 60 || m.screen.Height() != 19 {
		t.Errorf("screen = %dx%d, want 60x19", m.screen.Width(), m.screen.Height())
	}

	view := model.View()
	if !strings.Contains(view, "fake game") {
		t.Error("view should contain the game render")
	}
	if !strings.Contains(view, "jump") {
		t.Error("view should contain the key help")
	}
}
