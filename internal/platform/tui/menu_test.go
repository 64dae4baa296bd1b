package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/poligon98/arcade/internal/core"
	"github.com/poligon98/arcade/internal/registry"
)

func testMenu() MenuModel {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m.items = []registry.GameInfo{
		{ID: "dash", Title: "Dash"},
		{ID: "dash-classic", Title: "Dash (Classic)"},
	}
	return m
}

func TestMenuNavigateAndSelect(t *testing.T) {
	var model tea.Model = testMenu()

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp}) // Already at the top
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown}) // Already at the bottom
	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m := model.(MenuModel)
	if m.Selected() == nil || m.Selected().ID != "dash-classic" {
		t.Fatalf("selected = %+v, want dash-classic", m.Selected())
	}
	if cmd == nil {
		t.Error("selecting should end the menu program")
	}
	if m.IsQuitting() {
		t.Error("selecting is not quitting")
	}
}

func TestMenuQuit(t *testing.T) {
	var model tea.Model = testMenu()

	model, cmd := model.Update(runeKey('q'))
	m := model.(MenuModel)
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit the menu")
	}
	if m.Selected() != nil {
		t.Error("quitting should not select a game")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestMenuView(t *testing.T) {
	var model tea.Model = testMenu()
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := model.View()
	for _, want := range []string{"A R C A D E", "Dash", "Dash (Classic)", "play"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if model.(MenuModel).Config().ScreenW != 100 {
		t.Error("resize should update the runtime config")
	}
}
