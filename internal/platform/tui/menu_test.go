package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/portfolio-runner/internal/registry"
)

func menuWith(items ...MenuItem) MenuModel {
	m := NewMenuModel(80, 24)
	m.items = items
	return m
}

func TestMenuNavigation(t *testing.T) {
	var m tea.Model = menuWith(
		MenuItem{GameID: "flat", Title: "Portfolio Runner"},
		MenuItem{GameID: "phased", Title: "Portfolio Journey"},
	)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp}) // already at top
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // already at bottom
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	menu := m.(MenuModel)
	if menu.Selected() == nil || menu.Selected().GameID != "phased" {
		t.Fatalf("selected %+v, want phased", menu.Selected())
	}
	if cmd == nil {
		t.Error("selecting should exit the menu")
	}
}

func TestMenuQuit(t *testing.T) {
	var m tea.Model = menuWith(MenuItem{GameID: "flat", Title: "Portfolio Runner"})
	m, _ = m.Update(runes("q"))

	menu := m.(MenuModel)
	if !menu.IsQuitting() || menu.Selected() != nil {
		t.Error("q should quit without a selection")
	}
	if menu.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestMenuEmptySelect(t *testing.T) {
	var m tea.Model = menuWith()
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil || m.(MenuModel).Selected() != nil {
		t.Error("selecting from an empty menu should do nothing")
	}
}

func TestMenuListsRegistry(t *testing.T) {
	m := NewMenuModel(80, 24)
	if len(m.items) != len(registry.List()) {
		t.Errorf("menu has %d items, registry has %d", len(m.items), len(registry.List()))
	}
}

func TestMenuViewShowsCursor(t *testing.T) {
	m := menuWith(
		MenuItem{GameID: "flat", Title: "Portfolio Runner"},
		MenuItem{GameID: "phased", Title: "Portfolio Journey"},
	)
	view := ansiSeq.ReplaceAllString(m.View(), "")
	if !strings.Contains(view, "> Portfolio Runner (flat)") {
		t.Errorf("cursor line missing from view:\n%s", view)
	}
	if !strings.Contains(view, "  Portfolio Journey (phased)") {
		t.Errorf("second item missing from view:\n%s", view)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 2, "abc"},
		{"", 4, "  "},
	}
	for _, tt := range tests {
		if got := centerText(tt.text, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}
