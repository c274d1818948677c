package tui

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/firsthome/firsthome/internal/journey"
	"github.com/firsthome/firsthome/internal/localstore"
	"github.com/firsthome/firsthome/internal/nav"
)

func testModel(t *testing.T) Model {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := localstore.New(t.TempDir(), logger)
	return New(store, nil, logger)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestStartsOnOnboarding(t *testing.T) {
	m := testModel(t)
	if m.nav.Current() != nav.ScreenOnboarding {
		t.Fatalf("current = %s, want onboarding", m.nav.Current())
	}
	if !strings.Contains(m.View(), "FirstHome") {
		t.Error("onboarding view missing app name")
	}
}

func TestEnterOpensTracker(t *testing.T) {
	m := press(t, testModel(t), "enter")
	if m.nav.Current() != nav.ScreenTracker {
		t.Fatalf("current = %s, want tracker", m.nav.Current())
	}
	if len(m.stages) != 7 {
		t.Fatalf("stages = %d, want 7", len(m.stages))
	}
}

func TestToggleItemPersistsLocally(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir := t.TempDir()
	store := localstore.New(dir, logger)

	m := press(t, New(store, nil, logger), "enter", " ")

	if !m.stages[0].ChecklistItems[0].Completed {
		t.Fatal("expected first item completed after toggle")
	}
	if m.stages[0].Status != journey.StatusInProgress {
		t.Errorf("stage status = %s, want in-progress", m.stages[0].Status)
	}

	// A fresh model from the same store sees the saved progress.
	m2 := New(store, nil, logger)
	if !m2.stages[0].ChecklistItems[0].Completed {
		t.Error("expected persisted completion in new model")
	}
}

func TestToggleTwiceUnchecks(t *testing.T) {
	m := press(t, testModel(t), "enter", " ", " ")
	if m.stages[0].ChecklistItems[0].Completed {
		t.Error("expected item unchecked after second toggle")
	}
	if m.stages[0].Status != journey.StatusUpcoming {
		t.Errorf("stage status = %s, want upcoming", m.stages[0].Status)
	}
}

func TestMarkStageDoneForcesItems(t *testing.T) {
	m := press(t, testModel(t), "enter", "d")

	stage := m.stages[0]
	if stage.Status != journey.StatusCompleted {
		t.Fatalf("status = %s, want completed", stage.Status)
	}
	for _, item := range stage.ChecklistItems {
		if !item.Completed {
			t.Errorf("item %s not completed after mark done", item.ID)
		}
	}

	m = press(t, m, "u")
	if m.stages[0].Status == journey.StatusCompleted {
		t.Error("expected stage no longer completed after undo")
	}
}

func TestStageAndItemNavigationBounds(t *testing.T) {
	m := press(t, testModel(t), "enter", "h", "h")
	if m.stageIdx != 0 {
		t.Errorf("stageIdx = %d, want 0 at left edge", m.stageIdx)
	}

	for range 10 {
		m = press(t, m, "l")
	}
	if m.stageIdx != 6 {
		t.Errorf("stageIdx = %d, want 6 at right edge", m.stageIdx)
	}

	for range 10 {
		m = press(t, m, "j")
	}
	if m.itemIdx >= len(m.stages[6].ChecklistItems) {
		t.Errorf("itemIdx = %d out of range", m.itemIdx)
	}
}

func TestNoteEditing(t *testing.T) {
	m := press(t, testModel(t), "enter", "n")
	if !m.editingNote {
		t.Fatal("expected note editing mode")
	}

	m = press(t, m, "b", "u", "d", "g", "e", "t", "enter")
	if m.editingNote {
		t.Fatal("expected note editing finished")
	}
	if got := m.stages[0].ChecklistItems[0].Note; got != "budget" {
		t.Errorf("note = %q, want budget", got)
	}
}

func TestChatRoundTrip(t *testing.T) {
	m := press(t, testModel(t), "enter", "c")
	if m.nav.Current() != nav.ScreenChat {
		t.Fatalf("current = %s, want chat", m.nav.Current())
	}

	before := len(m.chatLog)
	for _, r := range "searches" {
		m = press(t, m, string(r))
	}
	m = press(t, m, "enter")

	if len(m.chatLog) != before+2 {
		t.Fatalf("chatLog grew by %d, want 2", len(m.chatLog)-before)
	}
	if !m.chatLog[len(m.chatLog)-2].fromUser {
		t.Error("expected user line before reply")
	}
	if m.chatLog[len(m.chatLog)-1].text == "" {
		t.Error("expected non-empty reply")
	}
}

func TestEscFromContentReturnsToTracker(t *testing.T) {
	m := press(t, testModel(t), "enter", "f")
	if m.nav.Current() != nav.ScreenFAQs {
		t.Fatalf("current = %s, want faqs", m.nav.Current())
	}

	m = press(t, m, "esc")
	if m.nav.Current() != nav.ScreenTracker {
		t.Fatalf("current = %s, want tracker after esc", m.nav.Current())
	}
}

func TestGuideForSelectedStage(t *testing.T) {
	m := press(t, testModel(t), "enter", "l", "g")
	if m.nav.Current() != nav.ScreenGuideHouseHunting {
		t.Fatalf("current = %s, want house hunting guide", m.nav.Current())
	}
	if !strings.Contains(m.View(), "House Hunting") {
		t.Error("guide view missing title")
	}
}

func TestTrackerViewShowsWarning(t *testing.T) {
	m := press(t, testModel(t), "enter", "l", "l", "l")
	view := m.View()
	if m.stages[3].Warning == "" {
		t.Skip("stage has no warning in template")
	}
	if !strings.Contains(view, m.stages[3].Warning) {
		t.Error("expected stage warning rendered")
	}
}
