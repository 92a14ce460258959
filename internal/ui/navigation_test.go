package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestDownKeysAdvanceAndWrap(t *testing.T) {
	h := NewHarness(newTestModel(testItems("a", "b", "c"), nil))
	level := h.Model().Level()
	if level.Cursor() != -1 {
		t.Fatalf("expected nothing highlighted initially, got %d", level.Cursor())
	}
	h.SendKeys("down", "ctrl+n", "ctrl+j")
	if level.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", level.Cursor())
	}
	h.SendKeys("down")
	if level.Cursor() != 0 {
		t.Fatalf("expected wrap to 0, got %d", level.Cursor())
	}
}

func TestUpKeysRetreatFromUnset(t *testing.T) {
	h := NewHarness(newTestModel(testItems("a", "b", "c"), nil))
	level := h.Model().Level()
	h.SendKeys("up")
	if level.Cursor() != 1 {
		t.Fatalf("expected cursor 1, got %d", level.Cursor())
	}
	h.SendKeys("ctrl+p", "ctrl+k")
	if level.Cursor() != 2 {
		t.Fatalf("expected wrap to 2, got %d", level.Cursor())
	}
}

func TestHomeEndAndPaging(t *testing.T) {
	h := NewHarness(newTestModel(numberedItems(12), nil))
	h.Send(tea.WindowSizeMsg{Width: 40, Height: 8})
	level := h.Model().Level()
	if got := level.MaxVisible(); got != 5 {
		t.Fatalf("expected 5 visible rows, got %d", got)
	}
	h.SendKeys("end")
	if level.Cursor() != 11 {
		t.Fatalf("expected last item, got %d", level.Cursor())
	}
	h.SendKeys("pgup")
	if level.Cursor() != 6 {
		t.Fatalf("expected cursor 6, got %d", level.Cursor())
	}
	h.SendKeys("home")
	if level.Cursor() != 0 {
		t.Fatalf("expected first item, got %d", level.Cursor())
	}
	h.SendKeys("pgdown")
	if level.Cursor() != 5 {
		t.Fatalf("expected cursor 5, got %d", level.Cursor())
	}
}

func TestEnterWithoutHighlightDoesNothing(t *testing.T) {
	rec := &actionRecorder{}
	h := NewHarness(newTestModel(testItems("a", "b"), rec))
	h.SendKeys("enter")
	if len(rec.items) != 0 {
		t.Fatalf("expected no action, got %#v", rec.items)
	}
	if _, ok := h.Model().Chosen(); ok {
		t.Fatalf("expected nothing chosen")
	}
}

func TestEnterRunsActionForHighlightedItem(t *testing.T) {
	rec := &actionRecorder{}
	m := newTestModel(testItems("a", "b", "c"), rec)
	h := NewHarness(m)
	h.SendKeys("down", "down", "up")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected action command")
	}
	if !m.pending {
		t.Fatalf("expected pending action")
	}
	h.processCmd(cmd)
	if len(rec.items) != 1 || rec.items[0].ID != "a" {
		t.Fatalf("expected a selected, got %#v", rec.items)
	}
	item, ok := m.Chosen()
	if !ok || item.ID != "a" {
		t.Fatalf("expected a chosen, got %#v", item)
	}
	if m.Cancelled() {
		t.Fatalf("expected selection not to count as cancel")
	}
}

func TestActionErrorKeepsPickerOpen(t *testing.T) {
	rec := &actionRecorder{err: errors.New("no such session")}
	h := NewHarness(newTestModel(testItems("a"), rec))
	h.SendKeys("down", "enter")
	m := h.Model()
	if _, ok := m.Chosen(); ok {
		t.Fatalf("expected no chosen item after failure")
	}
	if m.Err() == nil || m.errMsg == "" {
		t.Fatalf("expected error recorded")
	}
	if m.pending {
		t.Fatalf("expected pending cleared")
	}
	if m.Level().Cursor() != 0 {
		t.Fatalf("expected cursor unchanged, got %d", m.Level().Cursor())
	}
}

func TestEscapeResetsThenClearsFilterThenQuits(t *testing.T) {
	m := newTestModel(testItems("alpha", "beta"), nil)
	h := NewHarness(m)
	h.SendKeys("b", "e")
	level := m.Level()
	if level.Filter != "be" || level.Cursor() != 0 {
		t.Fatalf("expected filter be with highlight, got %q/%d", level.Filter, level.Cursor())
	}

	if cmd := m.handleEscapeKey(); cmd != nil {
		t.Fatalf("expected first escape to only reset")
	}
	if level.Cursor() != -1 || level.Filter != "be" {
		t.Fatalf("expected reset cursor with filter kept, got %d/%q", level.Cursor(), level.Filter)
	}

	if cmd := m.handleEscapeKey(); cmd != nil {
		t.Fatalf("expected second escape to clear filter")
	}
	if level.Filter != "" || len(level.Items) != 2 {
		t.Fatalf("expected filter cleared, got %q with %d items", level.Filter, len(level.Items))
	}

	cmd := m.handleEscapeKey()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if !m.Cancelled() {
		t.Fatalf("expected cancellation recorded")
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(testItems("a"), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if !m.Cancelled() {
		t.Fatalf("expected cancellation recorded")
	}
}

func TestKeysIgnoredWhileActionPending(t *testing.T) {
	m := newTestModel(testItems("a", "b"), &actionRecorder{})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Level().Cursor() != 0 {
		t.Fatalf("expected navigation paused while pending, got %d", m.Level().Cursor())
	}
}

func TestEmptyListKeysAreNoops(t *testing.T) {
	rec := &actionRecorder{}
	h := NewHarness(newTestModel(nil, rec))
	h.SendKeys("down", "up", "home", "end", "pgdown", "enter")
	if h.Model().Level().Cursor() != -1 {
		t.Fatalf("expected cursor -1, got %d", h.Model().Level().Cursor())
	}
	if len(rec.items) != 0 {
		t.Fatalf("expected no selection, got %#v", rec.items)
	}
}
