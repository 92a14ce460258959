package ui

import (
	"errors"
	"testing"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

func TestNewModelDefaults(t *testing.T) {
	m := NewModel(Options{})
	if m.Level().Title != defaultTitle {
		t.Fatalf("expected default title, got %q", m.Level().Title)
	}
	if m.loading {
		t.Fatalf("expected no loading state without a watcher")
	}
	if m.Cancelled() || m.Err() != nil {
		t.Fatalf("expected clean outcome")
	}
}

func TestFixedSizeIgnoresResize(t *testing.T) {
	m := NewModel(Options{Width: 30, Height: 10, Items: testItems("a")})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	if m.width != 30 || m.height != 10 {
		t.Fatalf("expected fixed size 30x10, got %dx%d", m.width, m.height)
	}
	if got := m.Level().MaxVisible(); got != 7 {
		t.Fatalf("expected 7 visible rows, got %d", got)
	}
}

func TestFooterReducesVisibleRows(t *testing.T) {
	m := NewModel(Options{Height: 10, ShowFooter: true, Items: testItems("a")})
	if got := m.maxVisibleItems(); got != 5 {
		t.Fatalf("expected 5 visible rows, got %d", got)
	}
}

func TestBackendEventUpdatesItemsAndKeepsHighlight(t *testing.T) {
	h := NewHarness(newTestModel(testItems("a", "b", "c"), nil))
	h.SendKeys("down", "down")
	h.Send(backendEventMsg{event: backend.Event{Items: testItems("x", "a", "b", "c")}})
	level := h.Model().Level()
	if item, ok := level.Current(); !ok || item.ID != "b" {
		t.Fatalf("expected b to stay highlighted, got %#v", item)
	}
	if level.Cursor() != 2 {
		t.Fatalf("expected cursor 2, got %d", level.Cursor())
	}
}

func TestBackendEventDroppingHighlightBlocksEnter(t *testing.T) {
	rec := &actionRecorder{}
	h := NewHarness(newTestModel(testItems("a", "b", "c"), rec))
	h.SendKeys("down", "down")
	h.Send(backendEventMsg{event: backend.Event{Items: testItems("a", "c")}})
	h.SendKeys("enter")
	if len(rec.items) != 0 {
		t.Fatalf("expected no action for a vanished item, got %#v", rec.items)
	}
	if h.Model().highlightedIndex() != -1 {
		t.Fatalf("expected no row drawn as highlighted")
	}
	h.SendKeys("down", "enter")
	if len(rec.items) != 1 || rec.items[0].ID != "a" {
		t.Fatalf("expected a after wrapping, got %#v", rec.items)
	}
}

func TestBackendErrorShownAndCleared(t *testing.T) {
	m := newTestModel(testItems("a"), nil)
	m.applyBackendEvent(backend.Event{Err: errors.New("server gone")})
	if m.errMsg != "test: server gone" {
		t.Fatalf("unexpected error message %q", m.errMsg)
	}
	if len(m.Level().Items) != 1 {
		t.Fatalf("expected items kept on error")
	}
	m.applyBackendEvent(backend.Event{Items: testItems("a", "b")})
	if m.errMsg != "" {
		t.Fatalf("expected error cleared, got %q", m.errMsg)
	}
}

func TestBackendEmptySnapshotSetsInfo(t *testing.T) {
	m := newTestModel(testItems("a"), nil)
	m.applyBackendEvent(backend.Event{Items: nil})
	if m.currentInfo() == "" {
		t.Fatalf("expected info message for empty source")
	}
}

func TestHandlerForUnknownMessage(t *testing.T) {
	m := newTestModel(nil, nil)
	if m.handlerFor(struct{}{}) != nil {
		t.Fatalf("expected no handler")
	}
	if m.handlerFor(&source.Result{}) == nil {
		t.Fatalf("expected pointer messages to resolve to value handlers")
	}
}
