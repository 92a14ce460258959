package ui

import (
	"context"
	"fmt"

	"github.com/atomicstack/popup-pick/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

func testItems(ids ...string) []source.Item {
	items := make([]source.Item, len(ids))
	for i, id := range ids {
		items[i] = source.Item{ID: id, Label: id}
	}
	return items
}

func numberedItems(n int) []source.Item {
	items := make([]source.Item, n)
	for i := range items {
		id := fmt.Sprintf("item-%02d", i+1)
		items[i] = source.Item{ID: id, Label: id}
	}
	return items
}

type actionRecorder struct {
	items []source.Item
	err   error
}

func (r *actionRecorder) action(_ context.Context, item source.Item) tea.Cmd {
	return func() tea.Msg {
		r.items = append(r.items, item)
		return source.Result{Item: item, Err: r.err}
	}
}

func newTestModel(items []source.Item, rec *actionRecorder) *Model {
	opts := Options{Title: "Pick", SourceName: "test", ActionName: "record", Items: items}
	if rec != nil {
		opts.Action = rec.action
	}
	return NewModel(opts)
}
