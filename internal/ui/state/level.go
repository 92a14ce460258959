package state

import (
	"github.com/atomicstack/popup-pick/internal/navigator"
	"github.com/atomicstack/popup-pick/internal/source"
)

// Level encapsulates picker state such as the highlighted item, filter, and
// viewport. Nav reads Items on every operation, so Items must only ever be
// replaced through the Level methods below.
type Level struct {
	ID             string
	Title          string
	Items          []source.Item
	Full           []source.Item
	Filter         string
	FilterCursor   int
	LastCursor     int
	ViewportOffset int
	Nav            *navigator.Navigator[source.Item]

	maxVisible int
	onSelect   func(source.Item)
}

// NewLevel constructs a Level over items. onSelect receives confirmed items
// and may be nil.
func NewLevel(id, title string, items []source.Item, onSelect func(source.Item)) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		onSelect:   onSelect,
	}
	l.Nav = navigator.New(navigator.Options[source.Item]{
		Items:    func() []source.Item { return l.Items },
		OnSelect: l.selected,
		ItemRefs: l.rowHandles,
		Key:      func(item source.Item) string { return item.ID },
	})
	l.UpdateItems(items)
	return l
}

// SetOnSelect replaces the confirmation callback.
func (l *Level) SetOnSelect(fn func(source.Item)) {
	l.onSelect = fn
}

func (l *Level) selected(item source.Item) {
	if l.onSelect != nil {
		l.onSelect(item)
	}
}

// Cursor returns the highlighted index, or -1.
func (l *Level) Cursor() int {
	return l.Nav.Cursor()
}

// Current returns the highlighted item when it is still in the list.
func (l *Level) Current() (source.Item, bool) {
	return l.Nav.Current()
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems replaces the full list, re-applies the filter and keeps the
// highlight on the same item when it survived. When it did not, the cursor
// is left where it was.
func (l *Level) UpdateItems(items []source.Item) {
	prev, hadPrev := l.Nav.Current()
	l.Full = source.CloneItems(items)
	l.applyFilter()
	if hadPrev {
		if idx := l.IndexOf(prev.ID); idx >= 0 {
			l.Nav.Highlight(idx)
		}
	}
	l.clampViewport()
}
