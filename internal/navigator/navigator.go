// Package navigator implements keyboard-driven highlight navigation over a
// caller-owned list.
//
// A Navigator holds a single cursor: -1 when nothing is highlighted, otherwise
// an index into the list returned by Options.Items at the time of the last
// move. The list is re-read on every operation and never copied or mutated.
// Movement wraps around in both directions and confirming hands the
// highlighted item to Options.OnSelect.
//
// The item list and the optional ItemRefs registry must be index-aligned.
// That is a caller contract: a registry shorter than the item list only means
// some moves are not revealed.
//
// Navigator is not safe for concurrent use. It is meant to be driven from a
// single event loop such as a Bubble Tea Update method.
package navigator

// Alignment describes how a Revealer should scroll its element into view.
type Alignment int

const (
	// AlignNearest scrolls only as far as needed to make the element visible.
	AlignNearest Alignment = iota
)

// Revealer is a handle to the visual element that renders one item.
type Revealer interface {
	Reveal(Alignment)
}

// RevealFunc adapts a plain function to the Revealer interface.
type RevealFunc func(Alignment)

// Reveal calls f.
func (f RevealFunc) Reveal(a Alignment) {
	f(a)
}

// Move describes a cursor change. To is -1 after a reset.
type Move struct {
	From int
	To   int
}

// Options binds a Navigator to its caller.
type Options[T any] struct {
	// Items returns the current list. Required.
	Items func() []T
	// OnSelect receives the highlighted item on Confirm. Required.
	OnSelect func(T)
	// ItemRefs returns element handles aligned with Items. Optional.
	ItemRefs func() []Revealer
	// Key identifies an item. When set, Confirm refuses to select an item
	// whose key differs from the one highlighted by the last move.
	Key func(T) string
}

type listener struct {
	id int
	fn func(Move)
}

// Navigator tracks the highlighted index of a list.
type Navigator[T any] struct {
	opts        Options[T]
	cursor      int
	keyAtCursor string
	keyValid    bool
	listeners   []listener
	nextID      int
}

// New returns a Navigator with nothing highlighted.
func New[T any](opts Options[T]) *Navigator[T] {
	return &Navigator[T]{opts: opts, cursor: -1}
}

// Cursor returns the highlighted index, or -1.
func (n *Navigator[T]) Cursor() int {
	return n.cursor
}

// Advance moves the highlight down, wrapping to the top. The first advance
// after a reset lands on index 0.
func (n *Navigator[T]) Advance() {
	size := len(n.items())
	if size == 0 {
		return
	}
	n.moveTo((n.cursor + 1) % size)
}

// Retreat moves the highlight up, wrapping to the bottom. It applies the same
// arithmetic from the unset state, so the first retreat after a reset lands on
// index n-2 (0 for a single item).
func (n *Navigator[T]) Retreat() {
	size := len(n.items())
	if size == 0 {
		return
	}
	n.moveTo((n.cursor - 1 + size) % size)
}

// First highlights index 0.
func (n *Navigator[T]) First() {
	if len(n.items()) == 0 {
		return
	}
	n.moveTo(0)
}

// Last highlights the final index.
func (n *Navigator[T]) Last() {
	size := len(n.items())
	if size == 0 {
		return
	}
	n.moveTo(size - 1)
}

// Highlight moves the cursor to idx. It reports false and leaves the cursor
// alone when idx is outside the current list.
func (n *Navigator[T]) Highlight(idx int) bool {
	if idx < 0 || idx >= len(n.items()) {
		return false
	}
	n.moveTo(idx)
	return true
}

// Current returns the highlighted item. ok is false when nothing is
// highlighted or the list shrank below the cursor.
func (n *Navigator[T]) Current() (item T, ok bool) {
	items := n.items()
	if n.cursor < 0 || n.cursor >= len(items) {
		return item, false
	}
	if n.opts.Key != nil && n.keyValid && n.opts.Key(items[n.cursor]) != n.keyAtCursor {
		return item, false
	}
	return items[n.cursor], true
}

// Confirm passes the highlighted item to OnSelect and reports whether it did.
// The cursor is left unchanged.
func (n *Navigator[T]) Confirm() bool {
	item, ok := n.Current()
	if !ok || n.opts.OnSelect == nil {
		return false
	}
	n.opts.OnSelect(item)
	return true
}

// Reset clears the highlight. Nothing is revealed.
func (n *Navigator[T]) Reset() {
	from := n.cursor
	n.cursor = -1
	n.keyAtCursor = ""
	n.keyValid = false
	if from != -1 {
		n.notify(Move{From: from, To: -1})
	}
}

// Subscribe registers fn to run after every cursor change. The returned
// function removes the subscription.
func (n *Navigator[T]) Subscribe(fn func(Move)) func() {
	if fn == nil {
		return func() {}
	}
	id := n.nextID
	n.nextID++
	n.listeners = append(n.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range n.listeners {
			if l.id == id {
				n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
				return
			}
		}
	}
}

func (n *Navigator[T]) moveTo(idx int) {
	items := n.items()
	from := n.cursor
	n.cursor = idx
	if n.opts.Key != nil {
		n.keyAtCursor = n.opts.Key(items[idx])
		n.keyValid = true
	}
	if from == idx {
		return
	}
	n.reveal(idx)
	n.notify(Move{From: from, To: idx})
}

func (n *Navigator[T]) reveal(idx int) {
	if n.opts.ItemRefs == nil {
		return
	}
	refs := n.opts.ItemRefs()
	if idx < 0 || idx >= len(refs) || refs[idx] == nil {
		return
	}
	refs[idx].Reveal(AlignNearest)
}

func (n *Navigator[T]) notify(mv Move) {
	for _, l := range n.listeners {
		l.fn(mv)
	}
}

func (n *Navigator[T]) items() []T {
	if n.opts.Items == nil {
		return nil
	}
	return n.opts.Items()
}
