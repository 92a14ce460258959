package state

import "github.com/atomicstack/popup-pick/internal/navigator"

// rowHandle is the on-screen row that renders Items[index].
type rowHandle struct {
	level *Level
	index int
}

func (r rowHandle) Reveal(align navigator.Alignment) {
	switch align {
	case navigator.AlignNearest:
		r.level.EnsureIndexVisible(r.index)
	}
}

func (l *Level) rowHandles() []navigator.Revealer {
	refs := make([]navigator.Revealer, len(l.Items))
	for i := range refs {
		refs[i] = rowHandle{level: l, index: i}
	}
	return refs
}

// SetMaxVisible records how many rows fit on screen and keeps the highlighted
// row inside the viewport.
func (l *Level) SetMaxVisible(n int) {
	if n == l.maxVisible {
		return
	}
	l.maxVisible = n
	l.clampViewport()
	if c := l.Cursor(); c >= 0 && c < len(l.Items) {
		l.EnsureIndexVisible(c)
	}
}

// MaxVisible returns the viewport height recorded by SetMaxVisible.
func (l *Level) MaxVisible() int {
	return l.maxVisible
}

// EnsureIndexVisible scrolls the viewport as little as possible so idx is
// shown.
func (l *Level) EnsureIndexVisible(idx int) {
	if len(l.Items) == 0 || l.maxVisible <= 0 {
		l.ViewportOffset = 0
		return
	}
	if idx < 0 || idx >= len(l.Items) {
		return
	}
	if idx < l.ViewportOffset {
		l.ViewportOffset = idx
	}
	if upper := l.ViewportOffset + l.maxVisible - 1; idx > upper {
		l.ViewportOffset = idx - l.maxVisible + 1
	}
	l.clampViewport()
}

// VisibleRange returns the half-open range of item indexes on screen.
func (l *Level) VisibleRange() (start, end int) {
	total := len(l.Items)
	if l.maxVisible <= 0 || total <= l.maxVisible {
		return 0, total
	}
	start = l.ViewportOffset
	end = start + l.maxVisible
	if end > total {
		end = total
	}
	return start, end
}

// MovePageUp moves the highlight up by one viewport without wrapping.
func (l *Level) MovePageUp() bool {
	return l.movePage(-1)
}

// MovePageDown moves the highlight down by one viewport without wrapping.
func (l *Level) MovePageDown() bool {
	return l.movePage(1)
}

func (l *Level) movePage(dir int) bool {
	total := len(l.Items)
	if total == 0 {
		return false
	}
	before := l.Cursor()
	if before < 0 {
		if dir > 0 {
			l.Nav.First()
		} else {
			l.Nav.Last()
		}
		return l.Cursor() != before
	}
	target := before + dir*l.pageSize()
	if target < 0 {
		target = 0
	}
	if target >= total {
		target = total - 1
	}
	l.Nav.Highlight(target)
	return l.Cursor() != before
}

func (l *Level) pageSize() int {
	total := len(l.Items)
	size := l.maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

func (l *Level) clampViewport() {
	maxOffset := len(l.Items) - l.maxVisible
	if l.maxVisible <= 0 || maxOffset < 0 {
		maxOffset = 0
	}
	if l.ViewportOffset > maxOffset {
		l.ViewportOffset = maxOffset
	}
	if l.ViewportOffset < 0 {
		l.ViewportOffset = 0
	}
}
