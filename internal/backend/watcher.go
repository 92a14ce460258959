package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/popup-pick/internal/source"
)

// minLoadGap bounds how often a loader may run regardless of interval.
const minLoadGap = 250 * time.Millisecond

// Event carries one load result.
type Event struct {
	Items []source.Item
	Err   error
}

// Watcher runs a loader once and then every interval, publishing each result.
type Watcher struct {
	load     source.Loader
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts polling load. An interval <= 0 loads exactly once.
func NewWatcher(load source.Loader, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		load:     load,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of load results. It is closed once the watcher
// stops.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()
	gap := newThrottle(minLoadGap)

	emit := func() bool {
		gap.wait()
		items, err := w.load(w.ctx)
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- Event{Items: items, Err: err}:
			return true
		}
	}

	if !emit() || w.interval <= 0 {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
