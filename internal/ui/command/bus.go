package command

import (
	"context"
	"fmt"

	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler source.Action
	Item    source.Item
}

// Bus coordinates the execution of select actions.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps an action into a Bubble Tea command while emitting trace logs.
// A request without a handler, or whose handler yields no command, still
// produces a source.Result so the program can finish.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return source.Result{Item: req.Item}
		}
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.Skip(req.ID, req.Label)
			return source.Result{Item: req.Item}
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}
