// Package source provides the items a picker shows and the actions that run
// when one is chosen.
package source

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Item represents a selectable entry. ID is what actions operate on; Label is
// what the user sees.
type Item struct {
	ID    string
	Label string
}

// Loader produces the current item list.
type Loader func(context.Context) ([]Item, error)

// Action runs once the user confirms an item.
type Action func(context.Context, Item) tea.Cmd

// Result communicates the outcome of an Action.
type Result struct {
	Item Item
	Info string
	Err  error
}

// Source names a loader. Live sources are worth polling for changes.
type Source struct {
	Name string
	Load Loader
	Live bool
}

// Kinds of sources understood by New.
const (
	KindStdin        = "stdin"
	KindArgs         = "args"
	KindTmuxSessions = "tmux-sessions"
)

// Kinds of actions understood by NewAction.
const (
	ActionPrint      = "print"
	ActionTmuxSwitch = "tmux-switch"
)

// Static returns a loader that always yields items.
func Static(items []Item) Loader {
	dup := CloneItems(items)
	return func(context.Context) ([]Item, error) {
		return CloneItems(dup), nil
	}
}

// New builds the named source. stdin is consumed immediately.
func New(kind string, stdin io.Reader, args []string, delimiter, socketPath string) (Source, error) {
	switch strings.TrimSpace(kind) {
	case "", KindStdin:
		items, err := ParseLines(stdin, delimiter)
		if err != nil {
			return Source{}, fmt.Errorf("read stdin: %w", err)
		}
		return Source{Name: KindStdin, Load: Static(items)}, nil
	case KindArgs:
		return Source{Name: KindArgs, Load: Static(FromArgs(args, delimiter))}, nil
	case KindTmuxSessions:
		return Source{Name: KindTmuxSessions, Load: TmuxSessions(socketPath), Live: true}, nil
	default:
		return Source{}, fmt.Errorf("unknown source %q", kind)
	}
}

// NewAction builds the named action.
func NewAction(kind string, stdout io.Writer, socketPath string) (Action, error) {
	switch strings.TrimSpace(kind) {
	case "", ActionPrint:
		return Print(stdout), nil
	case ActionTmuxSwitch:
		return TmuxSwitch(socketPath), nil
	default:
		return nil, fmt.Errorf("unknown action %q", kind)
	}
}

// Print writes the chosen item's ID followed by a newline.
func Print(w io.Writer) Action {
	return func(_ context.Context, item Item) tea.Cmd {
		return func() tea.Msg {
			if _, err := fmt.Fprintln(w, item.ID); err != nil {
				return Result{Item: item, Err: fmt.Errorf("write selection: %w", err)}
			}
			return Result{Item: item, Info: fmt.Sprintf("Selected %s", item.Label)}
		}
	}
}

// CloneItems produces a shallow copy of items.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
