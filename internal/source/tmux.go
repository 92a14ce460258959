package source

import (
	"context"
	"fmt"

	"github.com/atomicstack/popup-pick/internal/tmux"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	fetchSessions = tmux.FetchSessions
	switchClient  = tmux.SwitchClient
)

// TmuxSessions lists tmux sessions, one item per session keyed by name.
func TmuxSessions(socketPath string) Loader {
	return func(ctx context.Context) ([]Item, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		snapshot, err := fetchSessions(socketPath)
		if err != nil {
			return nil, err
		}
		items := make([]Item, 0, len(snapshot.Sessions))
		for _, s := range snapshot.Sessions {
			label := s.Label
			if label == "" {
				label = s.Name
			}
			if s.Current {
				label = "[current] " + label
			}
			items = append(items, Item{ID: s.Name, Label: label})
		}
		return items, nil
	}
}

// TmuxSwitch switches the attached client to the chosen session.
func TmuxSwitch(socketPath string) Action {
	return func(_ context.Context, item Item) tea.Cmd {
		return func() tea.Msg {
			if err := switchClient(socketPath, item.ID); err != nil {
				return Result{Item: item, Err: fmt.Errorf("switch to %s: %w", item.ID, err)}
			}
			return Result{Item: item, Info: fmt.Sprintf("Switched to %s", item.ID)}
		}
	}
}
