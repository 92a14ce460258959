package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/source"
	"github.com/atomicstack/popup-pick/internal/tmux"
	"github.com/atomicstack/popup-pick/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned by Run when the user quit without choosing.
var ErrCancelled = errors.New("cancelled")

// Config describes user-provided application options.
type Config struct {
	Source     string
	Action     string
	Delimiter  string
	Title      string
	Refresh    time.Duration
	SocketPath string
	Width      int
	Height     int
	ShowFooter bool
	Items      []string
}

// IO holds the streams the picker reads items from and writes results to.
// The UI itself is drawn on UI and reads keys from the controlling terminal.
type IO struct {
	In  io.Reader
	Out io.Writer
	UI  io.Writer
}

// StdIO returns the process streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, UI: os.Stderr}
}

// usesTmux reports whether cfg needs a tmux socket.
func (c Config) usesTmux() bool {
	return c.Source == source.KindTmuxSessions || c.Action == source.ActionTmuxSwitch
}

// Run bootstraps and executes the Bubble Tea program. It returns
// ErrCancelled when nothing was chosen.
func Run(cfg Config, streams IO) error {
	socketPath := cfg.SocketPath
	if cfg.usesTmux() {
		resolved, err := tmux.ResolveSocketPath(cfg.SocketPath)
		if err != nil {
			return fmt.Errorf("resolve socket path: %w", err)
		}
		socketPath = resolved
	}
	src, err := source.New(cfg.Source, streams.In, cfg.Items, cfg.Delimiter, socketPath)
	if err != nil {
		return err
	}
	action, err := source.NewAction(cfg.Action, streams.Out, socketPath)
	if err != nil {
		return err
	}

	interval := time.Duration(0)
	if src.Live {
		interval = cfg.Refresh
	}
	watcher := backend.NewWatcher(src.Load, interval)
	defer watcher.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	title := cfg.Title
	if title == "" {
		title = src.Name
	}
	model := ui.NewModel(ui.Options{
		Context:    ctx,
		Title:      title,
		SourceName: src.Name,
		ActionName: cfg.Action,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Watcher:    watcher,
		Action:     action,
	})
	program := tea.NewProgram(model, programOptions(streams)...)
	final, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	result := Outcome(final)
	events.App.Finish(outcomeName(result), result)
	return result
}

func programOptions(streams IO) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithInputTTY()}
	if streams.UI != nil {
		opts = append(opts, tea.WithOutput(streams.UI))
	}
	return opts
}

// Outcome maps the final model state to Run's return value.
func Outcome(final tea.Model) error {
	m, ok := final.(*ui.Model)
	if !ok {
		return ErrCancelled
	}
	if _, chosen := m.Chosen(); chosen {
		return nil
	}
	if err := m.Err(); err != nil {
		return err
	}
	return ErrCancelled
}

func outcomeName(err error) string {
	switch {
	case err == nil:
		return "selected"
	case errors.Is(err, ErrCancelled):
		return "cancelled"
	default:
		return "error"
	}
}
