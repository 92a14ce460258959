package ui

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/navigator"
	"github.com/atomicstack/popup-pick/internal/source"
	"github.com/atomicstack/popup-pick/internal/theme"
	"github.com/atomicstack/popup-pick/internal/ui/command"
	uistate "github.com/atomicstack/popup-pick/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

const defaultTitle = "select"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Context    context.Context
	Title      string
	SourceName string
	ActionName string
	Width      int
	Height     int
	ShowFooter bool
	// Items seeds the list when no watcher is supplied.
	Items   []source.Item
	Watcher *backend.Watcher
	Action  source.Action
}

// Model implements the Bubble Tea model for the picker.
type Model struct {
	level             *level
	loading           bool
	pending           bool
	queued            tea.Cmd
	chosen            *source.Item
	result            *source.Result
	lastErr           error
	cancelled         bool
	errMsg            string
	infoMsg           string
	infoExpire        time.Time
	width             int
	height            int
	fixedWidth        bool
	fixedHeight       bool
	backend           *backend.Watcher
	backendLastErr    string
	showFooter        bool
	keys              KeyMap
	help              help.Model
	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	ctx        context.Context
	bus        *command.Bus
	action     source.Action
	sourceName string
	actionName string
}

// NewModel initialises the UI state from opts.
func NewModel(opts Options) *Model {
	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = defaultTitle
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		backend:    opts.Watcher,
		loading:    opts.Watcher != nil,
		showFooter: opts.ShowFooter,
		keys:       DefaultKeyMap(),
		help:       newHelp(),
		ctx:        ctx,
		bus:        command.New(),
		action:     opts.Action,
		sourceName: opts.SourceName,
		actionName: opts.ActionName,
	}
	m.level = uistate.NewLevel(opts.SourceName, title, opts.Items, m.onSelect)
	m.level.Nav.Subscribe(m.traceMove)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c
	m.syncViewport()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

// Chosen returns the item whose action completed successfully.
func (m *Model) Chosen() (source.Item, bool) {
	if m.chosen == nil || m.result == nil || m.result.Err != nil {
		return source.Item{}, false
	}
	return *m.chosen, true
}

// Cancelled reports whether the user quit without choosing.
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Err returns the last action error, if any.
func (m *Model) Err() error {
	return m.lastErr
}

// Level exposes the picker state.
func (m *Model) Level() *uistate.Level {
	return m.level
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(source.Result{}):     m.handleActionResultMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	m.syncViewport()
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncViewport() {
	m.level.SetMaxVisible(m.maxVisibleItems())
}

func (m *Model) traceMove(mv navigator.Move) {
	if mv.To < 0 {
		events.Nav.Reset(m.level.ID, mv.From)
		return
	}
	events.Nav.Cursor(m.level.ID, mv.From, mv.To)
}
