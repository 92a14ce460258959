package ui

import (
	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/source"
	"github.com/atomicstack/popup-pick/internal/ui/command"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if key.Matches(keyMsg, m.keys.Quit) {
		return m.quit()
	}
	if m.pending {
		return nil
	}
	nav := m.level.Nav
	switch {
	case key.Matches(keyMsg, m.keys.Down):
		nav.Advance()
		return nil
	case key.Matches(keyMsg, m.keys.Up):
		nav.Retreat()
		return nil
	case key.Matches(keyMsg, m.keys.Home):
		nav.First()
		return nil
	case key.Matches(keyMsg, m.keys.End):
		nav.Last()
		return nil
	case key.Matches(keyMsg, m.keys.PageUp):
		m.level.MovePageUp()
		return nil
	case key.Matches(keyMsg, m.keys.PageDown):
		m.level.MovePageDown()
		return nil
	case key.Matches(keyMsg, m.keys.Select):
		return m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Reset):
		return m.handleEscapeKey()
	}
	m.handleTextInput(keyMsg)
	return nil
}

// handleEscapeKey backs out one step at a time: highlight, then filter, then
// the program itself.
func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.level
	m.errMsg = ""
	m.forceClearInfo()
	if current.Cursor() != -1 {
		current.Nav.Reset()
		return nil
	}
	if current.Filter != "" {
		before := current.FilterCursorPos()
		current.SetFilter("", 0)
		m.noteFilterCursorChange(current, before)
		events.Filter.Cleared(current.ID)
		return nil
	}
	return m.quit()
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.level
	if !current.Nav.Confirm() {
		if c := current.Cursor(); c >= 0 {
			events.Nav.Stale(current.ID, c)
		}
		return nil
	}
	cmd := m.queued
	m.queued = nil
	return cmd
}

// onSelect receives the item confirmed by the navigator and queues the
// configured action for it.
func (m *Model) onSelect(item source.Item) {
	events.Nav.Select(m.level.ID, item.ID, item.Label, m.level.Filter)
	chosen := item
	m.chosen = &chosen
	m.pending = true
	m.errMsg = ""
	m.forceClearInfo()
	m.queued = m.bus.Execute(m.ctx, command.Request{
		ID:      m.actionName,
		Label:   item.Label,
		Handler: m.action,
		Item:    item,
	})
}

func (m *Model) quit() tea.Cmd {
	m.cancelled = true
	return tea.Quit
}
