package ui

import (
	"fmt"

	"github.com/atomicstack/popup-pick/internal/backend"
	"github.com/atomicstack/popup-pick/internal/logging"
	"github.com/atomicstack/popup-pick/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	m.loading = false
	return nil
}

func (m *Model) applyBackendEvent(evt backend.Event) {
	m.loading = false
	if evt.Err != nil {
		logging.Error(evt.Err)
		events.Source.Error(m.sourceName, evt.Err)
		m.backendLastErr = fmt.Sprintf("%s: %v", m.sourceName, evt.Err)
		m.errMsg = m.backendLastErr
		return
	}
	if m.backendLastErr != "" && m.errMsg == m.backendLastErr {
		m.errMsg = ""
	}
	m.backendLastErr = ""
	m.level.UpdateItems(evt.Items)
	events.Source.Loaded(m.sourceName, len(evt.Items))
	if len(m.level.Full) == 0 {
		m.setInfo("No entries found.")
	} else {
		m.clearInfo()
	}
}
