package ui

import (
	"github.com/atomicstack/popup-pick/internal/logging"
	"github.com/atomicstack/popup-pick/internal/logging/events"
	"github.com/atomicstack/popup-pick/internal/source"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(source.Result)
	if !ok {
		return nil
	}
	m.pending = false
	if result.Err != nil {
		m.chosen = nil
		m.lastErr = result.Err
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		logging.Error(result.Err)
		events.Action.Error(result.Err)
		return nil
	}
	m.result = &result
	m.lastErr = nil
	m.cancelled = false
	events.Action.Success(result.Info)
	return tea.Quit
}
