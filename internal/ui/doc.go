// Package ui contains the Bubble Tea program that powers the picker.
// The package is structured so the Model type focuses on message orchestration,
// while dedicated helpers own navigation, input, rendering, and state updates.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, window resizes, action results, backend updates).
//   - Key presses matching the KeyMap drive the level's navigator directly
//     (internal/ui/navigation.go). Everything else is offered to the filter
//     input helpers (internal/ui/input.go).
//
// State ownership:
//   - Picker state lives in internal/ui/state.Level, which owns the full and
//     filtered item lists and the viewport. Its navigator reads the filtered
//     list on every move and scrolls the viewport through row handles.
//   - Confirming an item runs the navigator's select callback, which queues the
//     configured source.Action on the internal/ui/command bus. The resulting
//     source.Result ends the program or, on error, is shown in the status line.
//
// Backend interactions:
//   - A backend.Watcher streams item snapshots; Update waits for those events
//     and hands them to applyBackendEvent, which refreshes the level while
//     keeping the highlight on the same item when it still exists.
package ui
