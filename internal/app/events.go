package app

import (
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/logger"
)

func (a *App) subscribeLogging() {
	a.eventManager.Subscribe(event.TypeModeChanged, a.handleModeChangedForLog)
	a.eventManager.Subscribe(event.TypeTerminalResized, a.handleResizeForLog)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForLog)
	a.eventManager.Subscribe(event.TypeCommandChanged, a.handleCommandChangedForLog)
}

func (a *App) handleModeChangedForLog(e event.Event) bool {
	if data, ok := e.Data.(event.ModeChangedData); ok {
		logger.DebugTagf("mode", "Mode %s -> %s", data.From, data.To)
	}
	return false
}

func (a *App) handleResizeForLog(e event.Event) bool {
	if data, ok := e.Data.(event.TerminalResizedData); ok {
		logger.DebugTagf("layout", "Terminal %dx%d -> %dx%d, status row %d",
			data.OldCols, data.OldRows, data.Cols, data.Rows, data.StatusRow)
	}
	return false
}

func (a *App) handleCursorMovedForLog(e event.Event) bool {
	if data, ok := e.Data.(event.CursorMovedData); ok {
		which := "text"
		if data.Command {
			which = "command"
		}
		logger.DebugTagf("cursor", "%s cursor %s after %s", which, data.NewPosition, data.Action)
	}
	return false
}

func (a *App) handleCommandChangedForLog(e event.Event) bool {
	if data, ok := e.Data.(event.CommandChangedData); ok {
		logger.DebugTagf("command", "Command line %q", data.Text)
	}
	return false
}
