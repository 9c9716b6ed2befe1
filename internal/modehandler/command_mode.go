package modehandler

import (
	"github.com/bethropolis/modal/internal/clipboard"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// handleCommand edits the command buffer. Enter is left unhandled so a
// command executor can be attached later.
func (h *Handler) handleCommand(ev *tcell.EventKey, cmd *[]rune) input.Action {
	switch ev.Key() {
	case tcell.KeyEscape:
		return input.ActionSwitchToNormal

	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyDelete:
		if n := len(*cmd); n > 0 {
			*cmd = (*cmd)[:n-1]
		}
		return input.ActionMoveLeft

	case tcell.KeyCtrlV:
		return h.pasteCommand(cmd)

	case tcell.KeyRune:
		if !isPrintable(ev) {
			return input.ActionNone
		}
		*cmd = append(*cmd, ev.Rune())
		return input.ActionMoveRight

	default:
		return input.ActionNone
	}
}

// pasteCommand appends the first clipboard line to the command buffer.
func (h *Handler) pasteCommand(cmd *[]rune) input.Action {
	if h.clipboard == nil {
		return input.ActionNone
	}
	text, err := h.clipboard.Read()
	if err != nil {
		logger.DebugTagf("clipboard", "Command paste failed: %v", err)
		return input.ActionNone
	}
	line := clipboard.FirstLine(text)
	if line == "" {
		return input.ActionNone
	}
	*cmd = append(*cmd, []rune(line)...)
	logger.DebugTagf("clipboard", "Pasted %d characters into command line", len([]rune(line)))
	return input.ActionMoveRight
}
