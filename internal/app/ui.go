package app

import (
	"github.com/bethropolis/modal/internal/config"
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/modehandler"
	"github.com/bethropolis/modal/internal/theme"
)

// layout compares the live terminal size with the cached one and, on change,
// clears the old status line and moves the command-line cursor to the new one.
func (a *App) layout() error {
	cols, rows := a.tuiManager.Size()
	if cols == a.cols && rows == a.rows {
		return nil
	}

	if a.rows >= config.MinStatusRows {
		if err := a.tuiManager.ClearLine(a.rows - config.StatusLineOffset); err != nil {
			return err
		}
	}

	oldCols, oldRows := a.cols, a.rows
	a.cols, a.rows = cols, rows

	a.cmdCursor.Row = rows - config.StatusLineOffset
	if a.cmdCursor.Row < 0 {
		a.cmdCursor.Row = 0
	}
	a.constrainCursors()

	a.eventManager.Dispatch(event.TypeTerminalResized, event.TerminalResizedData{
		OldCols:   oldCols,
		OldRows:   oldRows,
		Cols:      cols,
		Rows:      rows,
		StatusRow: a.statusRow(),
	})
	return nil
}

// render draws the status line and places the terminal cursor on the
// active cursor, then flushes.
func (a *App) render() error {
	if row := a.statusRow(); row >= 0 {
		a.statusBar.SetEditorMode(a.mode)
		a.statusBar.SetCommand(a.command)
		if err := a.statusBar.Draw(a.tuiManager, row); err != nil {
			return err
		}
	}

	cur := a.activeCursor()
	a.tuiManager.ShowCursor(cur.Col, cur.Row)
	a.tuiManager.Show()
	a.frames++
	return nil
}

// statusRow is the status line row, or -1 when the terminal is too short.
func (a *App) statusRow() int {
	if a.rows < config.MinStatusRows {
		return -1
	}
	return a.rows - config.StatusLineOffset
}

// textRows is the number of rows above the status line.
func (a *App) textRows() int {
	if a.rows < config.MinStatusRows {
		return a.rows
	}
	return a.rows - config.StatusLineOffset
}

// Echo draws r at the text cursor. It backs Insert-mode typing.
func (a *App) Echo(r rune) error {
	return a.tuiManager.PutRune(a.textCursor.Col, a.textCursor.Row, r, a.activeTheme.GetStyle(theme.StyleDefault))
}

// Mode returns the current input mode.
func (a *App) Mode() modehandler.Mode {
	return a.mode
}
