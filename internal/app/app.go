// internal/app/app.go
package app

import (
	"errors"
	"fmt"

	"github.com/bethropolis/modal/internal/clipboard"
	"github.com/bethropolis/modal/internal/core"
	"github.com/bethropolis/modal/internal/event"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/logger"
	"github.com/bethropolis/modal/internal/modehandler"
	"github.com/bethropolis/modal/internal/statusbar"
	"github.com/bethropolis/modal/internal/theme"
	"github.com/bethropolis/modal/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// Config holds the collaborators and options for an App.
type Config struct {
	TUI          *tui.TUI // required
	Theme        *theme.Theme
	Keymap       *input.Keymap
	Clipboard    clipboard.Reader // nil disables command-line paste
	EventManager *event.Manager
	ClampCursor  bool
}

// App owns the editor state and runs the input/render loop.
type App struct {
	tuiManager   *tui.TUI
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.Handler
	activeTheme  *theme.Theme
	clampCursor  bool

	mode       modehandler.Mode
	textCursor core.Cursor
	cmdCursor  core.Cursor
	command    []rune
	cols, rows int // last laid-out terminal size, 0x0 before the first layout

	frames int // completed renders
}

// New creates an App in Normal mode with both cursors at the origin.
func New(cfg Config) (*App, error) {
	if cfg.TUI == nil {
		return nil, errors.New("app: TUI is required")
	}
	activeTheme := cfg.Theme
	if activeTheme == nil {
		activeTheme = &theme.Default
	}
	eventManager := cfg.EventManager
	if eventManager == nil {
		eventManager = event.NewManager()
	}

	a := &App{
		tuiManager:   cfg.TUI,
		statusBar:    statusbar.New(activeTheme),
		eventManager: eventManager,
		activeTheme:  activeTheme,
		clampCursor:  cfg.ClampCursor,
		mode:         modehandler.ModeNormal,
	}
	a.modeHandler = modehandler.New(modehandler.Config{
		Echo:      a,
		Keymap:    cfg.Keymap,
		Clipboard: cfg.Clipboard,
	})

	a.subscribeLogging()
	return a, nil
}

// Run loops until Quit or a terminal error. It does not close the TUI;
// the caller owns the terminal session.
func (a *App) Run() error {
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	for {
		if err := a.layout(); err != nil {
			return err
		}
		if err := a.render(); err != nil {
			return err
		}

		ev, err := a.tuiManager.PollEvent()
		if err != nil {
			return fmt.Errorf("waiting for input: %w", err)
		}

		quit, err := a.handleEvent(ev)
		if err != nil {
			return err
		}
		if quit {
			logger.Infof("Exiting application.")
			return nil
		}
	}
}

// handleEvent dispatches one terminal event and reports whether to quit.
func (a *App) handleEvent(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		// The new size is picked up by the next layout pass.
		a.tuiManager.Sync()
		return false, nil

	case *tcell.EventKey:
		before := string(a.command)
		action, err := a.modeHandler.HandleEvent(a.mode, ev, &a.command)
		if err != nil {
			return false, fmt.Errorf("handling key %s: %w", ev.Name(), err)
		}
		if string(a.command) != before {
			a.eventManager.Dispatch(event.TypeCommandChanged, event.CommandChangedData{Text: string(a.command)})
		}
		return a.apply(action)

	default:
		return false, nil
	}
}

// apply performs the state change for one action and reports whether to quit.
func (a *App) apply(action input.Action) (bool, error) {
	if action.IsMove() {
		a.moveActive(action)
		return false, nil
	}

	switch action {
	case input.ActionNone:
		return false, nil

	case input.ActionQuit:
		a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
		return true, nil

	case input.ActionSwitchToInsert:
		a.setMode(modehandler.ModeInsert)

	case input.ActionSwitchToNormal:
		if a.mode == modehandler.ModeCommand {
			a.command = a.command[:0]
			a.syncCommandCursor()
			if row := a.statusRow(); row >= 0 {
				if err := a.tuiManager.ClearLine(row); err != nil {
					return false, err
				}
			}
		}
		a.tuiManager.ShowCursor(a.textCursor.Col, a.textCursor.Row)
		a.setMode(modehandler.ModeNormal)

	case input.ActionCommand:
		a.setMode(modehandler.ModeCommand)
		a.syncCommandCursor()
		a.tuiManager.ShowCursor(a.cmdCursor.Col, a.cmdCursor.Row)

	default:
		logger.Warnf("App: unhandled action %v", action)
	}
	return false, nil
}

// moveActive steps the active cursor one unit and re-applies the bounds.
func (a *App) moveActive(action input.Action) {
	cur := a.activeCursor()
	switch action {
	case input.ActionMoveUp:
		cur.MoveUp()
	case input.ActionMoveDown:
		cur.MoveDown()
	case input.ActionMoveLeft:
		cur.MoveLeft()
	case input.ActionMoveRight:
		cur.MoveRight()
	}
	a.constrainCursors()
	a.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{
		Command:     a.mode == modehandler.ModeCommand,
		Action:      action,
		NewPosition: *cur,
	})
}

// activeCursor is the command-line cursor in Command mode, the text cursor
// otherwise.
func (a *App) activeCursor() *core.Cursor {
	if a.mode == modehandler.ModeCommand {
		return &a.cmdCursor
	}
	return &a.textCursor
}

func (a *App) setMode(mode modehandler.Mode) {
	if mode == a.mode {
		return
	}
	from := a.mode
	a.mode = mode
	a.eventManager.Dispatch(event.TypeModeChanged, event.ModeChangedData{From: from, To: mode})
}

// constrainCursors keeps the text cursor inside the text area (when enabled)
// and the command-line cursor right after the command text.
func (a *App) constrainCursors() {
	if a.clampCursor && a.cols > 0 && a.rows > 0 {
		a.textCursor.Clamp(a.cols-1, a.textRows()-1)
	}
	a.syncCommandCursor()
}

// syncCommandCursor puts the command-line cursor after the prompt and the
// command text, never past the last column.
func (a *App) syncCommandCursor() {
	col := a.statusBar.CommandColumn() + tui.TextWidth(string(a.command))
	if a.cols > 0 && col > a.cols-1 {
		col = a.cols - 1
	}
	a.cmdCursor.Col = col
}
