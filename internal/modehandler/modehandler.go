// internal/modehandler/modehandler.go
package modehandler

import (
	"unicode"

	"github.com/bethropolis/modal/internal/clipboard"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Mode defines the different states for user input.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeCommand
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeCommand:
		return "COMMAND"
	default:
		return "UNKNOWN"
	}
}

// Echoer writes a typed character at the text cursor.
type Echoer interface {
	Echo(r rune) error
}

// Handler interprets key events for a given mode.
// It keeps no mode state of its own; the caller passes the mode on every call.
type Handler struct {
	echo      Echoer
	keymap    *input.Keymap
	clipboard clipboard.Reader // nil disables command-line paste
}

// Config holds dependencies for the Handler.
type Config struct {
	Echo      Echoer
	Keymap    *input.Keymap
	Clipboard clipboard.Reader
}

// New creates a new Handler.
func New(cfg Config) *Handler {
	if cfg.Echo == nil {
		panic("modehandler.New: Echo is required")
	}
	keymap := cfg.Keymap
	if keymap == nil {
		keymap = input.NewKeymap()
	}
	return &Handler{
		echo:      cfg.Echo,
		keymap:    keymap,
		clipboard: cfg.Clipboard,
	}
}

// HandleEvent maps one key event to at most one action.
// In Insert mode printable characters are echoed before MoveRight is returned;
// in Command mode cmd is edited in place. ActionNone means nothing to apply.
// Only echo failures are reported as errors.
func (h *Handler) HandleEvent(mode Mode, ev *tcell.EventKey, cmd *[]rune) (input.Action, error) {
	switch mode {
	case ModeNormal:
		return h.keymap.Lookup(ev), nil
	case ModeInsert:
		return h.handleInsert(ev)
	case ModeCommand:
		return h.handleCommand(ev, cmd), nil
	default:
		logger.Warnf("Unknown input mode: %d", int(mode))
		return input.ActionNone, nil
	}
}

func (h *Handler) handleInsert(ev *tcell.EventKey) (input.Action, error) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return input.ActionSwitchToNormal, nil
	case tcell.KeyRune:
		r := ev.Rune()
		if !isPrintable(ev) {
			return input.ActionNone, nil
		}
		if err := h.echo.Echo(r); err != nil {
			return input.ActionNone, err
		}
		return input.ActionMoveRight, nil
	default:
		return input.ActionNone, nil
	}
}

// isPrintable reports whether ev carries a plain printable character.
// Alt and Meta chords are not text.
func isPrintable(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	if ev.Modifiers()&(tcell.ModAlt|tcell.ModMeta) != 0 {
		return false
	}
	return unicode.IsPrint(ev.Rune())
}
