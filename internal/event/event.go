// internal/event/event.go
package event

import (
	"github.com/bethropolis/modal/internal/core"
	"github.com/bethropolis/modal/internal/input"
	"github.com/bethropolis/modal/internal/modehandler"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	TypeModeChanged     // Mode switched, e.g. Normal -> Command
	TypeCursorMoved     // Text or command-line cursor stepped
	TypeCommandChanged  // Command buffer edited
	TypeTerminalResized // Cached terminal size changed

	// Application Lifecycle Events
	TypeAppReady // Fired once before the first render
	TypeAppQuit  // Fired when Quit ends the loop
)

var typeNames = map[Type]string{
	TypeUnknown:         "unknown",
	TypeModeChanged:     "mode_changed",
	TypeCursorMoved:     "cursor_moved",
	TypeCommandChanged:  "command_changed",
	TypeTerminalResized: "terminal_resized",
	TypeAppReady:        "app_ready",
	TypeAppQuit:         "app_quit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return typeNames[TypeUnknown]
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// ModeChangedData carries both ends of a mode switch.
type ModeChangedData struct {
	From modehandler.Mode
	To   modehandler.Mode
}

// CursorMovedData carries the cursor that moved and its new position.
type CursorMovedData struct {
	Command     bool // true for the command-line cursor
	Action      input.Action
	NewPosition core.Cursor
}

// CommandChangedData carries the command buffer after an edit.
type CommandChangedData struct {
	Text string
}

// TerminalResizedData carries old and new terminal sizes.
// The old size is 0x0 on the first layout.
type TerminalResizedData struct {
	OldCols, OldRows int
	Cols, Rows       int
	StatusRow        int // -1 when the terminal is too short for a status line
}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}
