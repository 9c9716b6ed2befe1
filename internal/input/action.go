// internal/input/action.go
package input

import "strings"

// Action represents a fully-resolved command derived from one input event.
type Action int

// The closed set of editor actions. ActionNone is the zero value and means no
// action was produced for the event.
const (
	ActionNone Action = iota

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// --- Meta ---
	ActionQuit

	// --- Mode Switching ---
	ActionSwitchToInsert
	ActionSwitchToNormal
	ActionCommand
)

var actionNames = map[Action]string{
	ActionNone:           "none",
	ActionMoveUp:         "move_up",
	ActionMoveDown:       "move_down",
	ActionMoveLeft:       "move_left",
	ActionMoveRight:      "move_right",
	ActionQuit:           "quit",
	ActionSwitchToInsert: "insert",
	ActionSwitchToNormal: "normal",
	ActionCommand:        "command",
}

// String returns the config name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// IsMove reports whether the action steps a cursor.
func (a Action) IsMove() bool {
	switch a {
	case ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight:
		return true
	}
	return false
}

// ActionFromName resolves a config name (e.g. "move_left") to a bindable action.
func ActionFromName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for action, n := range actionNames {
		if action != ActionNone && n == name {
			return action, true
		}
	}
	return ActionNone, false
}
