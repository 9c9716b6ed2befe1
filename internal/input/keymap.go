// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap translates Normal-mode key events into actions.
// Special keys are fixed; rune bindings can be rebound from config.
type Keymap struct {
	keys  map[tcell.Key]Action
	runes map[rune]Action
}

// NewKeymap creates a keymap with the default vi-style bindings.
func NewKeymap() *Keymap {
	k := &Keymap{
		keys:  make(map[tcell.Key]Action),
		runes: make(map[rune]Action),
	}
	k.loadDefaultBindings()
	return k
}

func (k *Keymap) loadDefaultBindings() {
	// --- Simple Keys ---
	k.keys[tcell.KeyUp] = ActionMoveUp
	k.keys[tcell.KeyDown] = ActionMoveDown
	k.keys[tcell.KeyLeft] = ActionMoveLeft
	k.keys[tcell.KeyRight] = ActionMoveRight
	k.keys[tcell.KeyEscape] = ActionSwitchToNormal

	// --- Runes ---
	k.runes['q'] = ActionQuit
	k.runes['i'] = ActionSwitchToInsert
	k.runes['k'] = ActionMoveUp
	k.runes['j'] = ActionMoveDown
	k.runes['h'] = ActionMoveLeft
	k.runes['l'] = ActionMoveRight
	k.runes[':'] = ActionCommand
}

// Rebind makes r the only rune that triggers action. Whatever r was bound to
// before loses that binding.
func (k *Keymap) Rebind(action Action, r rune) {
	for existing, a := range k.runes {
		if a == action {
			delete(k.runes, existing)
		}
	}
	k.runes[r] = action
}

// Apply rebinds every action in bindings.
func (k *Keymap) Apply(bindings map[Action]rune) {
	for action, r := range bindings {
		k.Rebind(action, r)
	}
}

// RuneFor returns the rune currently bound to action, if any.
func (k *Keymap) RuneFor(action Action) (rune, bool) {
	for r, a := range k.runes {
		if a == action {
			return r, true
		}
	}
	return 0, false
}

// Lookup returns the action bound to ev, or ActionNone.
func (k *Keymap) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		// Ctrl/Alt chords are not plain rune bindings.
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
			return ActionNone
		}
		return k.runes[ev.Rune()]
	}
	return k.keys[ev.Key()]
}
