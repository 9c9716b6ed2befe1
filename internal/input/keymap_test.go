package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/require"
)

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeymap_DefaultBindings(t *testing.T) {
	k := NewKeymap()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"q quits", runeKey('q'), ActionQuit},
		{"i inserts", runeKey('i'), ActionSwitchToInsert},
		{"colon enters command", runeKey(':'), ActionCommand},
		{"h", runeKey('h'), ActionMoveLeft},
		{"j", runeKey('j'), ActionMoveDown},
		{"k", runeKey('k'), ActionMoveUp},
		{"l", runeKey('l'), ActionMoveRight},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionMoveDown},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveUp},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionMoveRight},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionSwitchToNormal},
		{"unbound rune", runeKey('z'), ActionNone},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionNone},
		{"alt chord", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModAlt), ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, k.Lookup(tt.ev))
		})
	}
}

func TestKeymap_Rebind(t *testing.T) {
	k := NewKeymap()
	k.Apply(map[Action]rune{ActionQuit: 'x'})

	require.Equal(t, ActionQuit, k.Lookup(runeKey('x')))
	require.Equal(t, ActionNone, k.Lookup(runeKey('q')), "old rune should be released")

	r, ok := k.RuneFor(ActionQuit)
	require.True(t, ok)
	require.Equal(t, 'x', r)

	// Rebinding onto a rune that already has an action takes it over.
	k.Rebind(ActionQuit, 'h')
	require.Equal(t, ActionQuit, k.Lookup(runeKey('h')))
	_, ok = k.RuneFor(ActionMoveLeft)
	require.False(t, ok)
	// Arrow keys are not affected.
	require.Equal(t, ActionMoveLeft, k.Lookup(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
}

func TestActionFromName(t *testing.T) {
	for action, name := range actionNames {
		got, ok := ActionFromName(name)
		if action == ActionNone {
			require.False(t, ok)
			continue
		}
		require.True(t, ok, name)
		require.Equal(t, action, got)
	}

	got, ok := ActionFromName("  Move_Left ")
	require.True(t, ok)
	require.Equal(t, ActionMoveLeft, got)

	_, ok = ActionFromName("save")
	require.False(t, ok)
}

func TestAction_IsMove(t *testing.T) {
	require.True(t, ActionMoveUp.IsMove())
	require.True(t, ActionMoveRight.IsMove())
	require.False(t, ActionQuit.IsMove())
	require.False(t, ActionNone.IsMove())
	require.Equal(t, "unknown", Action(99).String())
}
