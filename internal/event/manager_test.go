package event

import (
	"testing"

	"github.com/bethropolis/modal/internal/modehandler"
	"github.com/stretchr/testify/require"
)

func TestManager_DispatchInOrder(t *testing.T) {
	m := NewManager()
	var got []string

	m.Subscribe(TypeModeChanged, func(e Event) bool {
		data := e.Data.(ModeChangedData)
		got = append(got, "first:"+data.To.String())
		return false
	})
	m.Subscribe(TypeModeChanged, func(e Event) bool {
		got = append(got, "second")
		return false
	})
	m.Subscribe(TypeAppQuit, func(e Event) bool {
		got = append(got, "quit")
		return false
	})

	m.Dispatch(TypeModeChanged, ModeChangedData{From: modehandler.ModeNormal, To: modehandler.ModeInsert})
	require.Equal(t, []string{"first:INSERT", "second"}, got)
}

func TestManager_ConsumedStopsPropagation(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeCursorMoved, func(Event) bool { calls++; return true })
	m.Subscribe(TypeCursorMoved, func(Event) bool { calls++; return false })

	m.Dispatch(TypeCursorMoved, CursorMovedData{})
	require.Equal(t, 1, calls)
}

func TestManager_NoHandlers(t *testing.T) {
	m := NewManager()
	require.NotPanics(t, func() { m.Dispatch(TypeAppReady, AppReadyData{}) })
}

func TestManager_SubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeCommandChanged, func(Event) bool {
		calls++
		m.Subscribe(TypeCommandChanged, func(Event) bool { calls++; return false })
		return false
	})

	m.Dispatch(TypeCommandChanged, CommandChangedData{Text: "w"})
	require.Equal(t, 1, calls, "handlers added during dispatch run from the next dispatch")
}

func TestType_String(t *testing.T) {
	require.Equal(t, "terminal_resized", TypeTerminalResized.String())
	require.Equal(t, "unknown", Type(99).String())
}
