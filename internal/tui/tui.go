// internal/tui/tui.go
package tui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrClosed is returned by drawing and polling calls after Close.
	ErrClosed = errors.New("tui: screen is closed")
	// ErrEventStreamClosed is returned when the screen stops delivering events.
	ErrEventStreamClosed = errors.New("tui: event stream closed")
)

// TUI manages the terminal screen using tcell.
// Init puts the terminal into raw mode on the alternate screen; Close undoes
// both and is safe to call more than once.
type TUI struct {
	screen    tcell.Screen
	closeOnce sync.Once
	closed    bool
}

// New creates and initializes a TUI on the controlling terminal.
func New() (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and wraps it. Tests pass a simulation screen.
func NewWithScreen(s tcell.Screen) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return &TUI{screen: s}, nil
}

// Close finalizes the tcell screen, restoring the terminal.
func (t *TUI) Close() {
	t.closeOnce.Do(func() {
		t.closed = true
		t.screen.Fini()
	})
}

// PollEvent blocks for the next event.
func (t *TUI) PollEvent() (tcell.Event, error) {
	if t.closed {
		return nil, ErrClosed
	}
	ev := t.screen.PollEvent()
	if ev == nil {
		return nil, ErrEventStreamClosed
	}
	return ev, nil
}

// Show makes the changes visible.
func (t *TUI) Show() {
	if !t.closed {
		t.screen.Show()
	}
}

// Sync redraws the whole terminal, used after a resize.
func (t *TUI) Sync() {
	if !t.closed {
		t.screen.Sync()
	}
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// ShowCursor places the terminal cursor at (x, y).
func (t *TUI) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// HideCursor hides the terminal cursor.
func (t *TUI) HideCursor() {
	t.screen.HideCursor()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
